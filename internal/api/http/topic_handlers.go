package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/topic"
)

type TopicSummary struct {
	Name          string  `json:"name"`
	GroupCount    int     `json:"group_count"`
	QuestionCount int     `json:"question_count"`
	TimeLimitSec  float64 `json:"time_limit_sec"`
}

// GET /topics
func ListTopicsHandler(reg *topic.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := reg.CurrentTopics()
		out := make([]TopicSummary, 0, len(entries))
		for _, e := range entries {
			out = append(out, TopicSummary{
				Name:          e.Name,
				GroupCount:    len(e.Quiz.QuestionGroups),
				QuestionCount: len(e.Quiz.Questions()),
				TimeLimitSec:  e.Quiz.TimeLimitSec,
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	}
}

// GET /topics/{topicName}
func GetTopicHandler(reg *topic.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "topicName")
		e, ok := reg.Topic(name)
		if !ok {
			http.Error(w, "topic not found", http.StatusNotFound)
			return
		}
		codec, _ := quiz.LookupCodec(quiz.DefaultExt)
		doc, err := codec.Encode(e.Quiz)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"name":     e.Name,
			"document": json.RawMessage(doc),
		})
	}
}

// POST /topics?name=...  (body: raw quiz document)
func SaveTopicHandler(reg *topic.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "read body", http.StatusBadRequest)
			return
		}
		z, ok := reg.QuizFromText(body)
		if !ok {
			http.Error(w, "invalid quiz document", http.StatusUnprocessableEntity)
			return
		}
		e := topic.NewEntry(r.URL.Query().Get("name"), z)
		if err := reg.Save(r.Context(), e); err != nil {
			http.Error(w, "save failed", 500)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]int{"saved_topics": len(reg.SavedTopics())})
	}
}
