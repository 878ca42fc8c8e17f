package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/quizdeck/quizdeck/internal/topic"
)

// GET /topics/{topicName}/completion
func GetCompletionHandler(reg *topic.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "topicName")
		if _, ok := reg.Topic(name); !ok {
			http.Error(w, "topic not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(reg.Completion(name))
	}
}

// PUT /topics/{topicName}/completion/{group}  { "completed": true }
func SetCompletionHandler(reg *topic.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "topicName")
		group, err := strconv.Atoi(chi.URLParam(r, "group"))
		if err != nil || group < 0 {
			http.Error(w, "bad group index", http.StatusBadRequest)
			return
		}
		var req struct {
			Completed bool `json:"completed"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if _, ok := reg.Topic(name); !ok {
			http.Error(w, "topic not found", http.StatusNotFound)
			return
		}
		if err := reg.SetCompleted(r.Context(), name, group, req.Completed); err != nil {
			http.Error(w, "record completion", 500)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
