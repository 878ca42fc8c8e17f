package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/topic"
)

// POST /quizzes/parse (body: raw quiz document). Responds with the
// normalized document, or 422 when it does not decode and validate.
func ParseQuizHandler(reg *topic.Registry) http.HandlerFunc {
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
		codec, _ := quiz.LookupCodec(quiz.DefaultExt)
		doc, err := codec.Encode(z)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]json.RawMessage{"document": doc})
	}
}
