package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	api "github.com/quizdeck/quizdeck/internal/api/http"
	"github.com/quizdeck/quizdeck/internal/auth"
	"github.com/quizdeck/quizdeck/internal/config"
	"github.com/quizdeck/quizdeck/internal/rbac"
	"github.com/quizdeck/quizdeck/internal/state"
	"github.com/quizdeck/quizdeck/internal/storage"
	"github.com/quizdeck/quizdeck/internal/topic"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB (counter + completion state) ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := state.Open(ctx, state.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	st := state.NewSQLStore(dbh, cfg.DBDriver)

	// --- Topic stores ---
	saved, err := storage.NewFSStore(cfg.SavedDir)
	if err != nil {
		log.Fatalf("saved-topic store: %v", err)
	}
	reg, err := topic.NewRegistry(ctx, os.DirFS(cfg.BundledDir), saved, st, cfg.UseSavedTopics)
	if err != nil {
		log.Fatalf("topic registry: %v", err)
	}

	// --- Auth ---
	secret := getenvOr("AUTH_HMAC_SECRET", "supersecret-dev-key")
	authSvc := auth.NewAuthService(secret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, cfg.EditorUser, cfg.EditorPassHash))

	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.With(rbac.Require("topics:view")).
			Get("/topics", api.ListTopicsHandler(reg))
		pr.With(rbac.Require("topics:view")).
			Get("/topics/{topicName}", api.GetTopicHandler(reg))

		// Editor-only: save a topic
		pr.With(rbac.Require("topics:save")).
			Post("/topics", api.SaveTopicHandler(reg))

		pr.With(rbac.Require("quiz:parse")).
			Post("/quizzes/parse", api.ParseQuizHandler(reg))

		pr.With(rbac.Require("completion:view")).
			Get("/topics/{topicName}/completion", api.GetCompletionHandler(reg))
		pr.With(rbac.Require("completion:update")).
			Put("/topics/{topicName}/completion/{group}", api.SetCompletionHandler(reg))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s, topics=%d)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver, len(reg.CurrentTopics()))
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

func getenvOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
