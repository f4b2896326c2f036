package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/mandarin-prep/backend/internal/api"
	"github.com/mandarin-prep/backend/internal/auth"
	"github.com/mandarin-prep/backend/internal/config"
	"github.com/mandarin-prep/backend/internal/enricher"
	"github.com/mandarin-prep/backend/internal/flashcards"
	"github.com/mandarin-prep/backend/internal/middleware"
	"github.com/mandarin-prep/backend/internal/processor"
	"github.com/mandarin-prep/backend/internal/quiz"
	"github.com/mandarin-prep/backend/internal/segmenter"
	"github.com/mandarin-prep/backend/internal/srs"
	"github.com/mandarin-prep/backend/internal/templates"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Pipeline components
	provider := enricher.NewLocalProvider()
	enr := enricher.New(provider, logger, cfg.Enrichment.Concurrency)
	seg := segmenter.New()
	proc := processor.New(seg, enr, provider, logger)

	registry := templates.NewRegistry()
	pool := templates.NewPool()
	cache := srs.NewCache()
	scheduler := srs.NewInitializer(cache)

	var examples *enricher.ExampleGenerator
	if cfg.Examples.Enabled {
		var llm enricher.LLMClient
		if cfg.Examples.Provider == "api" {
			llm = enricher.NewAPIClient(cfg.Examples.Model, logger)
		} else {
			llm = enricher.NewMockClient()
		}
		examples = enricher.NewExampleGenerator(llm, logger)
	}

	cardGen := flashcards.New(registry, scheduler, examples, logger)
	quizGen := quiz.New(registry, pool, nil, logger)

	// Handlers
	users := auth.NewStore()
	secret := []byte(cfg.JWTSecret)
	authHandler := auth.NewHandler(users, secret)
	apiHandler := api.NewHandler(proc, enr, cardGen, quizGen, registry, cache, logger)

	// Setup router
	r := mux.NewRouter()
	v1 := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := v1.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(secret))
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")
	protected.HandleFunc("/lessons/process", apiHandler.ProcessLesson).Methods("POST")
	protected.HandleFunc("/flashcards/generate", apiHandler.GenerateFlashcards).Methods("POST")
	protected.HandleFunc("/quiz/generate", apiHandler.GenerateQuiz).Methods("POST")
	protected.HandleFunc("/requests/validate", apiHandler.ValidateRequest).Methods("POST")
	protected.HandleFunc("/templates", apiHandler.GetTemplates).Methods("GET")
	protected.HandleFunc("/srs/decks/{id}", apiHandler.GetDeck).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if err := zcfg.Level.UnmarshalText([]byte(level)); err != nil {
		zcfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return zcfg.Build()
}
