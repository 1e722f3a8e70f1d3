package main

import (
	"flag"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/frageverk/internal/app"
	"github.com/shrimpsizemoose/frageverk/internal/handlers"
	"github.com/shrimpsizemoose/frageverk/internal/web"
)

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	service, err := app.NewService(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to load config: %v", err)
	}
	defer service.Close()

	if err := service.Store.ApplyMigrations(service.Config.Database.MigrationsDir); err != nil {
		logger.Error.Fatalf("Failed to apply migrations: %v", err)
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		logger.Error.Fatalf("Failed to parse templates: %v", err)
	}

	quizHandler := handlers.NewQuizHandler(service, renderer)

	http.HandleFunc("GET /{$}", quizHandler.HandleLanding)
	http.HandleFunc("GET /login", quizHandler.HandleLoginForm)
	http.HandleFunc("POST /login", quizHandler.HandleLogin)
	http.HandleFunc("GET /register", quizHandler.HandleRegisterForm)
	http.HandleFunc("POST /register", quizHandler.HandleRegister)
	http.HandleFunc("GET /quiz", quizHandler.RequireAuth(quizHandler.HandleQuizPage))
	http.HandleFunc("POST /quiz", quizHandler.RequireAuth(quizHandler.HandleQuizSubmit))
	http.HandleFunc("GET /results", quizHandler.RequireAuth(quizHandler.HandleResults))
	http.HandleFunc("GET /logout", quizHandler.RequireAuth(quizHandler.HandleLogout))

	http.Handle("/metrics", promhttp.Handler())

	logger.Info.Printf("Starting frageverk server on %s", service.Config.Server.Port)
	logger.Debug.Printf("Question bank: %d questions, %d per quiz",
		len(service.Bank),
		service.Config.Quiz.QuestionsPerQuiz,
	)
	if err := http.ListenAndServe(service.Config.Server.Port, nil); err != nil {
		logger.Error.Fatalf("Frageverk server failed: %v", err)
	}
}
