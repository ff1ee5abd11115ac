package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/lead-intake/internal/config"
	"github.com/xavierca1/lead-intake/internal/infra/database"
	"github.com/xavierca1/lead-intake/internal/infra/http/handlers"
	"github.com/xavierca1/lead-intake/internal/infra/http/middleware"
	"github.com/xavierca1/lead-intake/internal/infra/mail"
	"github.com/xavierca1/lead-intake/internal/infra/queue"
	"github.com/xavierca1/lead-intake/internal/usecase"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.Any("err", err))
		os.Exit(1)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("err", err))
		os.Exit(1)
	}
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		logger.Error("failed to ensure schema", slog.Any("err", err))
		os.Exit(1)
	}

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
	if err != nil {
		logger.Error("failed to connect to RabbitMQ", slog.Any("err", err))
		os.Exit(1)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repository
	leadRepo := database.NewLeadRepository(db)

	// 2. Side channel: producer publishes, worker drains and emails
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass,
		cfg.MailFrom, cfg.StaffEmail,
	)

	worker := queue.NewWorker(rabbitMQ.Ch, mailSender, logger)
	go worker.Start(queue.QueueName)

	// 3. UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, producer, logger)
	listLeadsUC := usecase.NewListLeadsUseCase(leadRepo)
	getLeadUC := usecase.NewGetLeadUseCase(leadRepo)
	updateLeadUC := usecase.NewUpdateLeadUseCase(leadRepo)
	transitionLeadUC := usecase.NewTransitionLeadUseCase(leadRepo, logger)

	// 4. Handlers
	leadHandler := handlers.NewLeadHandler(
		createLeadUC, listLeadsUC, getLeadUC, updateLeadUC, transitionLeadUC, logger,
	)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.Use(middleware.Metrics)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(cfg.APIKeys, logger))

		r.Post("/leads", leadHandler.Create)
		r.Get("/leads", leadHandler.List)
		r.Get("/leads/{id}", leadHandler.Get)
		r.Put("/leads/{id}", leadHandler.Update)
		r.Patch("/leads/{id}/state", leadHandler.UpdateState)
	})

	addr := ":" + cfg.Port
	logger.Info("lead-intake API listening", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Error("server stopped", slog.Any("err", err))
		os.Exit(1)
	}
}
