package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/propertysales/collection-service/internal/config"
	"github.com/propertysales/collection-service/internal/handler"
	"github.com/propertysales/collection-service/internal/integrations/bi"
	"github.com/propertysales/collection-service/internal/middleware"
	"github.com/propertysales/collection-service/internal/repository"
	"github.com/propertysales/collection-service/internal/service"
	"github.com/propertysales/collection-service/internal/utils/email"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	sender := email.NewSender(cfg, logger)
	svc := service.NewService(repo, logger, cfg, sender)
	h := handler.NewHandler(svc)
	biClient := bi.NewBIClient(cfg, logger)

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/units", h.CreateUnit).Methods("POST")
	authRouter.HandleFunc("/units", h.ListUnits).Methods("GET")
	authRouter.HandleFunc("/consumers", h.CreateConsumer).Methods("POST")
	authRouter.HandleFunc("/consumers/{id}/payments", h.AppendPayment).Methods("POST")
	authRouter.HandleFunc("/consumers/{id}/snapshot", h.ConsumerSnapshot).Methods("GET")
	authRouter.HandleFunc("/collections/report", h.CollectionReport).Methods("GET")
	authRouter.HandleFunc("/collections/aging", h.AgingReport).Methods("GET")
	// BI reference rate endpoint
	r.HandleFunc("/reference-rate", func(w http.ResponseWriter, r *http.Request) {
		rate, err := biClient.GetReferenceRate()
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to get reference rate: %v", err), http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]float64{"reference_rate": rate})
	}).Methods("GET")

	// Nightly collections run
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 6 * * *", func() {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		if _, err := svc.SendOverdueReminders(today); err != nil {
			logger.Errorf("Overdue reminder run failed: %v", err)
		}
	}); err != nil {
		logger.Fatalf("Failed to schedule reminder job: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
