package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"airportops-service/internal/domain/repository"
	"airportops-service/internal/infrastructure/config"
	"airportops-service/internal/infrastructure/oauth"
	"airportops-service/internal/infrastructure/persistence"
	"airportops-service/internal/interface/gmail"
	"airportops-service/internal/interface/handler"
	mongoRepo "airportops-service/internal/interface/repository"
	"airportops-service/internal/usecase"
	"airportops-service/pkg/locks"
	"airportops-service/pkg/logger"
	"airportops-service/pkg/metrics"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log := logger.NewLogger()
	log.Info("Starting Airport Operations Service")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Operational repositories
	aircraftRepo := mongoRepo.NewMongoAircraftRepository(db)
	gateRepo := mongoRepo.NewMongoGateRepository(db)
	crewRepo := mongoRepo.NewMongoCrewRepository(db)
	flightRepo := mongoRepo.NewMongoFlightRepository(db)
	bookingRepo := mongoRepo.NewMongoBookingRepository(db)
	passRepo := mongoRepo.NewMongoBoardingPassRepository(db)
	groundServiceRepo := mongoRepo.NewMongoGroundServiceRepository(db)

	// Airport reference directory (optional; views fall back to raw codes)
	var airportRepo repository.AirportRepository
	if cfg.PostgresURI != "" {
		gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		airportRepo = mongoRepo.NewGormAirportRepository(gormDB)
	} else {
		log.Warn("POSTGRES_DSN not set, airport names will not be expanded")
	}

	// Ops webhook (optional)
	var opsEvents repository.OpsEventRepository
	if cfg.OpsWebhookURL != "" {
		opsEvents = mongoRepo.NewOpsWebhookRepository(log, cfg.OpsWebhookURL, cfg.OpsWebhookToken)
	}

	// Boarding-pass mailer (optional)
	var mailer repository.MailRepository
	if cfg.GmailClientID != "" && cfg.GmailClientSecret != "" && cfg.GmailRefreshToken != "" {
		gmailOAuth := oauth.NewGmailOAuth(
			cfg.GmailClientID,
			cfg.GmailClientSecret,
			cfg.GmailRefreshToken,
			log,
		)
		tokenSource := gmailOAuth.GetTokenSource(ctx)

		mailer, err = gmail.NewBoardingPassMailer(ctx, tokenSource, cfg.MailFrom, log)
		if err != nil {
			log.Fatal("Failed to create boarding pass mailer", "error", err)
		}
	} else {
		log.Warn("Gmail credentials not set, boarding pass emails disabled")
	}

	keyed := locks.NewKeyed()
	m := metrics.NewMetrics("airportops")

	registry := usecase.NewRegistry(aircraftRepo, gateRepo, crewRepo, log)
	assignments := usecase.NewAssignmentEngine(registry, flightRepo, gateRepo, opsEvents, keyed, cfg.GateBufferMinutes, log)
	checkin := usecase.NewCheckInIssuer(bookingRepo, flightRepo, passRepo, airportRepo, mailer, opsEvents, keyed, log)
	dispatch := usecase.NewDispatcher(crewRepo, groundServiceRepo, opsEvents, keyed, log)

	h := handler.NewHandler(registry, assignments, checkin, dispatch, m, log, cfg.AppVersion)
	router := handler.NewRouter(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Airport Operations Service stopped")
}
