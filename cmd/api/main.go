package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-apply-portal/config"
	_ "go-apply-portal/docs" // Important for Swagger
	v1 "go-apply-portal/internal/delivery/http/v1"
	"go-apply-portal/internal/domain"
	"go-apply-portal/internal/encoder"
	"go-apply-portal/internal/repository/draftfile"
	"go-apply-portal/internal/repository/greenhouse"
	"go-apply-portal/internal/repository/memory"
	"go-apply-portal/internal/usecase"
	"go-apply-portal/pkg/auth"
	"go-apply-portal/pkg/email"
	"go-apply-portal/pkg/logger"
	"go-apply-portal/pkg/redis"
	"go-apply-portal/pkg/security"

	"github.com/go-playground/validator/v10"
)

// @title           Job Application Portal API
// @version         1.0
// @description     Backend for a job application portal: job listings, per-track application forms, draft persistence, and Greenhouse submission.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting application portal backend", "port", cfg.Port)

	// 3. Setup Redis (optional; rate limiting falls back to memory without it)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting degrades to in-memory", "error", err)
		}
	}

	// 4. Setup Repositories
	jobRepo := memory.NewJobRepository()
	applicantRepo := memory.NewApplicantRepository(cfg.DefaultCandidateID)
	draftRepo := draftfile.NewStore(cfg.DraftStorePath)
	atsGateway := greenhouse.NewClient(
		cfg.GreenhouseAPIURL,
		cfg.GreenhouseAPIKey,
		cfg.GreenhouseUserID,
		time.Duration(cfg.GreenhouseTimeout)*time.Second,
	)

	// 5. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - support form will be unavailable")
	}

	// 6. Setup UseCases
	validate := validator.New()
	jobUC := usecase.NewJobUsecase(jobRepo)
	trackUC := usecase.NewTrackUsecase()
	draftUC := usecase.NewDraftUsecase(draftRepo)
	submissionUC := usecase.NewSubmissionUsecase(atsGateway, jobRepo, draftRepo)
	supportUC := usecase.NewSupportUsecase(emailService, validate)

	// 7. Setup Encoder (uploads flow straight into the job's draft)
	enc := encoder.New(func(ctx context.Context, jobID int64, attachment domain.Attachment) error {
		_, err := draftUC.AttachToDraft(ctx, jobID, attachment)
		return err
	})
	uploadLimiter := security.NewUploadLimiter(cfg.UploadsPerMinute, cfg.UploadsPerDay)

	// 8. Setup Sessions
	sessions := auth.NewSessions(cfg.SessionSecret, time.Duration(cfg.SessionTTLHours)*time.Hour)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		JobUC:         jobUC,
		TrackUC:       trackUC,
		DraftUC:       draftUC,
		SubmissionUC:  submissionUC,
		SupportUC:     supportUC,
		Encoder:       enc,
		UploadLimiter: uploadLimiter,
		Sessions:      sessions,
		Applicants:    applicantRepo,
		Config:        cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
