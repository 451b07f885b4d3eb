package v1

import (
	"net/http"
	"time"

	"go-apply-portal/config"
	"go-apply-portal/internal/delivery/http/middleware"
	"go-apply-portal/internal/delivery/http/response"
	"go-apply-portal/internal/domain"
	"go-apply-portal/internal/encoder"
	"go-apply-portal/pkg/auth"
	"go-apply-portal/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	JobUC         domain.JobUsecase
	TrackUC       domain.TrackUsecase
	DraftUC       domain.DraftUsecase
	SubmissionUC  domain.SubmissionUsecase
	SupportUC     domain.SupportUsecase
	Encoder       *encoder.Encoder
	UploadLimiter *security.UploadLimiter
	Sessions      *auth.Sessions
	Applicants    domain.ApplicantRepository
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:  deps.Config.RateLimitGlobalThreshold,
		Window: time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
	}))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public routes
	NewSupportHandler(v1, deps.SupportUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Application routes act as a resolved applicant profile
	api := v1.Group("")
	api.Use(middleware.Identity(deps.Sessions, deps.Applicants))
	{
		NewJobHandler(api, deps.JobUC)
		NewTrackHandler(api, deps.TrackUC)
		NewDraftHandler(api, deps.DraftUC)
		NewAttachmentHandler(api, deps.Encoder, deps.UploadLimiter)
		NewSubmissionHandler(api, deps.SubmissionUC)
		NewProfileHandler(api)
	}

	return r
}
