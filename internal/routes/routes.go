package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vivafit/vivafit-api/internal/audit"
	"github.com/vivafit/vivafit-api/internal/config"
	"github.com/vivafit/vivafit-api/internal/handlers"
	"github.com/vivafit/vivafit-api/internal/identity"
	infraRepo "github.com/vivafit/vivafit-api/internal/infra/repository"
	"github.com/vivafit/vivafit-api/internal/middleware"
	"github.com/vivafit/vivafit-api/internal/timezone"
	ucConsultation "github.com/vivafit/vivafit-api/internal/usecase/consultation"
	ucProfile "github.com/vivafit/vivafit-api/internal/usecase/profile"
	ucTracking "github.com/vivafit/vivafit-api/internal/usecase/tracking"
	"github.com/vivafit/vivafit-api/internal/validators"
)

// Deps are the process-wide singletons built in main.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      *zap.Logger
	Sessions identity.SessionStore
	Audit    *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	registerValidators(d.Log)

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORS(d.Config.CORSAllowedOrigins))
	r.Use(middleware.RateLimit(d.Config.RateLimitPerMinute, d.Config.RateLimitBurst, d.Log))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	consultationRepo := infraRepo.NewConsultationGormRepository(d.DB)
	accountRepo := infraRepo.NewAccountGormRepository(d.DB)
	trackingRepo := infraRepo.NewTrackingGormRepository(d.DB)
	clock := timezone.NewClock(d.Config.Timezone)

	tokens := identity.NewTokenIssuer(d.Config.JWTSecret)
	resolver := identity.NewResolver(tokens, d.Sessions, accountRepo, d.Log)
	authenticator := identity.NewAuthenticator(accountRepo, d.Sessions, tokens, d.Config.SessionTTL)

	// ======================================================
	// USE CASES
	// ======================================================
	listUC := ucConsultation.NewListConsultations(consultationRepo)
	getUC := ucConsultation.NewGetConsultation(consultationRepo)

	bookUC := ucConsultation.NewBookConsultation(
		consultationRepo,
		listUC,
		d.Audit,
		clock,
		d.Log,
	)

	updateStatusUC := ucConsultation.NewUpdateConsultationStatus(
		consultationRepo,
		listUC,
		d.Audit,
		clock,
		d.Log,
	)

	listClientsUC := ucConsultation.NewListClients(accountRepo)
	updatePreferencesUC := ucProfile.NewUpdatePreferences(accountRepo, d.Audit)

	listExercisesUC := ucTracking.NewListExercises(trackingRepo, clock)
	addExerciseUC := ucTracking.NewAddExercise(trackingRepo, d.Audit, clock, d.Log)
	completeExerciseUC := ucTracking.NewCompleteExercise(trackingRepo, d.Audit, clock)
	getProgressUC := ucTracking.NewGetProgress(trackingRepo, clock)
	updateProgressUC := ucTracking.NewUpdateProgress(trackingRepo, d.Audit, clock)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(authenticator)
	meHandler := handlers.NewMeHandler(updatePreferencesUC)
	clientHandler := handlers.NewClientHandler(listClientsUC)
	consultationHandler := handlers.NewConsultationHandler(listUC, getUC, bookUC, updateStatusUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)
	trackingHandler := handlers.NewTrackingHandler(
		listExercisesUC,
		addExerciseUC,
		completeExerciseUC,
		getProgressUC,
		updateProgressUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(resolver, d.Log))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me/preferences", meHandler.UpdatePreferences)

			secured.GET("/me/clients", clientHandler.List)

			// ------------------------------
			// CONSULTATIONS
			// ------------------------------
			secured.GET("/me/consultations", consultationHandler.List)
			secured.POST("/me/consultations", consultationHandler.Create)
			secured.GET("/me/consultations/:id", consultationHandler.Get)
			secured.PATCH("/me/consultations/:id/status", consultationHandler.UpdateStatus)
			secured.PATCH("/me/consultations/:id/confirm", consultationHandler.Confirm)
			secured.PATCH("/me/consultations/:id/cancel", consultationHandler.Cancel)
			secured.PATCH("/me/consultations/:id/complete", consultationHandler.Complete)

			// ------------------------------
			// TRACKING
			// ------------------------------
			secured.GET("/me/exercises", trackingHandler.ListExercises)
			secured.POST("/me/exercises", trackingHandler.AddExercise)
			secured.PATCH("/me/exercises/:id/complete", trackingHandler.CompleteExercise)
			secured.GET("/me/progress", trackingHandler.GetProgress)
			secured.PUT("/me/progress", trackingHandler.UpdateProgress)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}

func registerValidators(log *zap.Logger) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	if err := validators.Register(v); err != nil {
		log.Fatal("register validators", zap.Error(err))
	}
}
