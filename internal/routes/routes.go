package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/UpServices02/service-booking/internal/cache"
	"github.com/UpServices02/service-booking/internal/config"
	domain "github.com/UpServices02/service-booking/internal/domain/booking"
	"github.com/UpServices02/service-booking/internal/events"
	"github.com/UpServices02/service-booking/internal/handlers"
	infraRepo "github.com/UpServices02/service-booking/internal/infra/repository"
	"github.com/UpServices02/service-booking/internal/logger"
	"github.com/UpServices02/service-booking/internal/middleware"
	ucBooking "github.com/UpServices02/service-booking/internal/usecase/booking"
	ucReview "github.com/UpServices02/service-booking/internal/usecase/review"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	reviewRepo := infraRepo.NewReviewGormRepository(db)

	rdb := cache.NewClient(cfg)
	catalogCache := cache.NewCatalogCache(rdb, db)
	ratingCache := cache.NewRatingCache(rdb, reviewRepo)

	dispatcher := events.NewDispatcher(
		events.NewAuditSink(db),
		events.NewNotifierSink(logger.L()),
		cache.NewRatingInvalidationSink(ratingCache),
	)

	// ======================================================
	// USE CASES
	// ======================================================
	requestUC := ucBooking.NewRequestBooking(bookingRepo, dispatcher, cfg.Timezone)
	acceptUC := ucBooking.NewAcceptBooking(bookingRepo, dispatcher, cfg.Timezone)
	declineUC := ucBooking.NewDeclineBooking(bookingRepo, dispatcher, cfg.Timezone)
	cancelUC := ucBooking.NewCancelBooking(bookingRepo, dispatcher, cfg.Timezone)
	listUC := ucBooking.NewListBookings(bookingRepo, cfg.Timezone)
	agendaUC := ucBooking.NewGetAgenda(bookingRepo)

	submitReviewUC := ucReview.NewSubmitReview(bookingRepo, reviewRepo, dispatcher, cfg.Timezone)
	visibleReviewsUC := ucReview.NewGetVisibleReviews(bookingRepo, reviewRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	categoryHandler := handlers.NewCategoryHandler(db, catalogCache)
	providerHandler := handlers.NewProviderHandler(db, ratingCache)

	appointmentHandler := handlers.NewAppointmentHandler(
		requestUC,
		acceptUC,
		declineUC,
		cancelUC,
		listUC,
		agendaUC,
		cfg.Timezone,
	)

	reviewHandler := handlers.NewReviewHandler(submitReviewUC, visibleReviewsUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/:role/register", authHandler.Register)
		api.POST("/auth/:role/login", authHandler.Login)

		// ------------------------------
		// PÚBLICA
		// ------------------------------
		api.GET("/categories", categoryHandler.List)
		api.GET("/providers", providerHandler.List)
		api.GET("/providers/:providerId", providerHandler.Get)
		api.GET("/providers/:providerId/agenda", appointmentHandler.Agenda)

		// ------------------------------
		// PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/categories", categoryHandler.Create)

			// ------------------------------
			// APPOINTMENTS — lado cliente
			// ------------------------------
			client := secured.Group("/")
			client.Use(middleware.RequireRole(string(domain.RoleClient)))
			{
				client.POST("/providers/:providerId/appointments", appointmentHandler.Create)
				client.GET("/clients/:clientId/appointments", appointmentHandler.ListForClient)
				client.PUT("/clients/:clientId/appointments/:id/cancel", appointmentHandler.Cancel)
			}

			// ------------------------------
			// APPOINTMENTS — lado prestador
			// ------------------------------
			provider := secured.Group("/")
			provider.Use(middleware.RequireRole(string(domain.RoleProvider)))
			{
				provider.GET("/providers/:providerId/appointments", appointmentHandler.ListForProvider)
				provider.PUT("/providers/:providerId/appointments/:id/accept", appointmentHandler.Accept)
				provider.PUT("/providers/:providerId/appointments/:id/decline", appointmentHandler.Decline)
				provider.PUT("/providers/:providerId/appointments/:id/cancel", appointmentHandler.Cancel)
			}

			// ------------------------------
			// REVIEWS (avaliação cega mútua)
			// ------------------------------
			secured.POST("/appointments/:id/reviews", reviewHandler.Submit)
			secured.GET("/appointments/:id/reviews", reviewHandler.GetVisible)
		}
	}
}
