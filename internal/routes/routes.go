package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/handlers"
	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/notify"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
	ucBooking "github.com/BruksfildServices01/barbershop-booking/internal/usecase/booking"
)

// Deps are the singletons built by main (or a test) and shared by every
// route.
type Deps struct {
	Config *config.Config
	Log    zerolog.Logger
	Clock  timezone.Clock

	Repo      domain.Repository
	Users     handlers.UserStore
	AuditLogs handlers.AuditLogLister
	Images    ucBooking.ImageStore
	Limiter   middleware.Limiter

	Notifier *notify.Dispatcher
	Audit    *audit.Dispatcher
}

// NewEngine builds the gin engine with panic recovery. Only the proxies in
// cfg.TrustedProxies may set the client IP through forwarding headers.
func NewEngine(cfg *config.Config) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())

	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}
	return r, nil
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(d.Log),
		metrics.Middleware(),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// USE CASES
	// ======================================================
	getAvailabilityUC := ucBooking.NewGetAvailability(d.Repo, d.Clock)
	createBookingUC := ucBooking.NewCreateBooking(d.Repo, d.Clock, d.Notifier, d.Audit, d.Log)
	occupiedSlotsUC := ucBooking.NewOccupiedSlots(d.Repo)
	listBookingsUC := ucBooking.NewListBookings(d.Repo)
	updateStatusUC := ucBooking.NewUpdateBookingStatus(d.Repo, d.Audit, d.Config.StrictStatusTransitions)

	listBlocksUC := ucBooking.NewListBlockedTimes(d.Repo)
	createBlockUC := ucBooking.NewCreateBlockedTime(d.Repo, d.Audit)
	deleteBlockUC := ucBooking.NewDeleteBlockedTime(d.Repo, d.Audit)

	getSettingsUC := ucBooking.NewGetSettings(d.Repo)
	updateSettingsUC := ucBooking.NewUpdateSettings(d.Repo, d.Audit)

	servicesUC := ucBooking.NewManageServices(d.Repo, d.Images, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(getAvailabilityUC, createBookingUC, occupiedSlotsUC)
	bookingHandler := handlers.NewBookingHandler(listBookingsUC, updateStatusUC)
	blockedTimeHandler := handlers.NewBlockedTimeHandler(listBlocksUC, createBlockUC, deleteBlockUC)
	settingsHandler := handlers.NewSettingsHandler(getSettingsUC, updateSettingsUC)
	serviceHandler := handlers.NewServiceHandler(servicesUC)
	authHandler := handlers.NewAuthHandler(d.Users, d.Config.JWTSecret)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs)

	admin := middleware.AuthMiddleware(d.Config.JWTSecret)
	rateLimit := middleware.RateLimit(d.Limiter, d.Config.BookingRateWindow, d.Log)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// SERVICES
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.POST("/services", admin, serviceHandler.Create)
		api.PATCH("/services/:id", admin, serviceHandler.Update)
		api.DELETE("/services/:id", admin, serviceHandler.Delete)
		api.POST("/services/:id/image", admin, serviceHandler.UploadImage)

		// ------------------------------
		// AVAILABILITY / BOOKINGS
		// ------------------------------
		api.GET("/availability", publicHandler.Availability)

		api.POST("/bookings", rateLimit, publicHandler.CreateBooking)
		api.GET("/bookings", admin, bookingHandler.List)
		api.GET("/bookings/occupied", publicHandler.Occupied)
		api.PATCH("/bookings/:id/status", admin, bookingHandler.UpdateStatus)

		// ------------------------------
		// BLOCKED TIMES
		// ------------------------------
		api.GET("/blocked-times", blockedTimeHandler.List)
		api.POST("/blocked-times", admin, blockedTimeHandler.Create)
		api.DELETE("/blocked-times/:id", admin, blockedTimeHandler.Delete)

		// ------------------------------
		// SETTINGS
		// ------------------------------
		api.GET("/settings", settingsHandler.Get)
		api.POST("/settings", admin, settingsHandler.Update)

		// ------------------------------
		// AUTH / ADMIN
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/me", admin, authHandler.Me)
		api.GET("/audit-logs", admin, auditLogsHandler.List)
	}
}
