package server

import (
	"context"
	"net/http"

	"github.com/BryanJericho/courtly-web-sub000/internal/auth"
	"github.com/BryanJericho/courtly-web-sub000/internal/booking"
	"github.com/BryanJericho/courtly-web-sub000/internal/config"
	"github.com/BryanJericho/courtly-web-sub000/internal/court"
	"github.com/BryanJericho/courtly-web-sub000/internal/email"
	"github.com/BryanJericho/courtly-web-sub000/internal/payment"
	"github.com/BryanJericho/courtly-web-sub000/internal/review"
	"github.com/BryanJericho/courtly-web-sub000/internal/user"
	"github.com/BryanJericho/courtly-web-sub000/internal/venue"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	config *config.Config
	http   *http.Server
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(corsMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	userRepo := user.NewRepository(db)
	venueRepo := venue.NewRepository(db)
	courtRepo := court.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	reviewRepo := review.NewRepository(db)

	venueService := venue.NewService(venueRepo)
	courtService := court.NewService(courtRepo, venueRepo)
	bookingService := booking.NewService(bookingRepo, courtRepo, venueRepo, userRepo, emailService)
	gateway := payment.NewMidtransGateway(cfg.MidtransServerKey, cfg.MidtransProduction)
	paymentService := payment.NewService(gateway, bookingRepo, courtRepo, userRepo)
	reviewService := review.NewService(reviewRepo, bookingRepo)

	userHandler := user.NewHandler(db, cfg.JWTSecret)
	venueHandler := venue.NewHandler(venueService)
	courtHandler := court.NewHandler(courtService)
	bookingHandler := booking.NewHandler(bookingService)
	paymentHandler := payment.NewHandler(paymentService, cfg.MidtransProduction)
	reviewHandler := review.NewHandler(reviewService)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
	}

	// Browsing and the availability check are open; the payment webhook
	// must be reachable by the provider without a user token.
	router.GET("/venues", venueHandler.ListActive)
	router.GET("/venues/:venueID/courts", courtHandler.ListByVenue)
	router.GET("/courts/:courtID", courtHandler.Get)
	router.GET("/courts/:courtID/availability", bookingHandler.CheckAvailability)
	router.GET("/courts/:courtID/reviews", reviewHandler.ListByCourt)
	router.POST("/api/payments/notification", paymentHandler.Notification)
	router.POST("/api/payments/simulate-approve", paymentHandler.SimulateApprove)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)

		protected.POST("/bookings", bookingHandler.Create)
		protected.GET("/bookings", bookingHandler.ListMine)
		protected.GET("/bookings/:bookingID", bookingHandler.Get)
		protected.POST("/bookings/:bookingID/confirm", bookingHandler.Confirm)
		protected.POST("/bookings/:bookingID/reject", bookingHandler.Reject)
		protected.POST("/bookings/:bookingID/cancel", bookingHandler.Cancel)
		protected.POST("/bookings/:bookingID/complete", bookingHandler.Complete)
		protected.POST("/bookings/:bookingID/pay", paymentHandler.Pay)

		protected.POST("/reviews", reviewHandler.Create)
	}

	penjagaMiddleware := auth.RequireRole(user.RolePenjaga, user.RoleAdmin)
	owner := router.Group("/")
	owner.Use(authMiddleware, penjagaMiddleware)
	{
		owner.POST("/venues", venueHandler.Create)
		owner.GET("/my/venues", venueHandler.ListMine)
		owner.PUT("/venues/:venueID", venueHandler.Update)
		owner.POST("/venues/:venueID/courts", courtHandler.Create)
		owner.PUT("/courts/:courtID", courtHandler.Update)
		owner.GET("/venues/:venueID/bookings", bookingHandler.ListByVenue)
	}

	adminMiddleware := auth.RequireRole(user.RoleAdmin)
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/venues/:venueID/approve", venueHandler.Approve)
		admin.POST("/venues/:venueID/deactivate", venueHandler.Deactivate)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
