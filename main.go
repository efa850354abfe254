package main

import (
	"context"
	"os"
	"time"

	"github.com/campus-events/backend/auth"
	"github.com/campus-events/backend/config"
	"github.com/campus-events/backend/controller"
	"github.com/campus-events/backend/entity"
	"github.com/campus-events/backend/repository"
	"github.com/campus-events/backend/service"

	"github.com/flowchartsman/retry"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	mongoClient, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect mongo")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(ctx)
	}()

	retrier := retry.NewRetrier(5, 500*time.Millisecond, 5*time.Second)
	err = retrier.Run(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return mongoClient.Ping(ctx, readpref.Primary())
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo is unreachable")
	}

	db := mongoClient.Database(cfg.MongoDB)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure indexes")
	}

	eventRepository := repository.NewEventRepository(db)
	organizationRepository := repository.NewOrganizationRepository(db)
	applicationRepository := repository.NewApplicationRepository(db)
	notificationRepository := repository.NewNotificationRepository(db)
	userRepository := repository.NewUserRepository(db)
	registrationRepository := repository.NewRegistrationRepository(db)
	reservationRepository := repository.NewReservationRepository(db)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	mailer := service.NewMailer(cfg)

	notificationService := service.NewNotificationService(notificationRepository, userRepository, mailer)
	eventService := service.NewEventService(eventRepository)
	applicationService := service.NewApplicationService(applicationRepository, eventRepository, organizationRepository, notificationService)
	organizationService := service.NewOrganizationService(organizationRepository)
	authService := service.NewAuthService(userRepository, tokens)
	registrationService := service.NewRegistrationService(registrationRepository, eventRepository)
	reservationService := service.NewReservationService(reservationRepository)

	authController := &controller.AuthController{AuthService: authService}
	eventController := &controller.EventController{EventService: eventService, RegistrationService: registrationService}
	vendorController := &controller.VendorController{ApplicationService: applicationService, NotificationService: notificationService}
	adminController := &controller.AdminController{
		ApplicationService:  applicationService,
		NotificationService: notificationService,
		OrganizationService: organizationService,
	}
	reservationController := &controller.ReservationController{ReservationService: reservationService}

	authenticated := auth.Middleware(tokens, userRepository)
	staffOnly := auth.RequireRoles(entity.RoleAdmin, entity.RoleEventOffice)
	vendorOnly := auth.RequireRoles(entity.RoleVendor)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/auth/register", authController.Register)
	r.POST("/auth/login", authController.Login)
	r.POST("/auth/vendor/register", authController.RegisterVendor)
	r.POST("/auth/vendor/login", authController.LoginVendor)

	events := r.Group("/events")
	{
		events.GET("", eventController.List)
		events.GET("/search", eventController.Search)
		events.GET("/filter", eventController.Filter)
		events.GET("/:id", eventController.Get)
		events.POST("/create", authenticated, staffOnly, eventController.Create)
		events.PUT("/update/:id", authenticated, staffOnly, eventController.Update)
		events.PATCH("/publish/:id", authenticated, staffOnly, eventController.Publish)
		events.POST("/:id/register", authenticated, eventController.Register)
		events.GET("/registrations/mine", authenticated, eventController.MyRegistrations)
	}

	vendor := r.Group("/vendor", authenticated, vendorOnly)
	{
		vendor.POST("/events/:eventId/applications", vendorController.SubmitApplication)
		vendor.GET("/applications/mine", vendorController.MyApplications)
		vendor.GET("/notifications", vendorController.MyNotifications)
	}

	admin := r.Group("/admin", authenticated, staffOnly)
	{
		admin.GET("/vendor-applications", adminController.ListApplications)
		admin.PATCH("/vendor-applications/:id/status", adminController.ReviewApplication)
		admin.GET("/notifications", adminController.ListNotifications)
		admin.PATCH("/notifications/:id/read", adminController.MarkNotificationRead)
		admin.PATCH("/notifications/read-all", adminController.MarkAllNotificationsRead)
		admin.POST("/organizations", adminController.CreateOrganization)
		admin.GET("/organizations", adminController.ListOrganizations)
	}

	courts := r.Group("/courts")
	{
		courts.GET("", reservationController.ListCourts)
		courts.POST("", authenticated, staffOnly, reservationController.CreateCourt)
		courts.POST("/:id/reservations", authenticated, reservationController.Reserve)
		courts.GET("/reservations/mine", authenticated, reservationController.MyReservations)
	}

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
