package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicport/config"
	"clinicport/database"
	bookingRepoPkg "clinicport/database/repository/booking"
	doctorRepoPkg "clinicport/database/repository/doctor"
	serviceRepoPkg "clinicport/database/repository/service"
	userRepoPkg "clinicport/database/repository/user"
	"clinicport/handlers"
	"clinicport/middleware"
	"clinicport/routes"
	"clinicport/services/availability"
	"clinicport/services/booking"
	"clinicport/services/doctor"
	"clinicport/services/payment"
	"clinicport/services/user"
	"clinicport/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRoleCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeSecretKey

	// repositories.
	db := database.DB()
	svcRepo := serviceRepoPkg.NewMongoServiceRepo(db)
	bkRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	usrRepo := userRepoPkg.NewMongoUserRepo(db)
	docRepo := doctorRepoPkg.NewMongoDoctorRepo(db)

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		ServiceRepo: svcRepo,
		BookingRepo: bkRepo,
	}
	bookingService := &booking.DefaultBookingService{Repo: bkRepo}
	userService := &user.DefaultUserService{Repo: usrRepo}
	doctorService := &doctor.DefaultDoctorService{Repo: docRepo}
	paymentService := &payment.StripePaymentService{Logger: logger}

	// handlers.
	serviceHandler := handlers.NewServiceHandler(svcRepo, availabilityService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	doctorHandler := handlers.NewDoctorHandler(doctorService, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: usrRepo,

		ListServicesHandler: serviceHandler.ListServicesHandler,
		GetAvailableHandler: serviceHandler.GetAvailableHandler,
		AddServiceHandler:   serviceHandler.AddServiceHandler,

		CreateBookingHandler:      bookingHandler.CreateBookingHandler,
		GetPatientBookingsHandler: bookingHandler.GetPatientBookingsHandler,
		GetBookingByIDHandler:     bookingHandler.GetBookingByIDHandler,

		UpsertUserHandler:   userHandler.UpsertUserHandler,
		GetAllUsersHandler:  userHandler.GetAllUsersHandler,
		CheckAdminHandler:   userHandler.CheckAdminHandler,
		PromoteAdminHandler: userHandler.PromoteAdminHandler,

		AddDoctorHandler:     doctorHandler.AddDoctorHandler,
		GetAllDoctorsHandler: doctorHandler.GetAllDoctorsHandler,
		DeleteDoctorHandler:  doctorHandler.DeleteDoctorHandler,

		CreatePaymentIntentHandler: paymentHandler.CreatePaymentIntentHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	database.CloseDB(ctx)

	logger.Sugar().Info("main: server stopped gracefully")
}
