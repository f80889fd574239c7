package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"mockview/config"
	"mockview/cron"
	"mockview/database"
	approvalRepo "mockview/database/repository/approval"
	bookingRepo "mockview/database/repository/booking"
	candidateRepo "mockview/database/repository/candidate"
	interviewerRepo "mockview/database/repository/interviewer"
	paymentRepo "mockview/database/repository/payment"
	slotRepo "mockview/database/repository/slot"
	txnRepo "mockview/database/repository/txn"
	userRepoPkg "mockview/database/repository/user"
	"mockview/handlers"
	"mockview/middleware"
	"mockview/routes"
	"mockview/services/approval"
	"mockview/services/gateway"
	"mockview/services/notification"
	"mockview/services/reservation"
	"mockview/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.StartHealthMonitor(utils.GetAuthCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	slots := slotRepo.NewMongoSlotRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	payments := paymentRepo.NewMongoPaymentRepo()
	candidates := candidateRepo.NewMongoCandidateRepo()
	interviewers := interviewerRepo.NewMongoInterviewerRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	approvals := approvalRepo.NewMongoApprovalRepo()
	uow := txnRepo.NewMongoUnitOfWork(database.MongoClient)

	for name, ensure := range map[string]func() error{
		"slots":             slots.EnsureIndexes,
		"bookings":          bookings.EnsureIndexes,
		"payments":          payments.EnsureIndexes,
		"candidates":        candidates.EnsureIndexes,
		"interviewers":      interviewers.EnsureIndexes,
		"approval_requests": approvals.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	razorpayGateway := gateway.NewRazorpayGateway(
		config.AppConfig.RazorpayKeyID,
		config.AppConfig.RazorpayKeySecret,
		logger,
	)
	notifier := notification.NewSMTPService(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUser,
		config.AppConfig.SMTPPass,
		config.AppConfig.SMTPFrom,
		logger,
	)

	reservationTTL := time.Duration(config.AppConfig.ReservationTTLMinutes) * time.Minute
	expiryScheduler := cron.NewExpiryScheduler(reservationTTL)
	defer expiryScheduler.Close()

	coordinator := &reservation.DefaultCoordinator{
		UoW:          uow,
		Slots:        slots,
		Bookings:     bookings,
		Payments:     payments,
		Candidates:   candidates,
		Interviewers: interviewers,
		Users:        userRepo,
		Gateway:      razorpayGateway,
		Expiry:       expiryScheduler,
		Notifier:     notifier,
		Logger:       logger,
	}

	approvalService := &approval.DefaultService{
		UoW:          uow,
		Requests:     approvals,
		Interviewers: interviewers,
		Users:        userRepo,
		Notifier:     notifier,
		Logger:       logger,
	}

	cron.InitExpiryWorker(coordinator, logger)

	reservationHandler := handlers.NewReservationHandler(coordinator, slots, logger)
	approvalHandler := handlers.NewApprovalHandler(approvalService, logger)

	routes.RegisterRoutes(router, reservationHandler, approvalHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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

	logger.Sugar().Info("main: server stopped gracefully")
}
