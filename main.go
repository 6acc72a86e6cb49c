package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courtside/config"
	"courtside/database"
	announcementRepo "courtside/database/repository/announcement"
	bookingRepo "courtside/database/repository/booking"
	couponRepo "courtside/database/repository/coupon"
	courtRepo "courtside/database/repository/court"
	memberRepo "courtside/database/repository/member"
	paymentRepo "courtside/database/repository/payment"
	userRepoPkg "courtside/database/repository/user"
	"courtside/handlers"
	"courtside/middleware"
	"courtside/routes"
	"courtside/services/announcement"
	"courtside/services/booking"
	"courtside/services/coupon"
	"courtside/services/court"
	"courtside/services/dashboard"
	"courtside/services/membership"
	"courtside/services/payment"
	"courtside/services/user"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitRoleCache()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	courts := courtRepo.NewMongoCourtRepo()
	users := userRepoPkg.NewMongoUserRepo()
	members := memberRepo.NewMongoMemberRepo()
	coupons := couponRepo.NewMongoCouponRepo()
	payments := paymentRepo.NewMongoPaymentRepo()
	announcements := announcementRepo.NewMongoAnnouncementRepo()

	roleCache := utils.NewRedisRoleCache()

	// services.
	userService := &user.DefaultUserService{
		Repo:  users,
		Cache: roleCache,
	}
	membershipService := &membership.DefaultMembershipService{
		Members:   members,
		Users:     users,
		Bookings:  bookings,
		RoleCache: roleCache,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:       bookings,
		CourtRepo:  courts,
		Membership: membershipService,
	}
	courtService := &court.DefaultCourtService{
		Repo: courts,
	}
	paymentService := &payment.DefaultPaymentService{
		Payments: payments,
		Bookings: bookings,
		Coupons:  coupons,
	}
	couponService := &coupon.DefaultCouponService{
		Repo: coupons,
	}
	announcementService := &announcement.DefaultAnnouncementService{
		Repo: announcements,
	}
	dashboardService := &dashboard.DefaultDashboardService{
		Bookings: bookings,
		Courts:   courts,
		Users:    users,
		Members:  members,
		Payments: payments,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(
		bookingService,
		courtService,
		userService,
		membershipService,
		paymentService,
		couponService,
		announcementService,
		dashboardService,
		cloudinaryStorageService,
	)
	routes.RegisterRoutes(router, handlerBundle)

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
