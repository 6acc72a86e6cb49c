package routes

import (
	"net/http"
	"time"

	"courtside/handlers"
	"courtside/middleware"
	"courtside/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCourtRoutes registers the catalog endpoints. Browsing is
// public; mutations are admin-only.
func RegisterCourtRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/courts")
	{
		api.GET("", hb.ListCourtsHandler)
		api.GET("/:id", hb.GetCourtHandler)

		admin := api.Group("")
		admin.Use(middleware.AuthMiddleware(hb.UserSvc), middleware.RequireRoles(models.RoleAdmin))
		admin.POST("", hb.CreateCourtHandler)
		admin.PUT("/:id", hb.UpdateCourtHandler)
		admin.DELETE("/:id", hb.DeleteCourtHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	api.Use(middleware.AuthMiddleware(hb.UserSvc))
	{
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.DELETE("/:id", hb.DeleteBookingHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		admin.GET("/pending", hb.ListPendingBookingsHandler)
		admin.PATCH("/:id", hb.UpdateBookingStatusHandler)
	}
}

// RegisterUserRoutes registers identity and role endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	api.Use(middleware.AuthMiddleware(hb.UserSvc))
	{
		api.POST("", hb.UpsertUserHandler)
		api.GET("/role/:email", hb.GetRoleHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		admin.GET("/search", hb.SearchUsersHandler)
		admin.PATCH("/:id/role", hb.UpdateUserRoleHandler)
	}
}

// RegisterMemberRoutes registers club membership endpoints.
func RegisterMemberRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/members")
	api.Use(middleware.AuthMiddleware(hb.UserSvc))
	{
		api.POST("", hb.JoinClubHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		admin.GET("", hb.ListMembersHandler)
		admin.DELETE("/:id", hb.DeleteMemberHandler)
	}
}

// RegisterPaymentRoutes registers the payment handoff endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(hb.UserSvc))
	{
		api.POST("/create-payment-intent", hb.CreatePaymentIntentHandler)
		api.POST("/payments", hb.RecordPaymentHandler)
		api.GET("/payments/user/:email", hb.ListPaymentsHandler)
	}
}

// RegisterCouponRoutes registers coupon listing, application and the
// admin CRUD.
func RegisterCouponRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/coupons")
	api.Use(middleware.AuthMiddleware(hb.UserSvc))
	{
		api.GET("", hb.ListCouponsHandler)
		api.POST("/apply", hb.ApplyCouponHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		admin.POST("", hb.CreateCouponHandler)
		admin.PUT("/:id", hb.UpdateCouponHandler)
		admin.DELETE("/:id", hb.DeleteCouponHandler)
	}
}

// RegisterAnnouncementRoutes registers announcements. Reading is
// public; mutations are admin-only.
func RegisterAnnouncementRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/announcements")
	{
		api.GET("", hb.ListAnnouncementsHandler)

		admin := api.Group("")
		admin.Use(middleware.AuthMiddleware(hb.UserSvc), middleware.RequireRoles(models.RoleAdmin))
		admin.POST("", hb.CreateAnnouncementHandler)
		admin.PUT("/:id", hb.UpdateAnnouncementHandler)
		admin.DELETE("/:id", hb.DeleteAnnouncementHandler)
	}
}

// RegisterDashboardRoutes registers the overview counters.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	api.Use(middleware.AuthMiddleware(hb.UserSvc))
	{
		api.GET("/user-stats", hb.UserStatsHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		admin.GET("/admin-stats", hb.AdminStatsHandler)
	}
}

// RegisterStorageRoutes registers image uploads (admin).
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	api.Use(middleware.AuthMiddleware(hb.UserSvc), middleware.RequireRoles(models.RoleAdmin))
	{
		api.POST("/:folder", hb.UploadImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Courtside"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCourtRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterMemberRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterCouponRoutes(r, hb)
	RegisterAnnouncementRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
}
