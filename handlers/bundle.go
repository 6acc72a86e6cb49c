package handlers

import (
	"courtside/services/announcement"
	"courtside/services/booking"
	"courtside/services/coupon"
	"courtside/services/court"
	"courtside/services/dashboard"
	"courtside/services/membership"
	"courtside/services/payment"
	"courtside/services/storage"
	"courtside/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct that the
// router wires up.
type HandlerBundle struct {
	UserSvc user.UserService

	// Booking endpoints
	CreateBookingHandler       gin.HandlerFunc
	ListBookingsHandler        gin.HandlerFunc
	GetBookingHandler          gin.HandlerFunc
	ListPendingBookingsHandler gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	DeleteBookingHandler       gin.HandlerFunc

	// Court endpoints
	ListCourtsHandler  gin.HandlerFunc
	GetCourtHandler    gin.HandlerFunc
	CreateCourtHandler gin.HandlerFunc
	UpdateCourtHandler gin.HandlerFunc
	DeleteCourtHandler gin.HandlerFunc

	// User endpoints
	UpsertUserHandler     gin.HandlerFunc
	GetRoleHandler        gin.HandlerFunc
	SearchUsersHandler    gin.HandlerFunc
	UpdateUserRoleHandler gin.HandlerFunc

	// Membership endpoints
	JoinClubHandler     gin.HandlerFunc
	ListMembersHandler  gin.HandlerFunc
	DeleteMemberHandler gin.HandlerFunc

	// Payment endpoints
	ApplyCouponHandler         gin.HandlerFunc
	CreatePaymentIntentHandler gin.HandlerFunc
	RecordPaymentHandler       gin.HandlerFunc
	ListPaymentsHandler        gin.HandlerFunc

	// Coupon endpoints
	ListCouponsHandler  gin.HandlerFunc
	CreateCouponHandler gin.HandlerFunc
	UpdateCouponHandler gin.HandlerFunc
	DeleteCouponHandler gin.HandlerFunc

	// Announcement endpoints
	ListAnnouncementsHandler  gin.HandlerFunc
	CreateAnnouncementHandler gin.HandlerFunc
	UpdateAnnouncementHandler gin.HandlerFunc
	DeleteAnnouncementHandler gin.HandlerFunc

	// Dashboard endpoints
	AdminStatsHandler gin.HandlerFunc
	UserStatsHandler  gin.HandlerFunc

	// Storage endpoints
	UploadImageHandler gin.HandlerFunc
}

// NewHandlerBundle builds the bundle from the service layer.
func NewHandlerBundle(
	bookingSvc booking.BookingService,
	courtSvc court.CourtService,
	userSvc user.UserService,
	membershipSvc membership.MembershipService,
	paymentSvc payment.PaymentService,
	couponSvc coupon.CouponService,
	announcementSvc announcement.AnnouncementService,
	dashboardSvc dashboard.DashboardService,
	storageSvc storage.StorageService,
) *HandlerBundle {
	bookingH := &BookingHandler{BookingSvc: bookingSvc}
	courtH := &CourtHandler{CourtSvc: courtSvc}
	userH := &UserHandler{UserSvc: userSvc}
	memberH := &MemberHandler{MembershipSvc: membershipSvc}
	paymentH := &PaymentHandler{PaymentSvc: paymentSvc}
	couponH := &CouponHandler{CouponSvc: couponSvc}
	announcementH := &AnnouncementHandler{AnnouncementSvc: announcementSvc}
	dashboardH := &DashboardHandler{DashboardSvc: dashboardSvc}
	storageH := &StorageHandler{StorageSvc: storageSvc}

	return &HandlerBundle{
		UserSvc: userSvc,

		CreateBookingHandler:       bookingH.CreateBookingHandler,
		ListBookingsHandler:        bookingH.ListBookingsHandler,
		GetBookingHandler:          bookingH.GetBookingHandler,
		ListPendingBookingsHandler: bookingH.ListPendingBookingsHandler,
		UpdateBookingStatusHandler: bookingH.UpdateBookingStatusHandler,
		DeleteBookingHandler:       bookingH.DeleteBookingHandler,

		ListCourtsHandler:  courtH.ListCourtsHandler,
		GetCourtHandler:    courtH.GetCourtHandler,
		CreateCourtHandler: courtH.CreateCourtHandler,
		UpdateCourtHandler: courtH.UpdateCourtHandler,
		DeleteCourtHandler: courtH.DeleteCourtHandler,

		UpsertUserHandler:     userH.UpsertUserHandler,
		GetRoleHandler:        userH.GetRoleHandler,
		SearchUsersHandler:    userH.SearchUsersHandler,
		UpdateUserRoleHandler: userH.UpdateUserRoleHandler,

		JoinClubHandler:     memberH.JoinClubHandler,
		ListMembersHandler:  memberH.ListMembersHandler,
		DeleteMemberHandler: memberH.DeleteMemberHandler,

		ApplyCouponHandler:         paymentH.ApplyCouponHandler,
		CreatePaymentIntentHandler: paymentH.CreatePaymentIntentHandler,
		RecordPaymentHandler:       paymentH.RecordPaymentHandler,
		ListPaymentsHandler:        paymentH.ListPaymentsHandler,

		ListCouponsHandler:  couponH.ListCouponsHandler,
		CreateCouponHandler: couponH.CreateCouponHandler,
		UpdateCouponHandler: couponH.UpdateCouponHandler,
		DeleteCouponHandler: couponH.DeleteCouponHandler,

		ListAnnouncementsHandler:  announcementH.ListAnnouncementsHandler,
		CreateAnnouncementHandler: announcementH.CreateAnnouncementHandler,
		UpdateAnnouncementHandler: announcementH.UpdateAnnouncementHandler,
		DeleteAnnouncementHandler: announcementH.DeleteAnnouncementHandler,

		AdminStatsHandler: dashboardH.AdminStatsHandler,
		UserStatsHandler:  dashboardH.UserStatsHandler,

		UploadImageHandler: storageH.UploadImageHandler,
	}
}
