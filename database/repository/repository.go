package repository

import (
	announcementRepo "courtside/database/repository/announcement"
	bookingRepo "courtside/database/repository/booking"
	couponRepo "courtside/database/repository/coupon"
	courtRepo "courtside/database/repository/court"
	memberRepo "courtside/database/repository/member"
	paymentRepo "courtside/database/repository/payment"
	userRepo "courtside/database/repository/user"
)

// Re-export the repository interfaces and constructors.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

type CourtRepository = courtRepo.CourtRepository

var NewMongoCourtRepo = courtRepo.NewMongoCourtRepo

type UserRepository = userRepo.UserRepository

var NewMongoUserRepo = userRepo.NewMongoUserRepo

type MemberRepository = memberRepo.MemberRepository

var NewMongoMemberRepo = memberRepo.NewMongoMemberRepo

type CouponRepository = couponRepo.CouponRepository

var NewMongoCouponRepo = couponRepo.NewMongoCouponRepo

type PaymentRepository = paymentRepo.PaymentRepository

var NewMongoPaymentRepo = paymentRepo.NewMongoPaymentRepo

type AnnouncementRepository = announcementRepo.AnnouncementRepository

var NewMongoAnnouncementRepo = announcementRepo.NewMongoAnnouncementRepo
