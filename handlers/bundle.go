package handlers

import (
	userRepo "clinicport/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the handlers (and the repositories the middleware
// needs) so routes can be registered from a single value.
type HandlerBundle struct {
	// UserRepo backs the admin-role middleware.
	UserRepo userRepo.UserRepository

	// Service catalog and availability.
	ListServicesHandler gin.HandlerFunc
	GetAvailableHandler gin.HandlerFunc
	AddServiceHandler   gin.HandlerFunc

	// Bookings.
	CreateBookingHandler      gin.HandlerFunc
	GetPatientBookingsHandler gin.HandlerFunc
	GetBookingByIDHandler     gin.HandlerFunc

	// Users and roles.
	UpsertUserHandler   gin.HandlerFunc
	GetAllUsersHandler  gin.HandlerFunc
	CheckAdminHandler   gin.HandlerFunc
	PromoteAdminHandler gin.HandlerFunc

	// Doctors.
	AddDoctorHandler     gin.HandlerFunc
	GetAllDoctorsHandler gin.HandlerFunc
	DeleteDoctorHandler  gin.HandlerFunc

	// Payments.
	CreatePaymentIntentHandler gin.HandlerFunc
}
