package routes

import (
	"net/http"
	"time"

	"clinicport/handlers"
	"clinicport/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterServiceRoutes registers the service catalog endpoints. Reads are
// public; catalog changes are admin only.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/service", hb.ListServicesHandler)
	r.GET("/available", hb.GetAvailableHandler)
	r.POST("/service", middleware.RequireAuth(), middleware.RequireAdmin(hb.UserRepo), hb.AddServiceHandler)
}

// RegisterBookingRoutes registers booking endpoints. Listing a patient's
// bookings requires a token whose subject matches the patient.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/booking", hb.CreateBookingHandler)
	r.GET("/booking", middleware.RequireAuth(), hb.GetPatientBookingsHandler)
	r.GET("/booking/:id", hb.GetBookingByIDHandler)
}

// RegisterUserRoutes registers user upsert, listing and role endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.PUT("/user/:email", hb.UpsertUserHandler)
	r.GET("/user", middleware.RequireAuth(), hb.GetAllUsersHandler)
	r.GET("/admin/:email", hb.CheckAdminHandler)
	r.PUT("/user/admin/:email", middleware.RequireAuth(), hb.PromoteAdminHandler)
}

// RegisterDoctorRoutes registers the admin-only doctor roster endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/doctor")
	{
		api.Use(middleware.RequireAuth(), middleware.RequireAdmin(hb.UserRepo))
		api.GET("", hb.GetAllDoctorsHandler)
		api.POST("", hb.AddDoctorHandler)
		api.DELETE("/:email", hb.DeleteDoctorHandler)
	}
}

// RegisterPaymentRoutes registers the payment-intent endpoint.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-payment-intent", middleware.RequireAuth(), hb.CreatePaymentIntentHandler)
}

// RegisterLivenessRoute registers the root liveness endpoint.
func RegisterLivenessRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Clinic portal server is running!")
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterLivenessRoute(r)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
}
