package models

// Service is a bookable treatment offered by the clinic.
type Service struct {
	ID    string   `bson:"id" json:"id"`
	Name  string   `bson:"name" json:"name" binding:"required"` // join key for bookings (treatment)
	Price float64  `bson:"price" json:"price"`                  // dollars
	Slots []string `bson:"slots" json:"slots"`                  // ordered slot labels, e.g. "9:00 AM - 9:30 AM"
}

// ServiceName is the name-only projection of a Service.
type ServiceName struct {
	Name string `bson:"name" json:"name"`
}
