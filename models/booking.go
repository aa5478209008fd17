package models

import "time"

// Booking records one claimed slot for a treatment on a given date.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	Treatment   string    `bson:"treatment" json:"treatment" binding:"required"` // Service.Name
	Date        string    `bson:"date" json:"date" binding:"required"`           // "YYYY-MM-DD"
	Patient     string    `bson:"patient" json:"patient" binding:"required,email"`
	PatientName string    `bson:"patientName" json:"patientName"`
	Slot        string    `bson:"slot" json:"slot" binding:"required"`
	Phone       string    `bson:"phone" json:"phone"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
