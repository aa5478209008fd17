package models

import "time"

// Doctor is an admin-managed clinician profile, keyed by email for deletion.
type Doctor struct {
	Email     string    `bson:"email" json:"email" binding:"required,email"`
	Name      string    `bson:"name" json:"name" binding:"required"`
	Specialty string    `bson:"specialty" json:"specialty"`
	ImageURL  string    `bson:"img" json:"img"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
