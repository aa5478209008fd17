package userRepo

import "clinicport/models"

// UserRepository defines persistence operations for users. Users are keyed by
// email; there is no delete path.
type UserRepository interface {
	Upsert(user *models.User) error
	// GetByEmail returns (nil, nil) when no user matches.
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	SetRole(email, role string) error
}
