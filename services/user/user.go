package user

import (
	"errors"
	"fmt"

	userRepo "clinicport/database/repository/user"
	"clinicport/models"
	"clinicport/utils"
)

// ErrNotAdmin is returned when the requester lacks the admin role.
var ErrNotAdmin = errors.New("requester is not an admin")

// UserService manages user records and session issuance.
type UserService interface {
	// UpsertUser stores the user by email and issues a fresh session token.
	UpsertUser(u *models.User) (string, error)
	GetAllUsers() ([]models.User, error)
	// IsAdmin reports whether the user with the given email has the admin
	// role. Unknown emails are simply not admins.
	IsAdmin(email string) (bool, error)
	// PromoteToAdmin sets the admin role on target. The requester must
	// already be an admin, otherwise ErrNotAdmin is returned.
	PromoteToAdmin(requester, target string) error
}

// DefaultUserService implements UserService over the user repository.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) UpsertUser(u *models.User) (string, error) {
	if err := s.Repo.Upsert(u); err != nil {
		return "", err
	}
	token, err := utils.GenerateToken(u.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token for %s: %w", u.Email, err)
	}
	return token, nil
}

func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

func (s *DefaultUserService) IsAdmin(email string) (bool, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	return usr.IsAdmin(), nil
}

func (s *DefaultUserService) PromoteToAdmin(requester, target string) error {
	isAdmin, err := s.IsAdmin(requester)
	if err != nil {
		return err
	}
	if !isAdmin {
		return ErrNotAdmin
	}
	return s.Repo.SetRole(target, models.RoleAdmin)
}
