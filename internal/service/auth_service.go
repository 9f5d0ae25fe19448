package service

import (
	"cafe-inventory/internal/model"
	"cafe-inventory/internal/repository"
)

type AuthService interface {
	Login(username, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Login authenticates a username/password pair. Unknown usernames and
// wrong passwords both come back as ErrInvalidCredentials so callers
// cannot enumerate accounts.
func (s *authService) Login(username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
