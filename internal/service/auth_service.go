package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"infracore/internal/auth"
	"infracore/internal/errors"
	"infracore/internal/model"
	"infracore/internal/repository"
)

// AuthService handles admin authentication.
type AuthService interface {
	// Login verifies credentials and issues a session token. Which check
	// failed is not distinguishable beyond the returned sentinel.
	Login(ctx context.Context, email, password string) (token string, admin *model.Admin, err error)
}

type authService struct {
	admins     repository.AdminRepository
	jwtService *auth.JWTService
	allowList  []string
}

// NewAuthService creates a new authentication service. An empty allowList
// disables the allow-list check.
func NewAuthService(admins repository.AdminRepository, jwtService *auth.JWTService, allowList []string) AuthService {
	return &authService{
		admins:     admins,
		jwtService: jwtService,
		allowList:  allowList,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *model.Admin, error) {
	if len(s.allowList) > 0 && !contains(s.allowList, email) {
		return "", nil, errors.ErrNotAdmin
	}

	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
