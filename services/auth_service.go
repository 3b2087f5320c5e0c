package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/DarkcodeQuan/WebProject/models"
	"github.com/DarkcodeQuan/WebProject/pkg/apperrors"
	"github.com/DarkcodeQuan/WebProject/repository"
)

// AuthService registers users and verifies credentials.
type AuthService struct {
	users repository.UserRepo
}

func NewAuthService(users repository.UserRepo) *AuthService {
	return &AuthService{users: users}
}

// Signup creates a customer account with a bcrypt-hashed password.
func (s *AuthService) Signup(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.InvalidArgument("Email and password are required", nil)
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.InvalidArgument("A user with this email already exists", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns the matching user. Invalid
// credentials surface as Unauthorized regardless of which check failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.New(apperrors.ErrUnauthorized.Code, "Invalid credentials", nil)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.New(apperrors.ErrUnauthorized.Code, "Invalid credentials", nil)
	}
	return user, nil
}
