package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/dyslexiaid/dyslexiaid-go/internal/auth"
	"github.com/dyslexiaid/dyslexiaid-go/internal/model"
	"github.com/dyslexiaid/dyslexiaid-go/internal/repository"
)

// Validation sentinels double as the client-facing error strings, so they
// keep the exact wording existing clients match on.
var (
	ErrFieldsRequired      = errors.New("All fields are required")
	ErrInvalidEmail        = errors.New("Invalid email format")
	ErrPasswordTooShort    = errors.New("Password must be at least 6 characters long")
	ErrPasswordMismatch    = errors.New("Passwords do not match")
	ErrUserExists          = errors.New("User already exists")
	ErrLoginFieldsRequired = errors.New("Email and password are required")
	ErrInvalidCredentials  = errors.New("Invalid email or password")
)

// emailPattern requires characters before the @, after it, and a dot
// followed by at least one more character.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MinPasswordLen is the minimum accepted password length.
const MinPasswordLen = 6

// AuthService handles registration and login business logic.
type AuthService struct {
	repo      *repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register validates the registration request and creates the user.
func (s *AuthService) Register(ctx context.Context, req model.CreateUserRequest) (model.RegisterResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if name == "" || email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return model.RegisterResponse{}, ErrFieldsRequired
	}
	if !emailPattern.MatchString(email) {
		return model.RegisterResponse{}, ErrInvalidEmail
	}
	if len(req.Password) < MinPasswordLen {
		return model.RegisterResponse{}, ErrPasswordTooShort
	}
	if req.Password != req.ConfirmPassword {
		return model.RegisterResponse{}, ErrPasswordMismatch
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return model.RegisterResponse{}, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.RegisterResponse{}, ErrUserExists
		}
		return model.RegisterResponse{}, err
	}

	return model.RegisterResponse{
		Message: "User registered successfully",
		User: model.UserResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

// Login authenticates a user and returns a session token. Unknown emails and
// wrong passwords produce the same error so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if email == "" || req.Password == "" {
		return model.AuthResponse{}, ErrLoginFieldsRequired
	}
	if !emailPattern.MatchString(email) {
		return model.AuthResponse{}, ErrInvalidEmail
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User: model.UserResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}
