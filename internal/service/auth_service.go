package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"

	"github.com/clink-app/clink-backend/internal/domain"
	"github.com/clink-app/clink-backend/internal/dto"
	"github.com/clink-app/clink-backend/internal/utils"
)

type AuthServiceInterface interface {
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	LoginUser(ctx context.Context, req dto.LoginRequest) (string, error)
	GoogleLogin(ctx context.Context, req dto.GoogleLoginRequest) (string, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type AuthService struct {
	repo           domain.UserRepository
	jwtSecret      string
	jwtExpiry      time.Duration
	googleClientID string

	googleTokenValidator func(ctx context.Context, token string, audience string) (*idtoken.Payload, error)
}

func NewAuthService(repo domain.UserRepository, jwtSecret string, jwtExpiry time.Duration, googleClientID string) *AuthService {
	return &AuthService{
		repo:                 repo,
		jwtSecret:            jwtSecret,
		jwtExpiry:            jwtExpiry,
		googleClientID:       googleClientID,
		googleTokenValidator: idtoken.Validate,
	}
}

// RegisterUser creates an account from email/password credentials.
func (s *AuthService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if req.Email == "" {
		return nil, errors.New("email is required")
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, errors.New("invalid email format")
	}
	if len(req.Password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	hashedPass, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hashedPass),
		Name:         req.Name,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginUser authenticates credentials and returns a session JWT.
func (s *AuthService) LoginUser(ctx context.Context, req dto.LoginRequest) (string, error) {
	if req.Email == "" || req.Password == "" {
		return "", errors.New("missing email or password")
	}

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrInvalidCredentials // Don't reveal user existence
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	return utils.GenerateToken(s.jwtSecret, s.jwtExpiry, user.ID)
}

// GoogleLogin validates a Google ID token, provisioning an account on
// first sign-in, and returns a session JWT.
func (s *AuthService) GoogleLogin(ctx context.Context, req dto.GoogleLoginRequest) (string, error) {
	validate := s.googleTokenValidator
	if validate == nil {
		validate = idtoken.Validate
	}

	payload, err := validate(ctx, req.Token, s.googleClientID)
	if err != nil {
		return "", errors.New("invalid google token")
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return "", errors.New("email not provided by google")
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		user = &domain.User{
			ID:           uuid.New(),
			Email:        email,
			PasswordHash: "", // No password for OAuth users
			Name:         name,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		if err := s.repo.CreateUser(ctx, user); err != nil {
			return "", err
		}
	}

	return utils.GenerateToken(s.jwtSecret, s.jwtExpiry, user.ID)
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.repo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// SetGoogleTokenValidator overrides the Google validator, for tests.
func (s *AuthService) SetGoogleTokenValidator(v func(ctx context.Context, token string, audience string) (*idtoken.Payload, error)) {
	s.googleTokenValidator = v
}
