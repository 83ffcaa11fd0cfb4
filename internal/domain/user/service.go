// internal/domain/user/service.go
package user

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/romawatches/storefront/internal/config"
	"github.com/romawatches/storefront/internal/pkg/auth"
	"github.com/sirupsen/logrus"
)

const (
	adminRedirectURL    = "/admin/dashboard"
	customerRedirectURL = "/"
)

// IdentityVerifier verifies third-party sign-in tokens
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*auth.GoogleIdentity, error)
}

// Service handles user business logic
type Service struct {
	repo            Repository
	google          IdentityVerifier
	passwordManager *auth.PasswordManager
	jwtManager      *auth.JWTManager
	validate        *validator.Validate
	config          *config.Config
	logger          *logrus.Logger
}

// NewService creates a new user service
func NewService(repo Repository, google IdentityVerifier, cfg *config.Config, logger *logrus.Logger) *Service {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	return &Service{
		repo:            repo,
		google:          google,
		passwordManager: auth.NewPasswordManager(cfg),
		jwtManager:      auth.NewJWTManager(cfg),
		validate:        validate,
		config:          cfg,
		logger:          logger,
	}
}

// RegisterRequest represents user registration data
type RegisterRequest struct {
	FirstName       string `json:"firstName" validate:"required,max=100"`
	LastName        string `json:"lastName" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// LoginRequest represents user login data
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
	RedirectURL  string `json:"redirectUrl"`
}

// Register creates a new customer account
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = normalizeEmail(req.Email)

	if err := s.validateRegistration(&req); err != nil {
		return nil, err
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if err := s.passwordManager.ValidatePassword(req.Password); err != nil {
		return nil, ErrWeakPassword.WithMessage(err.Error())
	}

	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashedPassword, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &User{
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      RoleUser,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("User registered")

	return s.issueTokens(user)
}

// Login authenticates a user by email and password
func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.HasPassword() {
		return nil, ErrInvalidCredentials
	}
	if err := s.passwordManager.VerifyPassword(req.Password, user.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// GoogleLogin signs in with a Google ID token, creating or linking the account as needed
func (s *Service) GoogleLogin(ctx context.Context, idToken string) (*AuthResponse, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, ErrInvalidGoogleToken
	}

	identity, err := s.google.Verify(ctx, idToken)
	if err != nil {
		s.logger.WithError(err).Warn("Google sign-in rejected")
		return nil, ErrInvalidGoogleToken
	}

	user, err := s.findOrCreateGoogleUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *Service) findOrCreateGoogleUser(ctx context.Context, identity *auth.GoogleIdentity) (*User, error) {
	user, err := s.repo.FindByGoogleID(ctx, identity.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	email := normalizeEmail(identity.Email)
	subject := identity.Subject

	user, err = s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		user.GoogleID = &subject
		if err := s.repo.Update(ctx, user); err != nil {
			return nil, err
		}
		s.logger.WithField("user_id", user.ID).Info("Google account linked")
		return user, nil
	case !errors.Is(err, ErrUserNotFound):
		return nil, err
	}

	first, last := identity.GivenName, identity.FamilyName
	if first == "" && last == "" {
		first, last = splitName(identity.Name)
	}

	user = &User{
		Email:     email,
		FirstName: first,
		LastName:  last,
		Role:      RoleUser,
		GoogleID:  &subject,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("User registered with Google")
	return user, nil
}

// Refresh exchanges a refresh token for a new token pair
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	return s.issueTokens(user)
}

// Profile returns the signed-in user's account
func (s *Service) Profile(ctx context.Context, userID uint) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *Service) issueTokens(user *User) (*AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	redirect := customerRedirectURL
	if user.IsAdmin() {
		redirect = adminRedirectURL
	}

	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.config.JWT.AccessTokenExpiry.Seconds()),
		RedirectURL:  redirect,
	}, nil
}

func (s *Service) validateRegistration(req *RegisterRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return ErrInvalidRegistration
	}

	first := fieldErrs[0]
	switch first.Tag() {
	case "required":
		return ErrInvalidRegistration.WithMessage(fmt.Sprintf("%s is required", first.Field()))
	case "email":
		return ErrInvalidRegistration.WithMessage("email is not a valid email address")
	case "max":
		return ErrInvalidRegistration.WithMessage(fmt.Sprintf("%s must be at most %s characters", first.Field(), first.Param()))
	default:
		return ErrInvalidRegistration.WithMessage(fmt.Sprintf("%s is invalid", first.Field()))
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
