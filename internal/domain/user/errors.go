package user

import "github.com/romawatches/storefront/internal/pkg/apperror"

var (
	ErrUserNotFound        = apperror.NotFound("user_not_found", "user not found")
	ErrEmailTaken          = apperror.Conflict("email_taken", "an account with this email already exists")
	ErrInvalidRegistration = apperror.Validation("validation_error", "invalid registration details")
	ErrPasswordMismatch    = apperror.Validation("password_mismatch", "passwords do not match")
	ErrWeakPassword        = apperror.Validation("weak_password", "password does not meet the requirements")
	ErrInvalidCredentials  = apperror.Unauthorized("invalid_credentials", "invalid email or password")
	ErrInvalidGoogleToken  = apperror.Unauthorized("invalid_google_token", "google sign-in failed")
	ErrInvalidRefreshToken = apperror.Unauthorized("invalid_refresh_token", "invalid or expired refresh token")
)
