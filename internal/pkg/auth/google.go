// internal/pkg/auth/google.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/romawatches/storefront/internal/config"
	"google.golang.org/api/idtoken"
)

// ErrGoogleNotConfigured is returned when no client ID is configured
var ErrGoogleNotConfigured = errors.New("google sign-in is not configured")

// GoogleIdentity is the verified subset of a Google ID token
type GoogleIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
	GivenName     string
	FamilyName    string
}

// GoogleVerifier validates ID tokens issued by Google sign-in
type GoogleVerifier struct {
	clientID string
	validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

// NewGoogleVerifier creates a verifier for the configured client ID
func NewGoogleVerifier(cfg *config.Config) *GoogleVerifier {
	return &GoogleVerifier{
		clientID: cfg.Google.ClientID,
		validate: idtoken.Validate,
	}
}

// Verify checks the token signature, expiry and audience and returns the identity it carries
func (v *GoogleVerifier) Verify(ctx context.Context, token string) (*GoogleIdentity, error) {
	if v.clientID == "" {
		return nil, ErrGoogleNotConfigured
	}

	payload, err := v.validate(ctx, token, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("invalid google id token: %w", err)
	}

	identity := &GoogleIdentity{
		Subject:       payload.Subject,
		Email:         claimString(payload.Claims, "email"),
		Name:          claimString(payload.Claims, "name"),
		GivenName:     claimString(payload.Claims, "given_name"),
		FamilyName:    claimString(payload.Claims, "family_name"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
	}
	if identity.Email == "" {
		return nil, fmt.Errorf("google id token has no email claim")
	}
	return identity, nil
}

func claimString(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func claimBool(claims map[string]interface{}, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
