package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/romawatches/storefront/internal/config"
	"github.com/romawatches/storefront/internal/domain/user"
	"github.com/romawatches/storefront/internal/infrastructure/database/memory"
	"github.com/romawatches/storefront/internal/pkg/apperror"
	"github.com/romawatches/storefront/internal/pkg/auth"
	"github.com/romawatches/storefront/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	identity *auth.GoogleIdentity
	err      error
	calls    int
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) (*auth.GoogleIdentity, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	identity := *f.identity
	return &identity, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "RomaWatches"},
		JWT: config.JWTConfig{
			Secret:             "test-secret-that-is-at-least-32-characters",
			AccessTokenExpiry:  time.Hour,
			RefreshTokenExpiry: 24 * time.Hour,
		},
		Security: config.SecurityConfig{BcryptCost: 4},
	}
}

type fixture struct {
	store     *memory.Store
	google    *fakeVerifier
	service   *user.Service
	cfg       *config.Config
	passwords *auth.PasswordManager
}

func newFixture() *fixture {
	cfg := testConfig()
	store := memory.NewStore()
	google := &fakeVerifier{identity: &auth.GoogleIdentity{
		Subject: "google-123",
		Email:   "an.nguyen@gmail.com",
		Name:    "Nguyễn Văn An",
	}}
	return &fixture{
		store:     store,
		google:    google,
		service:   user.NewService(store.Users(), google, cfg, logger.Discard()),
		cfg:       cfg,
		passwords: auth.NewPasswordManager(cfg),
	}
}

func validRegistration() user.RegisterRequest {
	return user.RegisterRequest{
		FirstName:       "  An ",
		LastName:        "Nguyễn",
		Email:           "  An.Nguyen@Example.com ",
		Password:        "Secret@1",
		ConfirmPassword: "Secret@1",
	}
}

func TestRegister(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp, err := f.service.Register(ctx, validRegistration())
	require.NoError(t, err)

	assert.Equal(t, "an.nguyen@example.com", resp.User.Email)
	assert.Equal(t, "An", resp.User.FirstName)
	assert.Equal(t, user.RoleUser, resp.User.Role)
	assert.NotEqual(t, "Secret@1", resp.User.Password)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, "/", resp.RedirectURL)

	profile, err := f.service.Profile(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "an.nguyen@example.com", profile.Email)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.service.Register(ctx, validRegistration())
	require.NoError(t, err)

	req := validRegistration()
	req.Email = "AN.NGUYEN@example.com"
	_, err = f.service.Register(ctx, req)
	assert.ErrorIs(t, err, user.ErrEmailTaken)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *user.RegisterRequest)
		want    error
		message string
	}{
		{
			name:    "missing first name",
			mutate:  func(r *user.RegisterRequest) { r.FirstName = "   " },
			want:    user.ErrInvalidRegistration,
			message: "firstName is required",
		},
		{
			name:    "malformed email",
			mutate:  func(r *user.RegisterRequest) { r.Email = "not-an-email" },
			want:    user.ErrInvalidRegistration,
			message: "email is not a valid email address",
		},
		{
			name:    "confirmation differs",
			mutate:  func(r *user.RegisterRequest) { r.ConfirmPassword = "Secret@2" },
			want:    user.ErrPasswordMismatch,
			message: "passwords do not match",
		},
		{
			name: "no special character",
			mutate: func(r *user.RegisterRequest) {
				r.Password, r.ConfirmPassword = "Secret12", "Secret12"
			},
			want:    user.ErrWeakPassword,
			message: auth.ErrPasswordNoSpecial.Error(),
		},
		{
			name: "too short",
			mutate: func(r *user.RegisterRequest) {
				r.Password, r.ConfirmPassword = "S@1a", "S@1a"
			},
			want:    user.ErrWeakPassword,
			message: auth.ErrPasswordTooShort.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRegistration()
			tt.mutate(&req)

			_, err := f.service.Register(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		})
	}
}

func TestLogin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.service.Register(ctx, validRegistration())
	require.NoError(t, err)

	resp, err := f.service.Login(ctx, user.LoginRequest{Email: "AN.NGUYEN@example.com", Password: "Secret@1"})
	require.NoError(t, err)
	assert.Equal(t, "/", resp.RedirectURL)

	_, wrongPassword := f.service.Login(ctx, user.LoginRequest{Email: "an.nguyen@example.com", Password: "Secret@2"})
	_, unknownEmail := f.service.Login(ctx, user.LoginRequest{Email: "nobody@example.com", Password: "Secret@1"})
	_, empty := f.service.Login(ctx, user.LoginRequest{})

	for _, err := range []error{wrongPassword, unknownEmail, empty} {
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
		assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
	}
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginRedirectsAdmins(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	hash, err := f.passwords.HashPassword("Admin@123")
	require.NoError(t, err)
	require.NoError(t, f.store.Users().Create(ctx, &user.User{
		Email:     "admin@example.com",
		Password:  hash,
		FirstName: "Admin",
		LastName:  "Account",
		Role:      user.RoleAdmin,
	}))

	resp, err := f.service.Login(ctx, user.LoginRequest{Email: "admin@example.com", Password: "Admin@123"})
	require.NoError(t, err)
	assert.Equal(t, "/admin/dashboard", resp.RedirectURL)

	claims, err := auth.NewJWTManager(f.cfg).ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
}

func TestGoogleLoginCreatesAccount(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp, err := f.service.GoogleLogin(ctx, "id-token")
	require.NoError(t, err)

	assert.Equal(t, "an.nguyen@gmail.com", resp.User.Email)
	assert.Equal(t, "An", resp.User.FirstName)
	assert.Equal(t, "Nguyễn Văn", resp.User.LastName)
	assert.Equal(t, user.RoleUser, resp.User.Role)
	assert.False(t, resp.User.HasPassword())

	again, err := f.service.GoogleLogin(ctx, "id-token")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, again.User.ID)

	// Google-only accounts cannot use the password form
	_, err = f.service.Login(ctx, user.LoginRequest{Email: "an.nguyen@gmail.com", Password: "anything"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestGoogleLoginLinksExistingAccount(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	req := validRegistration()
	req.Email = "An.Nguyen@gmail.com"
	registered, err := f.service.Register(ctx, req)
	require.NoError(t, err)

	resp, err := f.service.GoogleLogin(ctx, "id-token")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, resp.User.ID)
	require.NotNil(t, resp.User.GoogleID)
	assert.Equal(t, "google-123", *resp.User.GoogleID)

	// The password still works after linking
	_, err = f.service.Login(ctx, user.LoginRequest{Email: "an.nguyen@gmail.com", Password: "Secret@1"})
	assert.NoError(t, err)
}

func TestGoogleLoginRejectsBadTokens(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.service.GoogleLogin(ctx, "  ")
	assert.ErrorIs(t, err, user.ErrInvalidGoogleToken)
	assert.Equal(t, 0, f.google.calls)

	f.google.err = errors.New("token expired")
	_, err = f.service.GoogleLogin(ctx, "id-token")
	assert.ErrorIs(t, err, user.ErrInvalidGoogleToken)
	assert.Equal(t, 1, f.google.calls)
}

func TestRefresh(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	registered, err := f.service.Register(ctx, validRegistration())
	require.NoError(t, err)

	refreshed, err := f.service.Refresh(ctx, registered.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, refreshed.User.ID)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = f.service.Refresh(ctx, registered.AccessToken)
	assert.ErrorIs(t, err, user.ErrInvalidRefreshToken)

	_, err = f.service.Refresh(ctx, "garbage")
	assert.ErrorIs(t, err, user.ErrInvalidRefreshToken)
}

func TestProfileNotFound(t *testing.T) {
	f := newFixture()
	_, err := f.service.Profile(context.Background(), 99)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
