package service_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/cinestream/backend/internal/repository/postgres"
	"github.com/cinestream/backend/internal/service"
	"github.com/cinestream/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Verify(t *testing.T) {
	digest, err := service.HashPassword("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, digest)

	assert.True(t, service.CheckPassword("secret1", digest))
	assert.False(t, service.CheckPassword("secret2", digest))
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	tests := []struct {
		name   string
		digest string
	}{
		{name: "empty", digest: ""},
		{name: "not a bcrypt hash", digest: "plaintext"},
		{name: "foreign format", digest: "$argon2id$v=19$m=65536,t=3,p=2$c29tZXNhbHQ$hash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, service.CheckPassword("secret1", tt.digest))
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	codec := testutil.NewTestCodec(t)
	authService := service.NewAuthService(repos.User, codec, cfg)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   service.RegisterInput
		setup   func()
		wantErr error
	}{
		{
			name:  "successful registration",
			input: service.RegisterInput{Email: "new@example.com", Password: "password123"},
		},
		{
			name:  "registration with phone",
			input: service.RegisterInput{Email: "withphone@example.com", Phone: "+15550001111", Password: "password123"},
		},
		{
			name:  "duplicate email",
			input: service.RegisterInput{Email: "taken@example.com", Password: "password123"},
			setup: func() {
				testutil.NewUserBuilder().WithEmail("taken@example.com").Build(t, testDB.DB)
			},
			wantErr: service.ErrEmailExists,
		},
		{
			name:  "duplicate phone",
			input: service.RegisterInput{Email: "another@example.com", Phone: "+15550002222", Password: "password123"},
			setup: func() {
				testutil.NewUserBuilder().WithPhone("+15550002222").Build(t, testDB.DB)
			},
			wantErr: service.ErrPhoneExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clean up between tests
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			user, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, user.ID)
			assert.Equal(t, tt.input.Email, user.Email)
			assert.True(t, user.IsActive)
			assert.False(t, user.IsAdmin)
			// Stored digest must verify, and must not be the plaintext
			assert.NotEqual(t, tt.input.Password, user.PasswordHash)
			assert.True(t, service.CheckPassword(tt.input.Password, user.PasswordHash))
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	codec := testutil.NewTestCodec(t)
	authService := service.NewAuthService(repos.User, codec, cfg)
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("login@example.com").
		WithPassword("correctpassword").
		Build(t, testDB.DB)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "successful login", email: user.Email, password: rawPassword},
		{name: "wrong password", email: user.Email, password: "wrongpassword", wantErr: service.ErrInvalidCredentials},
		{name: "non-existent user", email: "nobody@example.com", password: "anypassword", wantErr: service.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := authService.Login(ctx, tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, result.User.ID)
			assert.NotEmpty(t, result.AccessToken)
		})
	}
}

func TestAuthService_ResolveToken(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	codec := testutil.NewTestCodec(t)
	authService := service.NewAuthService(repos.User, codec, cfg)
	ctx := context.Background()

	activeUser, password := testutil.NewUserBuilder().
		WithEmail("resolve@example.com").
		Build(t, testDB.DB)
	inactiveUser, _ := testutil.NewUserBuilder().
		WithEmail("inactive@example.com").
		Inactive().
		Build(t, testDB.DB)

	login, err := authService.Login(ctx, activeUser.Email, password)
	require.NoError(t, err)

	t.Run("valid token resolves user", func(t *testing.T) {
		resolved, err := authService.ResolveToken(ctx, login.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, activeUser.ID, resolved.ID)
		assert.Equal(t, activeUser.Email, resolved.Email)
	})

	t.Run("sub claim fallback", func(t *testing.T) {
		subToken, err := codec.EncodeSubject(strconv.Itoa(int(activeUser.ID)), 0)
		require.NoError(t, err)

		resolved, err := authService.ResolveToken(ctx, subToken)
		require.NoError(t, err)
		assert.Equal(t, activeUser.ID, resolved.ID)
	})

	t.Run("user_id preferred over sub", func(t *testing.T) {
		tok, err := codec.Encode(map[string]any{
			"user_id": activeUser.ID,
			"sub":     "999999",
		}, 0)
		require.NoError(t, err)

		resolved, err := authService.ResolveToken(ctx, tok)
		require.NoError(t, err)
		assert.Equal(t, activeUser.ID, resolved.ID)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := authService.ResolveToken(ctx, "not.a.token")
		assert.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("expired token", func(t *testing.T) {
		tok, err := codec.Encode(map[string]any{"user_id": activeUser.ID}, -time.Minute)
		require.NoError(t, err)

		_, err = authService.ResolveToken(ctx, tok)
		assert.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("token without a usable principal", func(t *testing.T) {
		tok, err := codec.Encode(map[string]any{"sub": "not-an-int"}, 0)
		require.NoError(t, err)

		_, err = authService.ResolveToken(ctx, tok)
		assert.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("token for non-existent user", func(t *testing.T) {
		tok, err := codec.Encode(map[string]any{"user_id": 999999}, 0)
		require.NoError(t, err)

		_, err = authService.ResolveToken(ctx, tok)
		assert.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("token for inactive user", func(t *testing.T) {
		tok, err := codec.Encode(map[string]any{"user_id": inactiveUser.ID}, 0)
		require.NoError(t, err)

		_, err = authService.ResolveToken(ctx, tok)
		assert.ErrorIs(t, err, service.ErrUnauthorized)
	})
}
