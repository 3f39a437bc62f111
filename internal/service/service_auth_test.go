package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-feed/internal/config"
	"github.com/MKhiriev/go-feed/internal/crypto"
	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/mock"
	"github.com/MKhiriev/go-feed/internal/store"
	"github.com/MKhiriev/go-feed/internal/validators"
	"github.com/MKhiriev/go-feed/internal/workers"
	"github.com/MKhiriev/go-feed/models"
)

var (
	testAppConfig = config.App{
		TokenSignKey: "test-sign-key",
		TokenIssuer:  "go-feed-test",
		Version:      "test",
	}
	fixedNow = time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)
)

func newTestAuthService(t *testing.T, users store.UserRepository, hasher crypto.PasswordHasher) *authService {
	t.Helper()

	svc := NewAuthService(users, hasher, workers.NewPool(2), validators.NewRequestValidator(), testAppConfig, logger.Nop())
	a := svc.(*authService)
	a.now = func() time.Time { return fixedNow }

	return a
}

func anaRegistration() models.RegisterRequest {
	return models.RegisterRequest{Name: "Ana", Email: "ana@x.io", Password: "secret1"}
}

func TestRegisterUser_AnaFlow(t *testing.T) {
	ctx := context.Background()
	a := newTestAuthService(t, store.NewMemoryUserRepository(), crypto.NewBcryptHasher(bcrypt.MinCost))

	res, err := a.RegisterUser(ctx, anaRegistration())
	require.NoError(t, err)

	assert.NotEmpty(t, res.User.ID)
	assert.Equal(t, "Ana", res.User.Name)
	assert.Equal(t, "ana@x.io", res.User.Email)
	assert.NotEmpty(t, res.Token.SignedString)
	assert.Equal(t, res.User.ID, res.Token.UserID)
	assert.True(t, fixedNow.Add(TokenLifetime).Equal(res.Token.ExpiresAt.Time))

	parsed, err := a.ParseToken(ctx, res.Token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, models.Identity{ID: res.User.ID, Name: "Ana", Email: "ana@x.io"}, parsed.Identity())

	_, err = a.RegisterUser(ctx, models.RegisterRequest{Name: "Other", Email: "ana@x.io", Password: "another1"})
	assert.ErrorIs(t, err, ErrAccountAlreadyExists)

	login, err := a.Login(ctx, models.LoginRequest{Email: "ana@x.io", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, res.User, login.User)
	assert.NotEqual(t, res.Token.SignedString, login.Token.SignedString)

	_, err = a.Login(ctx, models.LoginRequest{Email: "ana@x.io", Password: "wrong12"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = a.Login(ctx, models.LoginRequest{Email: "nobody@x.io", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterUser_StoresHashNotPassword(t *testing.T) {
	ctx := context.Background()
	users := store.NewMemoryUserRepository()
	a := newTestAuthService(t, users, crypto.NewBcryptHasher(bcrypt.MinCost))

	_, err := a.RegisterUser(ctx, anaRegistration())
	require.NoError(t, err)

	stored, err := users.FindUserByEmail(ctx, "ana@x.io")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestRegisterUser_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{"missing name", models.RegisterRequest{Email: "ana@x.io", Password: "secret1"}, validators.ErrMissingRegistrationFields},
		{"bad email", models.RegisterRequest{Name: "Ana", Email: "ana", Password: "secret1"}, validators.ErrInvalidEmail},
		{"short password", models.RegisterRequest{Name: "Ana", Email: "ana@x.io", Password: "abc"}, validators.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// no repository or hasher calls are expected
			a := newTestAuthService(t, mock.NewMockUserRepository(ctrl), mock.NewMockPasswordHasher(ctrl))

			_, err := a.RegisterUser(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterUser_LostRaceOnInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	users.EXPECT().FindUserByEmail(gomock.Any(), "ana@x.io").Return(models.User{}, store.ErrNoUserWasFound)
	hasher.EXPECT().Hash("secret1").Return("$2a$hash", nil)
	users.EXPECT().CreateUser(gomock.Any(), models.User{Name: "Ana", Email: "ana@x.io", PasswordHash: "$2a$hash"}).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	a := newTestAuthService(t, users, hasher)
	_, err := a.RegisterUser(context.Background(), anaRegistration())

	assert.ErrorIs(t, err, ErrAccountAlreadyExists)
}

func TestRegisterUser_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	dbErr := errors.New("connection reset")

	users.EXPECT().FindUserByEmail(gomock.Any(), "ana@x.io").Return(models.User{}, dbErr)

	a := newTestAuthService(t, users, mock.NewMockPasswordHasher(ctrl))
	_, err := a.RegisterUser(context.Background(), anaRegistration())

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrAccountAlreadyExists)
	assert.NotErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegisterUser_HashFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	hashErr := errors.New("entropy exhausted")

	users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
	hasher.EXPECT().Hash(gomock.Any()).Return("", hashErr)

	a := newTestAuthService(t, users, hasher)
	_, err := a.RegisterUser(context.Background(), anaRegistration())

	assert.ErrorIs(t, err, hashErr)
}

func TestRegisterUser_CanceledWhilePoolBusy(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)

	pool := workers.NewPool(1)
	release := make(chan struct{})
	started := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = pool.Do(context.Background(), func() {
			close(started)
			<-release
		})
	}()
	<-started

	svc := NewAuthService(users, mock.NewMockPasswordHasher(ctrl), pool, validators.NewRequestValidator(), testAppConfig, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := svc.RegisterUser(ctx, anaRegistration())

	close(release)
	wg.Wait()

	assert.ErrorIs(t, err, workers.ErrPoolWaitCanceled)
}

func TestLogin_UnknownEmailStillVerifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	users.EXPECT().FindUserByEmail(gomock.Any(), "nobody@x.io").Return(models.User{}, store.ErrNoUserWasFound).Times(2)
	hasher.EXPECT().Hash(dummyPassword).Return("$2a$dummy", nil).Times(1)
	hasher.EXPECT().Verify("secret1", "$2a$dummy").Return(false).Times(2)

	a := newTestAuthService(t, users, hasher)
	for range 2 {
		_, err := a.Login(context.Background(), models.LoginRequest{Email: "nobody@x.io", Password: "secret1"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	users.EXPECT().FindUserByEmail(gomock.Any(), "ana@x.io").
		Return(models.User{ID: "u1", Name: "Ana", Email: "ana@x.io", PasswordHash: "$2a$real"}, nil)
	hasher.EXPECT().Verify("nope123", "$2a$real").Return(false)

	a := newTestAuthService(t, users, hasher)
	res, err := a.Login(context.Background(), models.LoginRequest{Email: "ana@x.io", Password: "nope123"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, res.Token.SignedString)
}

func TestLogin_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := newTestAuthService(t, mock.NewMockUserRepository(ctrl), mock.NewMockPasswordHasher(ctrl))

	_, err := a.Login(context.Background(), models.LoginRequest{Email: "ana@x.io"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrMissingLoginFields)
}

func TestLogin_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	dbErr := errors.New("db down")
	users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	a := newTestAuthService(t, users, mock.NewMockPasswordHasher(ctrl))
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "ana@x.io", Password: "secret1"})

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateToken_MissingSignKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testAppConfig
	cfg.TokenSignKey = ""
	svc := NewAuthService(mock.NewMockUserRepository(ctrl), mock.NewMockPasswordHasher(ctrl), workers.NewPool(1), validators.NewRequestValidator(), cfg, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{ID: "u1"})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestParseToken(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	a := newTestAuthService(t, mock.NewMockUserRepository(ctrl), mock.NewMockPasswordHasher(ctrl))

	token, err := a.CreateToken(ctx, models.User{ID: "u1", Name: "Ana", Email: "ana@x.io"})
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		parsed, err := a.ParseToken(ctx, token.SignedString)
		require.NoError(t, err)
		assert.Equal(t, "u1", parsed.UserID)
	})

	t.Run("expired", func(t *testing.T) {
		later := *a
		later.now = func() time.Time { return fixedNow.Add(TokenLifetime) }

		_, err := later.ParseToken(ctx, token.SignedString)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})

	t.Run("foreign secret", func(t *testing.T) {
		other := *a
		other.tokenSignKey = []byte("some-other-key")

		_, err := other.ParseToken(ctx, token.SignedString)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := a.ParseToken(ctx, "garbage")
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})
}
