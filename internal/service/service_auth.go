package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-feed/internal/config"
	"github.com/MKhiriev/go-feed/internal/crypto"
	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/store"
	"github.com/MKhiriev/go-feed/internal/utils"
	"github.com/MKhiriev/go-feed/internal/validators"
	"github.com/MKhiriev/go-feed/internal/workers"
	"github.com/MKhiriev/go-feed/models"
)

// TokenLifetime is how long a session token stays valid after issuance.
const TokenLifetime = time.Hour

// dummyPassword is hashed once and compared against when a login names an
// unknown email, so that path costs as much as a wrong password.
const dummyPassword = "go-feed-timing-equaliser"

// authService is the concrete implementation of AuthService.
// It is safe for concurrent use; all fields are read-only after construction.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	pool           workers.Executor
	validator      validators.Validator

	tokenSignKey []byte
	tokenIssuer  string

	now       func() time.Time
	dummyHash func() string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. Hash and verify jobs run on
// pool; the signing secret and issuer come from cfg.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	pool workers.Executor,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	a := &authService{
		userRepository: userRepository,
		hasher:         hasher,
		pool:           pool,
		validator:      validator,
		tokenSignKey:   []byte(cfg.TokenSignKey),
		tokenIssuer:    cfg.TokenIssuer,
		now:            time.Now,
		logger:         logger,
	}
	a.dummyHash = sync.OnceValue(func() string {
		hash, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			a.logger.Err(err).Msg("error computing dummy password hash")
		}
		return hash
	})

	return a
}

// RegisterUser validates req, rejects an email that is already taken,
// stores the account with a bcrypt hash and issues a token.
//
// The lookup is advisory; the store's uniqueness check decides races, and
// both paths yield ErrAccountAlreadyExists.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return models.AuthResult{}, ErrAccountAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Msg("user lookup during registration failed")
		return models.AuthResult{}, fmt.Errorf("user lookup failed: %w", err)
	}

	hash, err := a.hashPassword(ctx, req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthResult{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrAccountAlreadyExists, err)
	}
	if err != nil {
		log.Err(err).Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("token creation after registration failed")
		return models.AuthResult{}, err
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	return models.AuthResult{User: user.Public(), Token: token}, nil
}

// Login authenticates req and issues a token.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		if _, verifyErr := a.verifyPassword(ctx, req.Password, a.dummyHash()); verifyErr != nil {
			return models.AuthResult{}, fmt.Errorf("password verification failed: %w", verifyErr)
		}
		return models.AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.verifyPassword(ctx, req.Password, user.PasswordHash)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Debug().Str("user_id", user.ID).Msg("wrong password")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("token creation after login failed")
		return models.AuthResult{}, err
	}

	return models.AuthResult{User: user.Public(), Token: token}, nil
}

// CreateToken issues an HS256 token carrying the user's id, name and email
// that expires TokenLifetime from now.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	claims := models.Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	}

	token, err := utils.GenerateJWTToken(claims, a.tokenIssuer, TokenLifetime, a.tokenSignKey, a.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken does not distinguish a bad signature from an expired or
// malformed token.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}

func (a *authService) hashPassword(ctx context.Context, password string) (string, error) {
	var (
		hash    string
		hashErr error
	)
	if err := a.pool.Do(ctx, func() { hash, hashErr = a.hasher.Hash(password) }); err != nil {
		return "", err
	}

	return hash, hashErr
}

func (a *authService) verifyPassword(ctx context.Context, password, hash string) (bool, error) {
	var ok bool
	if err := a.pool.Do(ctx, func() { ok = a.hasher.Verify(password, hash) }); err != nil {
		return false, err
	}

	return ok, nil
}
