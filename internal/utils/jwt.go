package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-feed/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	errInvalidJWTParams = errors.New("invalid params for generating JWT Token")
	errEmptyIDClaim     = errors.New("empty id claim")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT carrying the identity
// fields of claims.
//
// The registered claims are filled in here:
//   - Issuer    (iss): issuer
//   - Subject   (sub): claims.UserID
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//   - ID        (jti): a random UUID, so two tokens issued within the same
//     second for the same user still differ
//
// JWT dates have second precision, so iat and exp are truncated to seconds.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(claims, "go-feed", time.Hour, key, time.Now())
func GenerateJWTToken(claims models.Claims, issuer string, tokenDuration time.Duration, signKey []byte, now time.Time) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || len(signKey) == 0 {
		return models.Token{}, errInvalidJWTParams
	}

	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Subject:   claims.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString(signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates tokenString and extracts its claims.
//
// Validation includes:
//   - algorithm pinned to HS256 (no "none", no asymmetric confusion)
//   - signature verification with signKey
//   - issuer (iss) equal to tokenIssuer
//   - expiration (exp) present and strictly after now
//   - non-empty id claim
//
// now is the verifier's clock; production callers pass time.Now().
func ValidateAndParseJWTToken(tokenString string, signKey []byte, tokenIssuer string, now time.Time) (models.Token, error) {
	if len(signKey) == 0 || tokenIssuer == "" {
		return models.Token{}, errInvalidJWTParams
	}

	claims := &models.Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return signKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	// exp is mandatory above; the window is [iat, exp).
	if !now.Before(claims.ExpiresAt.Time) {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", jwt.ErrTokenExpired)
	}

	if claims.UserID == "" {
		return models.Token{}, errEmptyIDClaim
	}

	return models.Token{Claims: *claims, SignedString: tokenString}, nil
}
