package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-feed/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testIssuer = "go-feed-test"
	testKey    = []byte("secret-key")
	testClaims = models.Claims{UserID: "0192f1c3-user", Name: "Ana", Email: "ana@x.com"}
	issuedAt   = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testClaims, testIssuer, time.Hour, testKey, issuedAt)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, testClaims.Identity(), token.Identity())
	assert.Equal(t, testIssuer, token.Issuer)
	assert.Equal(t, testClaims.UserID, token.Subject)
	assert.NotEmpty(t, token.ID)
	assert.Equal(t, issuedAt, token.IssuedAt.Time.UTC())
	assert.Equal(t, issuedAt.Add(time.Hour), token.ExpiresAt.Time.UTC())
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      []byte
	}{
		{"empty issuer", "", time.Hour, testKey},
		{"zero duration", testIssuer, 0, testKey},
		{"negative duration", testIssuer, -time.Minute, testKey},
		{"empty key", testIssuer, time.Hour, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(testClaims, tt.issuer, tt.duration, tt.key, issuedAt)
			assert.ErrorIs(t, err, errInvalidJWTParams)
		})
	}
}

func TestGenerateJWTToken_SameSecondTokensDiffer(t *testing.T) {
	first, err := GenerateJWTToken(testClaims, testIssuer, time.Hour, testKey, issuedAt)
	require.NoError(t, err)
	second, err := GenerateJWTToken(testClaims, testIssuer, time.Hour, testKey, issuedAt)
	require.NoError(t, err)

	assert.NotEqual(t, first.SignedString, second.SignedString)
}

func TestValidateAndParseJWTToken_ValidityWindow(t *testing.T) {
	token, err := GenerateJWTToken(testClaims, testIssuer, time.Hour, testKey, issuedAt)
	require.NoError(t, err)

	tests := []struct {
		name    string
		at      time.Time
		wantErr bool
	}{
		{"at issuance", issuedAt, false},
		{"one second later", issuedAt.Add(time.Second), false},
		{"half an hour later", issuedAt.Add(30 * time.Minute), false},
		{"just before expiry", issuedAt.Add(time.Hour - time.Millisecond), false},
		{"exactly at expiry", issuedAt.Add(time.Hour), true},
		{"after expiry", issuedAt.Add(time.Hour + time.Second), true},
		{"a day later", issuedAt.Add(24 * time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ValidateAndParseJWTToken(token.SignedString, testKey, testIssuer, tt.at)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, jwt.ErrTokenExpired)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testClaims.Identity(), parsed.Identity())
			assert.Equal(t, token.SignedString, parsed.SignedString)
		})
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken(testClaims, testIssuer, time.Hour, testKey, issuedAt)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &models.Claims{
		UserID:           "u",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: testIssuer, ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour))},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		UserID:           "u",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: testIssuer},
	}).SignedString(testKey)
	require.NoError(t, err)

	foreign, err := GenerateJWTToken(models.Claims{UserID: "mallory"}, testIssuer, time.Hour, []byte("other"), issuedAt)
	require.NoError(t, err)
	validParts := strings.Split(valid.SignedString, ".")
	foreignParts := strings.Split(foreign.SignedString, ".")
	tampered := strings.Join([]string{validParts[0], foreignParts[1], validParts[2]}, ".")

	emptyIDToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: testIssuer, ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour))},
	}).SignedString(testKey)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    []byte
		issuer string
	}{
		{"foreign secret", valid.SignedString, []byte("another-secret"), testIssuer},
		{"wrong issuer", valid.SignedString, testKey, "someone-else"},
		{"tampered payload", tampered, testKey, testIssuer},
		{"garbage", "not.a.jwt", testKey, testIssuer},
		{"empty string", "", testKey, testIssuer},
		{"alg none", noneToken, testKey, testIssuer},
		{"missing exp", noExpToken, testKey, testIssuer},
		{"empty id claim", emptyIDToken, testKey, testIssuer},
		{"empty verification key", valid.SignedString, nil, testIssuer},
		{"empty expected issuer", valid.SignedString, testKey, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer, issuedAt)
			assert.Error(t, err)
		})
	}
}
