package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by a session token.
//
// The identity fields are serialised under the short names the API clients
// expect (id, name, email); the standard RFC 7519 claims (iss, iat, exp, jti)
// come from the embedded [jwt.RegisteredClaims].
type Claims struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`

	jwt.RegisteredClaims
}

// Identity returns the verified identity encoded in the claims.
func (c Claims) Identity() Identity {
	return Identity{
		ID:    c.UserID,
		Name:  c.Name,
		Email: c.Email,
	}
}

// Token wraps a signed session token together with its decoded claims.
type Token struct {
	Claims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Identity is the authenticated caller resolved from a verified token.
// It is attached to the request context by the auth middleware.
type Identity struct {
	ID    string
	Name  string
	Email string
}

// AuthResult is what a successful registration or login yields: the public
// view of the account and a fresh session token.
type AuthResult struct {
	User  PublicUser
	Token Token
}
