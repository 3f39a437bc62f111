package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-feed/internal/app"
	"github.com/MKhiriev/go-feed/internal/service"
	"github.com/MKhiriev/go-feed/internal/store"
	"github.com/MKhiriev/go-feed/internal/validators"
)

func TestResponseFromError(t *testing.T) {
	const fallback = "fallback"

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"wrapped validator sentinel", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidEmail), http.StatusBadRequest, app.MsgInvalidEmail},
		{"bare invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidData},
		{"duplicate from store", fmt.Errorf("%w: %w", service.ErrAccountAlreadyExists, store.ErrEmailAlreadyExists), http.StatusBadRequest, app.MsgAccountAlreadyExists},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusBadRequest, app.MsgInvalidCredentials},
		{"missing header", ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgNoToken},
		{"empty token", ErrEmptyToken, http.StatusUnauthorized, app.MsgNoToken},
		{"bad token", fmt.Errorf("%w: signature is invalid", service.ErrTokenIsExpiredOrInvalid), http.StatusForbidden, app.MsgInvalidToken},
		{"invalid json", fmt.Errorf("%w: unexpected EOF", errInvalidJSON), http.StatusBadRequest, app.MsgInvalidJSON},
		{"store fault", fmt.Errorf("lookup: %w", store.ErrExecutingQuery), http.StatusInternalServerError, fallback},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := responseFromError(tt.err, fallback)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
