package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-feed/internal/app"
	"github.com/MKhiriev/go-feed/internal/service"
	"github.com/MKhiriev/go-feed/internal/validators"
)

type errorResponse struct {
	target error
	status int
	msg    string
}

// errorResponses is checked in order. Validator sentinels come before
// service.ErrInvalidDataProvided, which wraps them.
var errorResponses = []errorResponse{
	{errInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},

	{validators.ErrMissingRegistrationFields, http.StatusBadRequest, app.MsgMissingRegistrationFields},
	{validators.ErrInvalidEmail, http.StatusBadRequest, app.MsgInvalidEmail},
	{validators.ErrPasswordTooShort, http.StatusBadRequest, app.MsgPasswordTooShort},
	{validators.ErrPasswordTooLong, http.StatusBadRequest, app.MsgPasswordTooLong},
	{validators.ErrMissingLoginFields, http.StatusBadRequest, app.MsgMissingLoginFields},
	{validators.ErrMissingPostFields, http.StatusBadRequest, app.MsgMissingPostFields},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidData},

	{service.ErrAccountAlreadyExists, http.StatusBadRequest, app.MsgAccountAlreadyExists},
	{service.ErrInvalidCredentials, http.StatusBadRequest, app.MsgInvalidCredentials},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgNoToken},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgNoToken},
	{ErrEmptyToken, http.StatusUnauthorized, app.MsgNoToken},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusForbidden, app.MsgInvalidToken},
}

// responseFromError returns the status and public message for err.
// Unknown errors become 500 with fallbackMsg.
func responseFromError(err error, fallbackMsg string) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.msg
		}
	}
	return http.StatusInternalServerError, fallbackMsg
}
