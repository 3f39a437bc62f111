package http

import (
	"net/http"

	"github.com/MKhiriev/go-feed/internal/app"
	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	res, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", res.User.ID).Msg("user registered")

	writeJSON(w, r, models.AuthResponse{
		Msg:   app.MsgRegistered,
		User:  res.User,
		Token: res.Token.SignedString,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, app.MsgLoginFailed)
		return
	}

	res, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err, app.MsgLoginFailed)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", res.User.ID).Msg("user successfully logged in")

	writeJSON(w, r, models.AuthResponse{
		Msg:   app.MsgLoggedIn,
		User:  res.User,
		Token: res.Token.SignedString,
	}, http.StatusOK)
}
