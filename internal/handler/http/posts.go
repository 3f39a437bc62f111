package http

import (
	"net/http"

	"github.com/MKhiriev/go-feed/internal/app"
	"github.com/MKhiriev/go-feed/internal/utils"
	"github.com/MKhiriev/go-feed/models"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	author, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeError(w, r, ErrEmptyAuthorizationHeader, app.MsgPostCreationFailed)
		return
	}

	var req models.CreatePostRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, app.MsgPostCreationFailed)
		return
	}

	post, err := h.services.PostService.CreatePost(ctx, author, req)
	if err != nil {
		writeError(w, r, err, app.MsgPostCreationFailed)
		return
	}

	writeJSON(w, r, models.PostResponse{Msg: app.MsgPostCreated, Post: post}, http.StatusCreated)
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPosts(r.Context())
	if err != nil {
		writeError(w, r, err, app.MsgPostsFetchFailed)
		return
	}

	writeJSON(w, r, posts, http.StatusOK)
}
