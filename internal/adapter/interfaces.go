// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the feed's REST API.
//
// [FeedAdapter] hides the transport from the command line client. The HTTP
// implementation ([NewHTTPFeedAdapter]) is built on resty; non-2xx answers
// are mapped by mapHTTPError to the sentinels in errors.go, carrying the
// server's `msg` text, so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-feed/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// FeedAdapter talks to a feed server on behalf of one user.
type FeedAdapter interface {
	// SetToken stores the bearer token attached to protected requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Register creates an account. On success the returned token is stored
	// via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates. On success the returned token is stored via
	// SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// CreatePost publishes a post as the token's owner.
	CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Post, error)

	// ListPosts returns the feed, newest first.
	ListPosts(ctx context.Context) ([]models.Post, error)
}
