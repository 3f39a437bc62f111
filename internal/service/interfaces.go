// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the feed's business operations: account
// registration and login, session tokens, and posts.
//
// Services validate their input, call the repositories in internal/store and
// report failures as the sentinel errors in errors.go. They never return a
// password hash to the caller.
package service

import (
	"context"

	"github.com/MKhiriev/go-feed/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	// RegisterUser creates an account and returns it with a session token.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)

	// Login verifies the credentials and returns the account with a fresh
	// session token. An unknown email and a wrong password both yield
	// ErrInvalidCredentials.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies a compact token; every failure is
	// ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type PostService interface {
	// CreatePost stamps the post with author and stores it.
	CreatePost(ctx context.Context, author models.Identity, req models.CreatePostRequest) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
