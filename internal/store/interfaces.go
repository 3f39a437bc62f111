// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists accounts and posts.
//
// Three interchangeable backends implement the repositories: PostgreSQL
// (pgx), SQLite (go-sqlite3) and in-process maps. [NewStorages] picks one
// from the DSN scheme. The post listing can additionally be fronted by a
// Redis cache.
package store

import (
	"context"

	"github.com/MKhiriev/go-feed/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store.
type UserRepository interface {
	// CreateUser persists user and returns it with ID and CreatedAt filled
	// in. A duplicate email yields ErrEmailAlreadyExists; nothing is
	// overwritten.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account with exactly this email, or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// PostRepository stores feed posts.
type PostRepository interface {
	// CreatePost persists post and returns it with ID and CreatedAt filled in.
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// ListPosts returns every post, newest first.
	ListPosts(ctx context.Context) ([]models.Post, error)
}

// PostCache holds a copy of the full newest-first listing, versioned by a
// generation that Invalidate advances.
type PostCache interface {
	// GetPosts returns the current generation and, unless ok=false, the
	// listing cached for it.
	GetPosts(ctx context.Context) (posts []models.Post, generation int64, ok bool, err error)
	// SetPosts stores posts for generation; it is invisible once the
	// generation has moved on.
	SetPosts(ctx context.Context, generation int64, posts []models.Post) error
	Invalidate(ctx context.Context) error
}
