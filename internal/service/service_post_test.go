package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/mock"
	"github.com/MKhiriev/go-feed/internal/store"
	"github.com/MKhiriev/go-feed/internal/validators"
	"github.com/MKhiriev/go-feed/models"
)

var ana = models.Identity{ID: "u1", Name: "Ana", Email: "ana@x.io"}

func TestCreatePost_StampsAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	posts := mock.NewMockPostRepository(ctrl)

	want := models.Post{Title: "Hi", Description: "first", Author: "Ana", AuthorID: "u1"}
	stored := want
	stored.ID = "p1"
	stored.CreatedAt = time.Now()
	posts.EXPECT().CreatePost(gomock.Any(), want).Return(stored, nil)

	svc := NewPostService(posts, validators.NewRequestValidator(), logger.Nop())
	got, err := svc.CreatePost(context.Background(), ana, models.CreatePostRequest{Title: "Hi", Description: "first"})

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestCreatePost_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreatePostRequest
	}{
		{"missing title", models.CreatePostRequest{Description: "x"}},
		{"missing description", models.CreatePostRequest{Title: "x"}},
		{"both missing", models.CreatePostRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewPostService(mock.NewMockPostRepository(ctrl), validators.NewRequestValidator(), logger.Nop())

			_, err := svc.CreatePost(context.Background(), ana, tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, validators.ErrMissingPostFields)
		})
	}
}

func TestCreatePost_NoAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewPostService(mock.NewMockPostRepository(ctrl), validators.NewRequestValidator(), logger.Nop())

	_, err := svc.CreatePost(context.Background(), models.Identity{}, models.CreatePostRequest{Title: "a", Description: "b"})

	assert.ErrorIs(t, err, ErrMissingAuthor)
}

func TestCreatePost_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	posts := mock.NewMockPostRepository(ctrl)
	dbErr := errors.New("disk full")
	posts.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(models.Post{}, dbErr)

	svc := NewPostService(posts, validators.NewRequestValidator(), logger.Nop())
	_, err := svc.CreatePost(context.Background(), ana, models.CreatePostRequest{Title: "a", Description: "b"})

	assert.ErrorIs(t, err, dbErr)
}

func TestListPosts_NewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := NewPostService(store.NewMemoryPostRepository(), validators.NewRequestValidator(), logger.Nop())

	empty, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	first, err := svc.CreatePost(ctx, ana, models.CreatePostRequest{Title: "one", Description: "1"})
	require.NoError(t, err)
	second, err := svc.CreatePost(ctx, ana, models.CreatePostRequest{Title: "two", Description: "2"})
	require.NoError(t, err)

	posts, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
	assert.Equal(t, "Ana", posts[0].Author)
}

func TestListPosts_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	posts := mock.NewMockPostRepository(ctrl)
	dbErr := errors.New("timeout")
	posts.EXPECT().ListPosts(gomock.Any()).Return(nil, dbErr)

	svc := NewPostService(posts, validators.NewRequestValidator(), logger.Nop())
	_, err := svc.ListPosts(context.Background())

	assert.ErrorIs(t, err, dbErr)
}
