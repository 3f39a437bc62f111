package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/store"
	"github.com/MKhiriev/go-feed/internal/validators"
	"github.com/MKhiriev/go-feed/models"
)

type postService struct {
	postRepository store.PostRepository
	validator      validators.Validator
}

func NewPostService(postRepository store.PostRepository, validator validators.Validator, logger *logger.Logger) PostService {
	logger.Debug().Msg("creating post service")
	return &postService{
		postRepository: postRepository,
		validator:      validator,
	}
}

// CreatePost takes the author from the verified identity only; the request
// carries no author fields.
func (p *postService) CreatePost(ctx context.Context, author models.Identity, req models.CreatePostRequest) (models.Post, error) {
	if err := p.validator.Validate(ctx, req); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if author.ID == "" {
		return models.Post{}, ErrMissingAuthor
	}

	post, err := p.postRepository.CreatePost(ctx, models.Post{
		Title:       req.Title,
		Description: req.Description,
		Author:      author.Name,
		AuthorID:    author.ID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("author_id", author.ID).Msg("post creation failed")
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}

	return post, nil
}

func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepository.ListPosts(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing posts failed")
		return nil, fmt.Errorf("listing posts failed: %w", err)
	}

	return posts, nil
}
