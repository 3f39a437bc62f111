package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/MKhiriev/go-feed/internal/utils"
	"github.com/MKhiriev/go-feed/models"
)

// memoryUserRepository keeps accounts in a map keyed by email. The
// existence check and the insert happen under one lock.
type memoryUserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]models.User
	ids     *utils.UUIDGenerator
	clock   func() time.Time
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		byEmail: make(map[string]models.User),
		ids:     utils.NewUUIDGenerator(),
		clock:   time.Now,
	}
}

func (r *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return models.User{}, ErrEmailAlreadyExists
	}

	user.ID = r.ids.Generate()
	user.CreatedAt = r.clock().UTC()
	r.byEmail[user.Email] = user

	return user, nil
}

func (r *memoryUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}

type memoryPostRepository struct {
	mu    sync.RWMutex
	posts []models.Post
	clock func() time.Time
}

func NewMemoryPostRepository() PostRepository {
	return &memoryPostRepository{clock: time.Now}
}

func (r *memoryPostRepository) CreatePost(_ context.Context, post models.Post) (models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post.ID = ulid.Make().String()
	post.CreatedAt = r.clock().UTC()
	r.posts = append(r.posts, post)

	return post, nil
}

func (r *memoryPostRepository) ListPosts(_ context.Context) ([]models.Post, error) {
	r.mu.RLock()
	posts := slices.Clone(r.posts)
	r.mu.RUnlock()

	if posts == nil {
		posts = make([]models.Post, 0)
	}
	slices.SortFunc(posts, newestFirst)

	return posts, nil
}

func newestFirst(a, b models.Post) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}

	return cmp.Compare(b.ID, a.ID)
}
