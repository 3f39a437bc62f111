package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-feed/internal/config"
	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/models"
)

const (
	postsGenerationKey = "feed:posts:generation"
	postsListingPrefix = "feed:posts:"
)

func postsListingKey(generation int64) string {
	return postsListingPrefix + strconv.FormatInt(generation, 10)
}

// RedisPostCache stores the serialized feed listing under a key derived from
// a generation counter. Invalidate bumps the counter, so a listing written
// for an older generation is never read again and expires with the TTL.
type RedisPostCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPostCache connects to redisURL and pings it.
func NewRedisPostCache(ctx context.Context, redisURL string, ttl time.Duration) (*RedisPostCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.PoolSize = 10
	opt.MinIdleConns = 2
	opt.PoolTimeout = 4 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)
	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return newRedisPostCache(client, ttl), nil
}

// newRedisPostCache falls back to the default TTL for ttl <= 0: abandoned
// generations must expire.
func newRedisPostCache(client *redis.Client, ttl time.Duration) *RedisPostCache {
	if ttl <= 0 {
		ttl = config.DefaultCacheTTL
	}

	return &RedisPostCache{client: client, ttl: ttl}
}

func (c *RedisPostCache) GetPosts(ctx context.Context) ([]models.Post, int64, bool, error) {
	generation, err := c.client.Get(ctx, postsGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		generation = 0
	} else if err != nil {
		return nil, 0, false, fmt.Errorf("redis get generation failed: %w", err)
	}

	data, err := c.client.Get(ctx, postsListingKey(generation)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, generation, false, nil
	}
	if err != nil {
		return nil, generation, false, fmt.Errorf("redis get failed: %w", err)
	}

	var posts []models.Post
	if err = json.Unmarshal(data, &posts); err != nil {
		return nil, generation, false, fmt.Errorf("decode cached posts: %w", err)
	}

	return posts, generation, true, nil
}

func (c *RedisPostCache) SetPosts(ctx context.Context, generation int64, posts []models.Post) error {
	data, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("encode posts for cache: %w", err)
	}

	if err = c.client.Set(ctx, postsListingKey(generation), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache posts: %w", err)
	}

	return nil
}

func (c *RedisPostCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, postsGenerationKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate posts cache: %w", err)
	}

	return nil
}

// Close closes the Redis client.
func (c *RedisPostCache) Close() error {
	return c.client.Close()
}

// cachedPostRepository fronts a PostRepository with a PostCache. The cache
// is best effort: its failures are logged and the request falls through to
// the repository.
type cachedPostRepository struct {
	next  PostRepository
	cache PostCache
}

// NewCachedPostRepository wraps next with a read-through listing cache that
// is invalidated on every successful create. A listing is stored under the
// generation observed before the repository was read, so a read racing a
// create cannot pin a listing that misses the new post.
func NewCachedPostRepository(next PostRepository, cache PostCache) PostRepository {
	return &cachedPostRepository{next: next, cache: cache}
}

func (r *cachedPostRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	created, err := r.next.CreatePost(ctx, post)
	if err != nil {
		return models.Post{}, err
	}

	if err = r.cache.Invalidate(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("posts cache invalidation failed")
	}

	return created, nil
}

func (r *cachedPostRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	posts, generation, ok, err := r.cache.GetPosts(ctx)
	if err != nil {
		// generation unknown: serve from the repository without refilling
		log.Warn().Err(err).Msg("posts cache read failed")
		return r.next.ListPosts(ctx)
	}
	if ok {
		return posts, nil
	}

	posts, err = r.next.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	if err = r.cache.SetPosts(ctx, generation, posts); err != nil {
		log.Warn().Err(err).Msg("posts cache write failed")
	}

	return posts, nil
}
