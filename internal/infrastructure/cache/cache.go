// internal/infrastructure/cache/cache.go
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"github.com/beammart/backend/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrMiss is returned when a key is not cached
var ErrMiss = errors.New("cache miss")

// CachedResponse is the stored {status, body} pair replayed on a hit
type CachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// Store memoizes HTTP responses in Redis. Reads and writes are
// fire-and-forget from the caller's point of view: failures are logged and
// the request proceeds uncached.
type Store struct {
	client *redis.Client
	config *config.Config
	log    *logrus.Logger
}

// NewStore creates a response cache store
func NewStore(client *redis.Client, cfg *config.Config, log *logrus.Logger) *Store {
	return &Store{
		client: client,
		config: cfg,
		log:    log,
	}
}

// Key builds a deterministic cache key from the request method, path and
// the selected query parameters (sorted so ordering never matters).
func (s *Store) Key(method, path string, params map[string]string) string {
	var sb strings.Builder
	sb.WriteString(s.config.Cache.KeyPrefix)
	sb.WriteString(":")
	sb.WriteString(method)
	sb.WriteString(":")
	sb.WriteString(path)

	if len(params) > 0 {
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("?")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString("&")
			}
			sb.WriteString(k)
			sb.WriteString("=")
			sb.WriteString(params[k])
		}
	}

	return sb.String()
}

// Get fetches a cached response, returning ErrMiss when absent
func (s *Store) Get(ctx context.Context, key string) (*CachedResponse, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}

	var cached CachedResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}
	return &cached, nil
}

// Set stores a response with the configured TTL
func (s *Store) Set(ctx context.Context, key string, resp *CachedResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.log.WithError(err).Warn("failed to marshal cached response")
		return
	}

	if err := s.client.Set(ctx, key, data, s.config.Cache.TTL).Err(); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("cache write failed")
	}
}

// FlushPattern removes every key matching the given pattern, e.g.
// "aliens:*" after a catalog write. The prefix is applied automatically.
func (s *Store) FlushPattern(ctx context.Context, pattern string) {
	fullPattern := s.config.Cache.KeyPrefix + ":*" + pattern

	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, fullPattern, 100).Result()
		if err != nil {
			s.log.WithError(err).WithField("pattern", fullPattern).Warn("cache flush failed")
			return
		}

		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				s.log.WithError(err).Warn("cache delete failed")
			}
		}

		cursor = next
		if cursor == 0 {
			return
		}
	}
}
