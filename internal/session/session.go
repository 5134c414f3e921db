// Package session implements the server-side session store. A session maps
// an opaque client-held identifier to an authenticated user id; the client
// carries the identifier in a cookie or bearer header, never the user id.
package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// CookieName is the cookie carrying the opaque session identifier.
	CookieName = "warbler_session"

	// DefaultTTL applies when no TTL is configured.
	DefaultTTL = 168 * time.Hour

	keyPrefix = "session:"
)

// ErrStoreUnavailable is returned when no Redis backend is configured.
var ErrStoreUnavailable = errors.New("session store unavailable")

// Store persists sessions in Redis with a fixed TTL.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore returns a session store backed by rdb. A non-positive ttl falls
// back to DefaultTTL.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{rdb: rdb, ttl: ttl}
}

// TTL returns the configured session lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create starts a new session for userID and returns its opaque identifier.
func (s *Store) Create(ctx context.Context, userID uint) (string, error) {
	if s.rdb == nil {
		return "", ErrStoreUnavailable
	}
	sid := uuid.New().String()
	if err := s.rdb.Set(ctx, keyPrefix+sid, strconv.FormatUint(uint64(userID), 10), s.ttl).Err(); err != nil {
		return "", err
	}
	return sid, nil
}

// Get resolves a session identifier to a user id. The second return value
// is false when the session does not exist or has expired.
func (s *Store) Get(ctx context.Context, sid string) (uint, bool, error) {
	if s.rdb == nil {
		return 0, false, ErrStoreUnavailable
	}
	val, err := s.rdb.Get(ctx, keyPrefix+sid).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	userID, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, false, nil
	}
	return uint(userID), true, nil
}

// Destroy removes a session. Destroying an absent session is a no-op.
func (s *Store) Destroy(ctx context.Context, sid string) error {
	if s.rdb == nil {
		return ErrStoreUnavailable
	}
	return s.rdb.Del(ctx, keyPrefix+sid).Err()
}
