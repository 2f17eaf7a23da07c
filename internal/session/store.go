package session

import (
	"context"       // Context for Redis operations
	"crypto/rand"   // Random session identifiers
	"encoding/hex"  // Hex encoding for session identifiers
	"encoding/json" // JSON encoding/decoding of session records
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// Record is the server-side session payload bound to a session identifier
type Record struct {
	UserID uint `json:"user_id"` // Authenticated user the session belongs to
}

// Store persists sessions keyed by an opaque identifier
type Store interface {
	Create(ctx context.Context, userID uint) (string, error)   // Create a session for a user, returning its identifier
	Get(ctx context.Context, id string) (uint, bool, error)    // Look up the user bound to a session identifier
	Destroy(ctx context.Context, id string) error              // Remove a session
}

// newSessionID generates an opaque 32 hex character session identifier
func newSessionID() (string, error) {
	b := make([]byte, 16) // 128 bits of randomness
	if _, err := rand.Read(b); err != nil {
		return "", err // Return error if the random source fails
	}
	return hex.EncodeToString(b), nil // Hex encode the identifier
}

// RedisStore keeps sessions in Redis with a TTL
type RedisStore struct {
	rdb *redis.Client // Redis client
	ttl time.Duration // Session lifetime
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// key builds the Redis key for a session identifier
func key(id string) string {
	return "session:" + id
}

// Create stores a new session record in Redis with the configured TTL
func (s *RedisStore) Create(ctx context.Context, userID uint) (string, error) {
	id, err := newSessionID() // Generate the opaque identifier
	if err != nil {
		return "", err // Return error if generation fails
	}
	b, err := json.Marshal(Record{UserID: userID}) // Marshal the session record to JSON
	if err != nil {
		return "", err // Return error if marshaling fails
	}
	// Set the record in Redis with the session TTL
	if err := s.rdb.Set(ctx, key(id), b, s.ttl).Err(); err != nil {
		return "", err // Return error if the write fails
	}
	return id, nil // Return the session identifier
}

// Get retrieves the user bound to a session identifier
func (s *RedisStore) Get(ctx context.Context, id string) (uint, bool, error) {
	val, err := s.rdb.Get(ctx, key(id)).Result() // Get the record from Redis
	if err == redis.Nil {
		return 0, false, nil // Session does not exist
	} else if err != nil {
		return 0, false, err // Other Redis error
	}
	var rec Record // Session record to unmarshal into
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return 0, false, err // Return error if the record is corrupt
	}
	return rec.UserID, true, nil // Return the bound user
}

// Destroy deletes a session from Redis
func (s *RedisStore) Destroy(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, key(id)).Err() // Delete the key from Redis
}
