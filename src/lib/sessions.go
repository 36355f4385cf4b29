package lib

import (
	"context"
	"fmt"
	"log"
	"os"
	"portpass/src/config"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type Session struct {
	StaffID   uuid.UUID
	ExpiresAt time.Time
}

// SessionStore holds authenticated sessions keyed by an opaque id with a fixed
// absolute expiry. Get returns (nil, nil) for unknown or expired sessions.
type SessionStore interface {
	Create(ctx context.Context, staffID uuid.UUID) (string, error)
	Get(ctx context.Context, id string) (*Session, error)
	Destroy(ctx context.Context, id string) error
	Sweep(ctx context.Context)
}

var sessionStore SessionStore

func GetSessionStore() SessionStore {
	if sessionStore != nil {
		return sessionStore
	}
	if os.Getenv("REDIS_HOST") != "" {
		sessionStore = NewRedisSessionStore()
	} else {
		sessionStore = NewMemorySessionStore()
	}
	return sessionStore
}

// NewSessionStore replaces the shared store, used by tests.
func NewSessionStore(s SessionStore) SessionStore {
	sessionStore = s
	return sessionStore
}

type MemorySessionStore struct {
	TTL time.Duration

	mu       sync.Mutex
	sessions map[string]Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		TTL:      config.SESSION_TTL,
		sessions: make(map[string]Session),
	}
}

func (m *MemorySessionStore) Create(ctx context.Context, staffID uuid.UUID) (string, error) {
	id := uuid.NewString()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = Session{
		StaffID:   staffID,
		ExpiresAt: time.Now().Add(m.TTL),
	}
	return id, nil
}

func (m *MemorySessionStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	if time.Now().After(s.ExpiresAt) {
		delete(m.sessions, id)
		return nil, nil
	}
	return &s, nil
}

func (m *MemorySessionStore) Destroy(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemorySessionStore) Sweep(ctx context.Context) {
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if now.After(s.ExpiresAt) {
			delete(m.sessions, id)
		}
	}
}

type RedisSessionStore struct {
	TTL time.Duration
}

func NewRedisSessionStore() *RedisSessionStore {
	return &RedisSessionStore{TTL: config.SESSION_TTL}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func (r *RedisSessionStore) Create(ctx context.Context, staffID uuid.UUID) (string, error) {
	id := uuid.NewString()
	rd := GetRedisClient()
	if err := rd.SetEx(ctx, sessionKey(id), staffID.String(), r.TTL).Err(); err != nil {
		return "", err
	}
	return id, nil
}

func (r *RedisSessionStore) Get(ctx context.Context, id string) (*Session, error) {
	rd := GetRedisClient()
	val, err := rd.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	staffID, err := uuid.Parse(val)
	if err != nil {
		log.Printf("[sessions] Discarding malformed session value: %s\n", err.Error())
		rd.Del(ctx, sessionKey(id))
		return nil, nil
	}
	ttl := rd.TTL(ctx, sessionKey(id)).Val()
	return &Session{
		StaffID:   staffID,
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}

func (r *RedisSessionStore) Destroy(ctx context.Context, id string) error {
	rd := GetRedisClient()
	return rd.Del(ctx, sessionKey(id)).Err()
}

// Sweep is a no-op: redis expires session keys on its own.
func (r *RedisSessionStore) Sweep(ctx context.Context) {}
