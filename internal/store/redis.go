package store

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/park285/chess-notation-recorder/internal/ledger"
	"github.com/redis/go-redis/v9"
)

const defaultLedgerTTL = 30 * 24 * time.Hour

// RedisStore keeps each ledger as a string value under ledger:<name>.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore wraps an existing client. A non-positive ttl uses the default.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = defaultLedgerTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// DialRedis connects to redisURL and checks the connection.
func DialRedis(ctx context.Context, redisURL string, ttl time.Duration) (*RedisStore, error) {
	if strings.TrimSpace(redisURL) == "" {
		return nil, fmt.Errorf("REDIS_URL required for redis store")
	}
	opts, err := redisOptions(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisStore(rdb, ttl), nil
}

func (s *RedisStore) key(name string) string { return "ledger:" + name }

func (s *RedisStore) Save(ctx context.Context, name string, l *ledger.Ledger) error {
	n, err := checkName(name)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := l.Serialize(&buf); err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.key(n), buf.Bytes(), s.ttl).Err(); err != nil {
		return &ledger.IOError{Op: "redis set", Name: n, Err: err}
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, name string, l *ledger.Ledger) error {
	l.Reset()
	n, err := checkName(name)
	if err != nil {
		return err
	}
	raw, err := s.rdb.Get(ctx, s.key(n)).Bytes()
	if err == redis.Nil {
		return ledger.ErrNotFound
	}
	if err != nil {
		return &ledger.IOError{Op: "redis get", Name: n, Err: err}
	}
	return l.Deserialize(bytes.NewReader(raw))
}

func (s *RedisStore) Close() error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}

// redisOptions accepts redis:// and rediss:// URLs. rediss enables TLS; the
// userinfo part may carry an ACL username.
func redisOptions(raw string) (*redis.Options, error) {
	return redis.ParseURL(strings.TrimSpace(raw))
}
