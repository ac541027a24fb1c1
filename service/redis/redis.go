package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/bnsapi/base/ctx"
)

const (
	// Forever is used as the expire of keys without ttl
	Forever = time.Duration(-1)
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis: key not found")
	// ErrNoTTL is returned by TTL for keys without expire
	ErrNoTTL = errors.New("redis: key has no ttl")
)

// Service is the subset of redis commands the cache and health check rely on
type Service interface {
	Ping(context ctx.Ctx) error
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, keys ...string) (int, error)
	// TTL returns the remaining time to live in seconds
	TTL(context ctx.Ctx, key string) (int, error)
}
