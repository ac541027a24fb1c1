package primitive

import (
	"time"

	"github.com/coocood/freecache"
	"github.com/x-xyz/bnsapi/base/ctx"
	"github.com/x-xyz/bnsapi/service/cache/provider"
)

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive is an in-process cache of size MB
func NewPrimitive(name string, size int) provider.Provider {
	return &impl{name, freecache.NewCache(size * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, exp, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).WithField("cache", im.name).Error("cache.Get failed")
		return nil, 0, err
	}

	var ttl time.Duration
	if exp > 0 {
		ttl = time.Until(time.Unix(int64(exp), 0)).Round(time.Second)
	}
	return val, ttl, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.cache.Set([]byte(key), value, int(ttl.Seconds())); err != nil {
		c.WithField("err", err).WithField("key", key).WithField("cache", im.name).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
