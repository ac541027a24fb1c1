package repository

import (
	"time"

	"github.com/x-xyz/bnsapi/base/ctx"
	hcdomain "github.com/x-xyz/bnsapi/domain/healthcheck"
	"github.com/x-xyz/bnsapi/service/redis"
)

type impl struct {
	redisCache redis.Service
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface.
// redisCache may be nil when the service runs without a shared cache.
func New(redisCache redis.Service) hcdomain.HealthCheckRepo {
	return &impl{
		redisCache: redisCache,
	}
}

func (im *impl) PingCache(context ctx.Ctx) error {
	if im.redisCache == nil {
		return nil
	}

	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if err := im.redisCache.Ping(ctx); err != nil {
		context.WithField("err", err).Error("ping redis failed")
		return err
	}
	return nil
}
