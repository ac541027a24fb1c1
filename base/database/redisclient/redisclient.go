package redisclient

import (
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/bnsapi/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond

	dialRetries    = 3
	firstRetryWait = time.Second
)

// RedisParam is the optional param for redis connection
type RedisParam struct {
	// PoolMultiplier times the cpu count is the max number of connections
	PoolMultiplier float64
	// Retry dials again a few times before giving up
	Retry bool
}

// MustConnectRedis connects to one redis uri
// NOTE This function panics if the connection fails.
func MustConnectRedis(uri, password string, param ...RedisParam) *redis.Pool {
	p, err := ConnectRedis(uri, password, param...)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": uri, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

// ConnectRedis builds a pool and makes sure one connection can be borrowed from it
func ConnectRedis(uri, password string, param ...RedisParam) (*redis.Pool, error) {
	p := newPool(uri, password, param...)

	retries := 0
	if len(param) > 0 && param[0].Retry {
		retries = dialRetries
	}

	wait := firstRetryWait
	var err error
	for i := 0; i <= retries; i++ {
		if i > 0 {
			time.Sleep(wait)
			wait *= 2
		}

		if err = ping(p); err == nil {
			log.Log().WithField("redisURI", uri).Info("redis connected")
			return p, nil
		}

		log.Log().WithFields(log.Fields{
			"redisURI": uri,
			"err":      err,
			"attempt":  i + 1,
		}).Error("fail to dial Redis")
	}

	p.Close()
	return nil, err
}

func newPool(uri, password string, param ...RedisParam) *redis.Pool {
	maxIdle := 200
	maxActive := 1024
	if len(param) > 0 && param[0].PoolMultiplier > 0 {
		cpu := float64(runtime.NumCPU())
		// allowing 25% idle connection
		maxIdle = int(cpu * param[0].PoolMultiplier / 4)
		maxActive = int(cpu * param[0].PoolMultiplier)
	}

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if password != "" {
		opts = append(opts, redis.DialPassword(password))
	}

	return &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			// No need to test if it's been recycled less than 1 sec.
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

func ping(p *redis.Pool) error {
	c := p.Get()
	defer c.Close()
	_, err := c.Do("PING")
	return err
}
