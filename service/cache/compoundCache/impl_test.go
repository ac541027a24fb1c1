package compoundcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/bnsapi/base/ctx"
	"github.com/x-xyz/bnsapi/domain/bns"
	"github.com/x-xyz/bnsapi/service/cache"
	"github.com/x-xyz/bnsapi/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im       *impl
	service1 cache.Service
	service2 cache.Service
}

func (ts *testsuite) SetupTest() {
	ts.service1 = cache.New(cache.ServiceConfig{
		Ttl:   time.Second,
		Pfx:   "test",
		Cache: primitive.NewPrimitive("test", 1),
	})

	ts.service2 = cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "test",
		Cache: primitive.NewPrimitive("test2", 1),
	})

	ts.im = NewCompoundCache([]cache.Service{
		ts.service1,
		ts.service2,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	var (
		k = "key"
		v = bns.AddressBytesRecord{Addr: []byte("value")}
		c = &bns.AddressBytesRecord{}
	)

	ts.Equal(cache.ErrNotFound, ts.im.Get(mockCtx, k, c))

	// hit in the first layer
	ts.NoError(ts.service1.Set(mockCtx, k, v))
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)

	time.Sleep(1100 * time.Millisecond)
	ts.Equal(cache.ErrNotFound, ts.service1.Get(mockCtx, k, c))

	// hit in the second layer is written back to the first
	ts.NoError(ts.service2.Set(mockCtx, k, v))
	c = &bns.AddressBytesRecord{}
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)

	c = &bns.AddressBytesRecord{}
	ts.NoError(ts.service1.Get(mockCtx, k, c))
	ts.Equal(v, *c)
}

func (ts *testsuite) TestSetAndDel() {
	var (
		k = "key"
		v = bns.AddressBytesRecord{Addr: []byte("value")}
		c = &bns.AddressBytesRecord{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))
	ts.NoError(ts.service1.Get(mockCtx, k, c))
	ts.Equal(v, *c)
	ts.NoError(ts.service2.Get(mockCtx, k, c))
	ts.Equal(v, *c)

	ts.NoError(ts.im.Del(mockCtx, k))
	ts.Equal(cache.ErrNotFound, ts.service1.Get(mockCtx, k, c))
	ts.Equal(cache.ErrNotFound, ts.service2.Get(mockCtx, k, c))
}

func (ts *testsuite) TestGetByFunc() {
	var (
		k = "key"
		v = bns.AddressBytesRecord{Addr: []byte("value")}
		c = &bns.AddressBytesRecord{}
	)

	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, func() (interface{}, error) {
		return &v, nil
	}))
	ts.Equal(v, *c)

	c = &bns.AddressBytesRecord{}
	ts.NoError(ts.service1.Get(mockCtx, k, c))
	ts.Equal(v, *c)

	c = &bns.AddressBytesRecord{}
	ts.NoError(ts.service2.Get(mockCtx, k, c))
	ts.Equal(v, *c)
}
