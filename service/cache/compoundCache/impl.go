package compoundcache

import (
	"github.com/x-xyz/bnsapi/base/ctx"
	"github.com/x-xyz/bnsapi/service/cache"
)

// impl reads layers in order, the first layer being the fastest. A hit in a
// lower layer is written back to the layers above it.
type impl struct {
	layers []cache.Service
}

func NewCompoundCache(layers []cache.Service) cache.Service {
	return &impl{
		layers: layers,
	}
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter cache.OneTimeGetter) error {
	err := im.Get(c, key, container)
	if err != nil && err != cache.ErrNotFound {
		c.WithField("err", err).WithField("key", key).Error("Get failed")
		return err
	} else if err == nil {
		// hit cache, early return
		return nil
	}

	// no cache, get and fill cache
	val, err := getter()
	if err != nil {
		return err
	}

	if err := im.Set(c, key, val); err != nil {
		c.WithField("err", err).WithField("key", key).Error("Set failed")
	}

	return cache.Fill(container, val)
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	hitIdx := -1
	for idx, lyr := range im.layers {
		err := lyr.Get(c, key, container)
		if err == cache.ErrNotFound {
			continue
		} else if err != nil {
			return err
		}
		hitIdx = idx
		break
	}

	if hitIdx == -1 {
		return cache.ErrNotFound
	}

	// fill layers which missing cache
	for idx := 0; idx < hitIdx; idx++ {
		if err := im.layers[idx].Set(c, key, container); err != nil {
			c.WithField("err", err).WithField("key", key).WithField("layer", idx).Warn("backfill failed")
		}
	}

	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	for _, lyr := range im.layers {
		if err := lyr.Set(c, key, value); err != nil {
			return err
		}
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	for _, lyr := range im.layers {
		if err := lyr.Del(c, key); err != nil {
			return err
		}
	}
	return nil
}
