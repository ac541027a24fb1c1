package repository

import (
	"errors"
	"math/big"

	"github.com/x-xyz/bnsapi/base/ctx"
	"github.com/x-xyz/bnsapi/base/log"
	"github.com/x-xyz/bnsapi/domain"
	"github.com/x-xyz/bnsapi/domain/bns"
	"github.com/x-xyz/bnsapi/domain/keys"
	"github.com/x-xyz/bnsapi/service/cache"
)

type cachedRecordRepo struct {
	repo  bns.RecordRepo
	cache cache.Service
}

// NewCachedRecordRepo puts a cache in front of repo. Misses are cached as an empty record.
func NewCachedRecordRepo(repo bns.RecordRepo, cache cache.Service) bns.RecordRepo {
	return &cachedRecordRepo{repo, cache}
}

func (im *cachedRecordRepo) AddrCoinType(ctx ctx.Ctx, name string, coinType *big.Int) (*bns.AddressBytesRecord, error) {
	res := bns.AddressBytesRecord{}
	key := keys.RedisKey(keys.PfxAddrCoinType, name, coinType.String())
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		record, err := im.repo.AddrCoinType(ctx, name, coinType)
		if errors.Is(err, domain.ErrNotFound) {
			return &bns.AddressBytesRecord{}, nil
		}
		if err != nil {
			return nil, err
		}
		return record, nil
	})

	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"name": name,
		}).Error("failed to cache.GetByFunc")
		return nil, err
	}

	if res.IsEmpty() {
		return nil, domain.ErrNotFound
	}
	return &res, nil
}
