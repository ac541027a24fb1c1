package ens

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"
	goens "github.com/wealdtech/go-ens/v3"

	"github.com/x-xyz/bnsapi/base/ctx"
	"github.com/x-xyz/bnsapi/base/ethereum"
	"github.com/x-xyz/bnsapi/base/log"
	"github.com/x-xyz/bnsapi/domain"
	"github.com/x-xyz/bnsapi/domain/bns"
)

type impl struct {
	backend bind.ContractBackend
}

// New resolves multi coin addresses through the ENS registry behind rpc, with at most
// maxInFlight contract reads at a time
func New(rpc string, maxInFlight int) bns.RecordRepo {
	client, err := ethclient.Dial(rpc)
	if err != nil {
		panic(err)
	}
	return &impl{ethereum.NewThrottledClient(client, maxInFlight)}
}

func (im *impl) AddrCoinType(ctx ctx.Ctx, name string, coinType *big.Int) (*bns.AddressBytesRecord, error) {
	if coinType.Sign() < 0 || !coinType.IsUint64() {
		return nil, domain.ErrNotFound
	}

	resolver, err := goens.NewResolver(im.backend, name)
	if isAbsent(err) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"name": name,
		}).Error("failed to goens.NewResolver")
		return nil, err
	}

	addr, err := resolver.MultiAddress(coinType.Uint64())
	if isAbsent(err) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"name":     name,
			"coinType": coinType.String(),
		}).Error("failed to resolver.MultiAddress")
		return nil, err
	}

	if len(addr) == 0 {
		return nil, domain.ErrNotFound
	}
	return &bns.AddressBytesRecord{Addr: addr}, nil
}
