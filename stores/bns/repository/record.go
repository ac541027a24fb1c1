package repository

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/x-xyz/bnsapi/base/ctx"
	"github.com/x-xyz/bnsapi/base/log"
	"github.com/x-xyz/bnsapi/domain"
	"github.com/x-xyz/bnsapi/domain/bns"
)

type recordRepo struct {
	records *bns.NameRecordMap
}

// NewRecordRepo answers forward lookups straight out of the loaded records
func NewRecordRepo(records *bns.NameRecordMap) bns.RecordRepo {
	return &recordRepo{records}
}

func (im *recordRepo) AddrCoinType(ctx ctx.Ctx, name string, coinType *big.Int) (*bns.AddressBytesRecord, error) {
	record, ok := im.records.Get(name)
	if !ok {
		return nil, domain.ErrNotFound
	}

	raw, ok := record.Addresses[coinType.String()]
	if !ok || raw == "" {
		return nil, domain.ErrNotFound
	}

	if !strings.HasPrefix(raw, "0x") && !strings.HasPrefix(raw, "0X") {
		raw = "0x" + raw
	}

	addr, err := hexutil.Decode(raw)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"name":     name,
			"coinType": coinType.String(),
			"addr":     raw,
		}).Warn("failed to hexutil.Decode")
		return nil, domain.ErrNotFound
	}

	if len(addr) == 0 {
		return nil, domain.ErrNotFound
	}

	return &bns.AddressBytesRecord{Addr: addr}, nil
}
