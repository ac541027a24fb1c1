package repository

import (
	"math/big"
	"strings"

	"github.com/x-xyz/bnsapi/base/banano"
	"github.com/x-xyz/bnsapi/base/ctx"
	"github.com/x-xyz/bnsapi/base/log"
	"github.com/x-xyz/bnsapi/domain"
	"github.com/x-xyz/bnsapi/domain/bns"
)

type reverseIndex struct {
	// 0x prefixed lowercase hex key to name without the namespace suffix
	names map[string]string
}

// NewReverseIndex builds the address to name map once. The first name holding an
// address wins, later ones are logged and ignored.
func NewReverseIndex(ctx ctx.Ctx, records *bns.NameRecordMap, namespace string, coinType *big.Int) bns.ReverseIndex {
	idx := &reverseIndex{names: make(map[string]string, records.Len())}
	slot := coinType.String()
	suffix := "." + namespace

	records.Each(func(name string, r bns.Record) bool {
		raw, ok := r.Addresses[slot]
		if !ok {
			return true
		}

		key := normalizeHex(raw)
		short := strings.TrimSuffix(name, suffix)
		if owner, ok := idx.names[key]; ok {
			ctx.WithFields(log.Fields{
				"addr":    key,
				"owner":   owner,
				"ignored": short,
			}).Warn("address registered twice")
			return true
		}

		idx.names[key] = short
		return true
	})

	ctx.WithFields(log.Fields{
		"namespace": namespace,
		"coinType":  slot,
		"size":      len(idx.names),
	}).Info("reverse index built")
	return idx
}

func (im *reverseIndex) DomainOf(ctx ctx.Ctx, address domain.BananoAddress) (string, error) {
	key, ok := banano.DecodeHex(address.String())
	if !ok {
		return "", domain.ErrNotFound
	}

	name, ok := im.names["0x"+key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return name, nil
}

func (im *reverseIndex) Len() int {
	return len(im.names)
}

func normalizeHex(s string) string {
	s = strings.ToLower(s)
	if !strings.HasPrefix(s, "0x") {
		s = "0x" + s
	}
	return s
}
