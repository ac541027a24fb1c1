package usecase

import (
	"errors"
	"sync"

	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/bnsapi/base/banano"
	"github.com/x-xyz/bnsapi/base/ctx"
	"github.com/x-xyz/bnsapi/base/log"
	"github.com/x-xyz/bnsapi/base/metrics"
	"github.com/x-xyz/bnsapi/domain"
	"github.com/x-xyz/bnsapi/domain/bns"
)

const defaultWorkers = 8

type LookupUseCaseCfg struct {
	RecordRepo   bns.RecordRepo
	ReverseIndex bns.ReverseIndex
	// Domain is the namespace suffix appended to every looked up name
	Domain string
	// Workers bounds the goroutines evaluating batch items
	Workers int
}

type impl struct {
	recordRepo   bns.RecordRepo
	reverseIndex bns.ReverseIndex
	domain       string
	pool         *goroutines.Pool
	met          metrics.Service
}

func NewLookup(cfg *LookupUseCaseCfg) bns.LookupUsecase {
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	namespace := cfg.Domain
	if namespace == "" {
		namespace = bns.DefaultDomain
	}

	return &impl{
		recordRepo:   cfg.RecordRepo,
		reverseIndex: cfg.ReverseIndex,
		domain:       namespace,
		pool:         goroutines.NewPool(workers, goroutines.WithTaskQueueLength(workers*4)),
		met:          metrics.New("bns"),
	}
}

func (im *impl) Lookup(c ctx.Ctx, name string) (domain.BananoAddress, error) {
	if name == "" {
		return "", domain.ErrNotFound
	}

	fqdn := name + "." + im.domain
	c = ctx.WithLogFields(c, log.Fields{"name": fqdn})

	record, err := im.recordRepo.AddrCoinType(c, fqdn, bns.CoinType())
	if errors.Is(err, domain.ErrNotFound) {
		im.met.BumpSum("lookup.miss", 1, "kind", "forward")
		return "", domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("failed to recordRepo.AddrCoinType")
		im.met.BumpSum("lookup.err", 1, "kind", "forward")
		return "", err
	}

	if record.IsEmpty() {
		im.met.BumpSum("lookup.miss", 1, "kind", "forward")
		return "", domain.ErrNotFound
	} else if len(record.Addr) != banano.PublicKeyLength {
		c.WithField("len", len(record.Addr)).Warn("address is not a public key")
		im.met.BumpSum("lookup.miss", 1, "kind", "forward")
		return "", domain.ErrNotFound
	}

	im.met.BumpSum("lookup.hit", 1, "kind", "forward")
	return domain.BananoAddress(banano.Encode(record.Addr, banano.Prefix)), nil
}

func (im *impl) BatchLookup(c ctx.Ctx, names []string) (map[string]string, error) {
	return im.batch(c, names, func(c ctx.Ctx, name string) (string, error) {
		addr, err := im.Lookup(c, name)
		return addr.String(), err
	}), nil
}

func (im *impl) ReverseLookup(c ctx.Ctx, address domain.BananoAddress) (string, error) {
	if address.IsEmpty() {
		im.met.BumpSum("lookup.miss", 1, "kind", "reverse")
		return "", domain.ErrNotFound
	}

	if banano.IsValid(address.String()) && !banano.VerifyChecksum(address.String()) {
		c.WithField("address", address).Warn("checksum mismatch")
	}

	name, err := im.reverseIndex.DomainOf(c, address)
	if errors.Is(err, domain.ErrNotFound) {
		im.met.BumpSum("lookup.miss", 1, "kind", "reverse")
		return "", domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("failed to reverseIndex.DomainOf")
		im.met.BumpSum("lookup.err", 1, "kind", "reverse")
		return "", err
	}

	im.met.BumpSum("lookup.hit", 1, "kind", "reverse")
	return name, nil
}

func (im *impl) BatchReverseLookup(c ctx.Ctx, addresses []domain.BananoAddress) (map[string]string, error) {
	keys := make([]string, len(addresses))
	for i, a := range addresses {
		keys[i] = a.String()
	}
	return im.batch(c, keys, func(c ctx.Ctx, address string) (string, error) {
		return im.ReverseLookup(c, domain.BananoAddress(address))
	}), nil
}

// batch evaluates fn once per distinct key. Keys which fail, or are never evaluated
// because c is done, map to an empty string.
func (im *impl) batch(c ctx.Ctx, keys []string, fn func(c ctx.Ctx, key string) (string, error)) map[string]string {
	res := make(map[string]string, len(keys))
	uniq := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := res[k]; ok {
			continue
		}
		res[k] = ""
		uniq = append(uniq, k)
	}

	if len(uniq) == 0 {
		return res
	}

	im.met.BumpHistogram("batch.size", float64(len(uniq)))

	// one slot per key, each written by a single task
	vals := make([]string, len(uniq))
	wg := sync.WaitGroup{}
	for i, k := range uniq {
		if c.Err() != nil {
			break
		}

		idx, key := i, k
		wg.Add(1)
		task := func() {
			defer wg.Done()
			if c.Err() != nil {
				return
			}
			if val, err := fn(c, key); err == nil {
				vals[idx] = val
			}
		}

		if err := im.pool.Schedule(task); err != nil {
			c.WithField("err", err).Warn("failed to pool.Schedule, run inline")
			task()
		}
	}
	wg.Wait()

	for i, k := range uniq {
		res[k] = vals[i]
	}
	return res
}
