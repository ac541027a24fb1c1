package usecase

import (
	"github.com/x-xyz/bnsapi/base/ctx"
	"github.com/x-xyz/bnsapi/domain/bns"
	hcdomain "github.com/x-xyz/bnsapi/domain/healthcheck"
)

type impl struct {
	repo         hcdomain.HealthCheckRepo
	reverseIndex bns.ReverseIndex
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo, reverseIndex bns.ReverseIndex) hcdomain.HealthCheckUsecase {
	return &impl{
		repo:         repo,
		reverseIndex: reverseIndex,
	}
}

func (im *impl) Check(context ctx.Ctx) (*hcdomain.Status, error) {
	if err := im.repo.PingCache(context); err != nil {
		return nil, err
	}
	return &hcdomain.Status{
		Healthy:          "ok",
		ReverseIndexSize: im.reverseIndex.Len(),
	}, nil
}
