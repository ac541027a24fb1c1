package healthcheck

import (
	"github.com/x-xyz/bnsapi/base/ctx"
)

// Status is reported by a healthy instance
type Status struct {
	Healthy string `json:"healthy"`
	// ReverseIndexSize is the number of addresses reverse lookup can answer
	ReverseIndexSize int `json:"reverseIndexSize"`
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) (*Status, error)
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	PingCache(context ctx.Ctx) error
}
