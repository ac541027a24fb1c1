package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/bnsapi/base/ctx"
	bnsmocks "github.com/x-xyz/bnsapi/domain/bns/mocks"
	"github.com/x-xyz/bnsapi/service/redis/mocks"
	"github.com/x-xyz/bnsapi/stores/healthcheck/repository"
)

type healthCheckSuite struct {
	suite.Suite

	redis        *mocks.Service
	reverseIndex *bnsmocks.ReverseIndex
}

func (s *healthCheckSuite) SetupTest() {
	s.redis = &mocks.Service{}
	s.reverseIndex = &bnsmocks.ReverseIndex{}
}

func (s *healthCheckSuite) TearDownTest() {
	s.redis.AssertExpectations(s.T())
	s.reverseIndex.AssertExpectations(s.T())
}

func TestHealthCheckSuite(t *testing.T) {
	suite.Run(t, new(healthCheckSuite))
}

func (s *healthCheckSuite) TestCheck() {
	s.redis.On("Ping", mock.Anything).Return(nil).Once()
	s.reverseIndex.On("Len").Return(3).Once()

	status, err := New(repository.New(s.redis), s.reverseIndex).Check(ctx.Background())
	s.NoError(err)
	s.Equal("ok", status.Healthy)
	s.Equal(3, status.ReverseIndexSize)
}

func (s *healthCheckSuite) TestCheckRedisDown() {
	errDown := errors.New("connection refused")
	s.redis.On("Ping", mock.Anything).Return(errDown).Once()

	_, err := New(repository.New(s.redis), s.reverseIndex).Check(ctx.Background())
	s.Equal(errDown, err)
}

func (s *healthCheckSuite) TestCheckWithoutRedis() {
	s.reverseIndex.On("Len").Return(0).Once()

	status, err := New(repository.New(nil), s.reverseIndex).Check(ctx.Background())
	s.NoError(err)
	s.Equal(0, status.ReverseIndexSize)
}
