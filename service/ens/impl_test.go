package ens

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/bnsapi/base/ctx"
	"github.com/x-xyz/bnsapi/domain"
)

type ensSuite struct {
	suite.Suite

	im *impl
}

func (s *ensSuite) SetupTest() {
	// never reached, every case returns before talking to the chain
	s.im = &impl{}
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(ensSuite))
}

func (s *ensSuite) TestIsAbsent() {
	s.True(isAbsent(errors.New("unregistered name")))
	s.True(isAbsent(errors.New("no resolver")))
	s.False(isAbsent(errors.New("dial tcp: connection refused")))
	s.False(isAbsent(nil))
}

func (s *ensSuite) TestAddrCoinTypeOutOfRange() {
	huge := new(big.Int).Lsh(big.NewInt(1), 64)
	for _, coinType := range []*big.Int{huge, big.NewInt(-1)} {
		_, err := s.im.AddrCoinType(ctx.Background(), "wtp.banano-testing.cc", coinType)
		s.Equal(domain.ErrNotFound, err)
	}
}
