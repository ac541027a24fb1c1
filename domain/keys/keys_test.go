package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "addrCoinType:wtp.banano-testing.cc:198", RedisKey(PfxAddrCoinType, "wtp.banano-testing.cc", "198"))
	assert.Equal(t, "a-b", CustomKey("-", "a", "b"))
}

func TestGetPrefix(t *testing.T) {
	cases := []struct {
		Key string
		Res string
	}{
		{"ens:addrCoinType:wtp", "ens:addrCoinType"},
		{"healthcheck:testset", "healthcheck"},
		{"plain", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.Res, GetPrefix(c.Key), c.Key)
	}
}
