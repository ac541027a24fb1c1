package keys

import (
	"strings"
)

const (
	// PfxAddrCoinType is used for prefixing cached forward lookups
	PfxAddrCoinType = "addrCoinType"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix extracts the first two components of a key, used as a metrics tag
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	switch {
	case len(s) > 2:
		return strings.Join(s[:2], ":")
	case len(s) > 1:
		return s[0]
	}
	return ""
}
