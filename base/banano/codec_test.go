package banano

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func randomKey() []byte {
	b := make([]byte, PublicKeyLength)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

func (ts *testsuite) TestEncode() {
	cases := []struct {
		Desc   string
		Key    string
		Prefix string
		Res    string
	}{
		{
			Desc: "no prefix",
			Key:  "0d7471e5d11faddce5315c97b23b464184afa8c4c396dcf219696b2682d0adf6",
			Res:  "15dng9kx49xfumkm4q6qpaxneie6oynebiwpums3ktdd6t3f3dhp69nxgb38",
		},
		{
			Desc: "no prefix 2",
			Key:  "2298fab7c61058e77ea554cb93edeeda0692cbfcc540ab213b2836b29029e23a",
			Res:  "1anrzcuwe64rwxzcco8dkhpyxpi8kd7zsjc1oeimpc3ppca4mrjtwnqposrs",
		},
		{
			Desc:   "ban prefix",
			Key:    "0d7471e5d11faddce5315c97b23b464184afa8c4c396dcf219696b2682d0adf6",
			Prefix: Prefix,
			Res:    "ban_15dng9kx49xfumkm4q6qpaxneie6oynebiwpums3ktdd6t3f3dhp69nxgb38",
		},
		{
			Desc:   "ban prefix 2",
			Key:    "2298fab7c61058e77ea554cb93edeeda0692cbfcc540ab213b2836b29029e23a",
			Prefix: Prefix,
			Res:    "ban_1anrzcuwe64rwxzcco8dkhpyxpi8kd7zsjc1oeimpc3ppca4mrjtwnqposrs",
		},
	}

	for _, c := range cases {
		ts.Equal(c.Res, Encode(mustHex(c.Key), c.Prefix), c.Desc)
	}
}

func (ts *testsuite) TestEncodeDeterministic() {
	key := randomKey()
	ts.Equal(Encode(key, Prefix), Encode(key, Prefix))
	ts.Len(Encode(key, ""), BodyLength+ChecksumSymbols)
}

func (ts *testsuite) TestChecksumSensitivity() {
	a := Encode(mustHex("0d7471e5d11faddce5315c97b23b464184afa8c4c396dcf219696b2682d0adf6"), Prefix)
	b := Encode(mustHex("2298fab7c61058e77ea554cb93edeeda0692cbfcc540ab213b2836b29029e23a"), Prefix)
	ts.NotEqual(a[len(a)-ChecksumSymbols:], b[len(b)-ChecksumSymbols:])

	// a single flipped bit changes the digest too
	key := randomKey()
	flipped := append([]byte{}, key...)
	flipped[0] ^= 0x01
	ts.NotEqual(Checksum(key), Checksum(flipped))
	ts.Len(Checksum(key), ChecksumLength)
}

func (ts *testsuite) TestDecode() {
	cases := []struct {
		Desc    string
		Address string
		Key     string
		Ok      bool
	}{
		{
			Desc:    "ban address",
			Address: "ban_15dng9kx49xfumkm4q6qpaxneie6oynebiwpums3ktdd6t3f3dhp69nxgb38",
			Key:     "0d7471e5d11faddce5315c97b23b464184afa8c4c396dcf219696b2682d0adf6",
			Ok:      true,
		},
		{
			Desc:    "ban address 2",
			Address: "ban_1anrzcuwe64rwxzcco8dkhpyxpi8kd7zsjc1oeimpc3ppca4mrjtwnqposrs",
			Key:     "2298fab7c61058e77ea554cb93edeeda0692cbfcc540ab213b2836b29029e23a",
			Ok:      true,
		},
		{
			Desc:    "registered wtp address",
			Address: "ban_1nz45e65wn8uouw6eh1sbjpcobj1dk4x7o5w9w1sjgdpc8b361txr4h1qtoj",
			Key:     "53e21b083e50dbaef8463c194c6caaa6205c85d2d47c3f0198b976519212035d",
			Ok:      true,
		},
		{
			Desc:    "unprefixed",
			Address: "15dng9kx49xfumkm4q6qpaxneie6oynebiwpums3ktdd6t3f3dhp69nxgb38",
			Key:     "0d7471e5d11faddce5315c97b23b464184afa8c4c396dcf219696b2682d0adf6",
			Ok:      true,
		},
		{
			Desc:    "other prefix",
			Address: "xrb_15dng9kx49xfumkm4q6qpaxneie6oynebiwpums3ktdd6t3f3dhp69nxgb38",
			Key:     "0d7471e5d11faddce5315c97b23b464184afa8c4c396dcf219696b2682d0adf6",
			Ok:      true,
		},
		{
			Desc:    "not an address",
			Address: "not_an_address",
		},
		{
			Desc:    "symbols outside the alphabet",
			Address: "ban_" + strings.Repeat("!", BodyLength) + "abcdefgh",
		},
		{
			Desc:    "upper case body",
			Address: "ban_" + strings.ToUpper("15dng9kx49xfumkm4q6qpaxneie6oynebiwpums3ktdd6t3f3dhp69nxgb38"),
		},
		{
			Desc:    "too short",
			Address: "ban_15dng9kx49xfumkm4q6qpaxneie6oyneb",
		},
		{
			Desc:    "no separator, wrong length",
			Address: "15dng9kx49xfumkm4q6qpaxneie6oynebiwpums3ktdd6t3f3dhp69nxgb3",
		},
		{
			Desc:    "newline in body",
			Address: "ban_15dng9kx49xfumkm4q6qpaxneie6oynebiwpums3ktdd6t3f3dh\n",
		},
		{
			Desc: "empty",
		},
	}

	for _, c := range cases {
		key, ok := Decode(c.Address)
		ts.Equal(c.Ok, ok, c.Desc)
		if c.Ok {
			ts.Equal(c.Key, key.Hex(), c.Desc)
			ts.Len(key, PublicKeyLength, c.Desc)
		} else {
			ts.Nil(key, c.Desc)
		}
		h, ok := DecodeHex(c.Address)
		ts.Equal(c.Ok, ok, c.Desc)
		ts.Equal(c.Key, h, c.Desc)
	}
}

func (ts *testsuite) TestRoundTrip() {
	for _, prefix := range []string{Prefix, "xrb_", "nano_", ""} {
		for i := 0; i < 64; i++ {
			key := randomKey()
			res, ok := Decode(Encode(key, prefix))
			if ts.True(ok, prefix) {
				ts.Equal(PublicKey(key), res, prefix)
			}
		}
	}
}

func (ts *testsuite) TestChecksumNotVerifiedByDecode() {
	valid := "ban_15dng9kx49xfumkm4q6qpaxneie6oynebiwpums3ktdd6t3f3dhp69nxgb38"
	corrupted := valid[:len(valid)-ChecksumSymbols] + "11111111"
	truncated := valid[:len(valid)-ChecksumSymbols]

	ts.True(VerifyChecksum(valid))
	ts.False(VerifyChecksum(corrupted))
	ts.False(VerifyChecksum(truncated))
	ts.False(VerifyChecksum("not_an_address"))

	// decode trusts the body alone
	for _, addr := range []string{valid, corrupted, truncated} {
		h, ok := DecodeHex(addr)
		ts.True(ok, addr)
		ts.Equal("0d7471e5d11faddce5315c97b23b464184afa8c4c396dcf219696b2682d0adf6", h, addr)
	}
}

func (ts *testsuite) TestIsValid() {
	ts.True(IsValid("ban_1anrzcuwe64rwxzcco8dkhpyxpi8kd7zsjc1oeimpc3ppca4mrjtwnqposrs"))
	ts.False(IsValid("ban_"))
}
