package banano

import (
	"encoding/base32"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

const (
	// Alphabet is the 32 symbol set of banano/nano addresses. It leaves out 0, 2, l and v.
	Alphabet = "13456789abcdefghijkmnopqrstuwxyz"
	// Prefix is prepended to every address this service hands out
	Prefix = "ban_"
	// Separator splits the prefix from the body
	Separator = "_"

	PublicKeyLength = 32
	ChecksumLength  = 5
	// BodyLength is the number of symbols encoding the public key
	BodyLength = 52
	// ChecksumSymbols is the number of symbols encoding the checksum
	ChecksumSymbols = 8

	// 3 zero bytes make the key 280 bits long, i.e. exactly 56 symbols
	padBytes   = 3
	padSymbols = 4
	padFiller  = "1111"
)

var encoding = base32.NewEncoding(Alphabet).WithPadding(base32.NoPadding)

// PublicKey is a raw ed25519 public key recovered from or encoded into an address
type PublicKey []byte

// Hex returns lowercase hex without 0x
func (k PublicKey) Hex() string {
	return hex.EncodeToString(k)
}

// Encode turns a public key into an address. An empty prefix yields an unprefixed address.
func Encode(pub []byte, prefix string) string {
	padded := make([]byte, padBytes+len(pub))
	copy(padded[padBytes:], pub)

	body := encoding.EncodeToString(padded)[padSymbols:]
	checksum := encoding.EncodeToString(Checksum(pub))

	var sb strings.Builder
	sb.Grow(len(prefix) + len(body) + len(checksum))
	sb.WriteString(prefix)
	sb.WriteString(body)
	sb.WriteString(checksum)
	return sb.String()
}

// Checksum is the 5 byte blake2b digest of the key in reversed byte order
func Checksum(pub []byte) []byte {
	// size 5 is always valid and no key is given, so New can't fail
	h, _ := blake2b.New(ChecksumLength, nil)
	h.Write(pub)
	sum := h.Sum(nil)
	for i, j := 0, len(sum)-1; i < j; i, j = i+1, j-1 {
		sum[i], sum[j] = sum[j], sum[i]
	}
	return sum
}

// Decode recovers the public key out of an address. The checksum is not verified,
// use VerifyChecksum for that.
func Decode(address string) (PublicKey, bool) {
	body, _, ok := split(address)
	if !ok {
		return nil, false
	}

	raw, err := encoding.DecodeString(padFiller + body)
	if err != nil {
		return nil, false
	}
	// the decoder skips \r and \n, which shortens the output
	if len(raw) != padBytes+PublicKeyLength {
		return nil, false
	}

	return PublicKey(raw[padBytes:]), true
}

// DecodeHex is Decode returning lowercase hex without 0x
func DecodeHex(address string) (string, bool) {
	pub, ok := Decode(address)
	if !ok {
		return "", false
	}
	return pub.Hex(), true
}

// VerifyChecksum reports whether the address carries the checksum of the key it encodes
func VerifyChecksum(address string) bool {
	pub, ok := Decode(address)
	if !ok {
		return false
	}

	_, tail, _ := split(address)
	if len(tail) < ChecksumSymbols {
		return false
	}

	return tail[:ChecksumSymbols] == encoding.EncodeToString(Checksum(pub))
}

// IsValid reports whether the address decodes to a key
func IsValid(address string) bool {
	_, ok := Decode(address)
	return ok
}

// split returns the body and whatever follows it. The body is taken from the segment
// after the first separator; an unprefixed address must be exactly body+checksum long.
func split(address string) (body, tail string, ok bool) {
	var rest string
	if parts := strings.Split(address, Separator); len(parts) > 1 {
		rest = parts[1]
	} else if len(address) == BodyLength+ChecksumSymbols {
		rest = address
	} else {
		return "", "", false
	}

	if len(rest) < BodyLength {
		return "", "", false
	}

	return rest[:BodyLength], rest[BodyLength:], true
}
