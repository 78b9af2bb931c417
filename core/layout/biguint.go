package layout

import (
	"math/big"

	"github.com/pkg/errors"
)

// An arbitrary-precision variant of the 8-byte unsigned integer codec.
// The stream record itself packs its counters with the native Uint64
// field kind; this primitive exists for call sites that handle
// user-supplied amounts arriving as big integers from upstream
// arithmetic, e.g. during instruction construction.

// DecodeBigUint64 interprets the first 8 bytes of slot as a
// little-endian unsigned integer and returns it as a big integer.
func DecodeBigUint64(slot []byte) (*big.Int, error) {
	if len(slot) < 8 {
		return nil, errors.Wrapf(ErrorMalformedRecord, "need 8 bytes, got %d", len(slot))
	}
	rev := make([]byte, 8)
	for i := 0; i < 8; i++ {
		rev[i] = slot[7-i]
	}
	return new(big.Int).SetBytes(rev), nil
}

// EncodeBigUint64 packs a non-negative big integer into exactly 8
// little-endian bytes: the big-endian byte sequence of v reversed and
// zero-padded on the right. Values that need more than 8 bytes fail
// with ErrorInvalidField.
func EncodeBigUint64(v *big.Int) ([]byte, error) {
	if v == nil || v.Sign() < 0 {
		return nil, errors.Wrap(ErrorInvalidField, "value must be a non-negative integer")
	}
	raw := v.Bytes()
	if len(raw) > 8 {
		return nil, errors.Wrapf(ErrorInvalidField, "value %s does not fit in 8 bytes", v)
	}
	out := make([]byte, 8)
	for i, b := range raw {
		out[len(raw)-1-i] = b
	}
	return out, nil
}
