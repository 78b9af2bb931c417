package layout

import (
	"encoding/binary"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigUint64RoundTripValues(t *testing.T) {
	values := []uint64{
		0,
		1,
		255,
		256,
		1 << 16,
		1 << 32,
		1<<63 - 1,
		1 << 63,
		math.MaxUint64,
	}

	for _, v := range values {
		buf, err := EncodeBigUint64(new(big.Int).SetUint64(v))
		require.NoError(t, err, "value %d", v)
		require.Len(t, buf, 8)

		// The arbitrary-precision path must agree with the native
		// little-endian encoding byte for byte.
		var native [8]byte
		binary.LittleEndian.PutUint64(native[:], v)
		assert.Equal(t, native[:], buf, "value %d", v)

		back, err := DecodeBigUint64(buf)
		require.NoError(t, err)
		assert.Equal(t, v, back.Uint64(), "value %d", v)
	}
}

func TestBigUint64RoundTripBuffers(t *testing.T) {
	buffers := [][]byte{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 1},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0},
	}

	for _, buf := range buffers {
		v, err := DecodeBigUint64(buf)
		require.NoError(t, err)

		back, err := EncodeBigUint64(v)
		require.NoError(t, err)
		assert.Equal(t, buf, back)
	}
}

func TestDecodeBigUint64ShortBuffer(t *testing.T) {
	_, err := DecodeBigUint64(make([]byte, 7))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrorMalformedRecord)
}

func TestDecodeBigUint64IgnoresTrailingBytes(t *testing.T) {
	buf := []byte{42, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff}
	v, err := DecodeBigUint64(buf)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v.Uint64())
}

func TestEncodeBigUint64Invalid(t *testing.T) {
	tests := []struct {
		name string
		v    *big.Int
	}{
		{name: "nil", v: nil},
		{name: "negative", v: big.NewInt(-1)},
		{name: "nine bytes", v: new(big.Int).Lsh(big.NewInt(1), 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeBigUint64(tt.v)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrorInvalidField)
		})
	}
}
