package layout

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// The stream name travels as a fixed slot of 16-bit code units rather
// than UTF-8: the program treats each unit as one character code.

// DecodeString16 reads a slot of little-endian 16-bit units and
// reconstructs the text, one character per unit. Trailing zero units
// are slot padding and are dropped.
func DecodeString16(slot []byte) string {
	units := make([]uint16, 0, len(slot)/2)
	for i := 0; i+1 < len(slot); i += 2 {
		units = append(units, binary.LittleEndian.Uint16(slot[i:]))
	}
	for len(units) > 0 && units[len(units)-1] == 0 {
		units = units[:len(units)-1]
	}
	runes := make([]rune, len(units))
	for i, u := range units {
		runes[i] = rune(u)
	}
	return string(runes)
}

// EncodeString16 writes one little-endian 16-bit unit per character of s
// into slot, zero-padding the remainder. It fails with ErrorInvalidField
// if s has more characters than the slot holds or contains a character
// above U+FFFF; oversized input is never silently truncated.
func EncodeString16(s string, slot []byte) error {
	capacity := len(slot) / 2
	runes := []rune(s)
	if len(runes) > capacity {
		return errors.Wrapf(ErrorInvalidField, "string %q exceeds %d-character slot", s, capacity)
	}
	for i := range slot {
		slot[i] = 0
	}
	for i, r := range runes {
		if r > 0xFFFF {
			return errors.Wrapf(ErrorInvalidField, "character %q does not fit a 16-bit unit", r)
		}
		binary.LittleEndian.PutUint16(slot[2*i:], uint16(r))
	}
	return nil
}
