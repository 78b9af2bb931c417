// Package layout implements the fixed-offset binary codec for Money
// Streaming Program account records. The packed layout is dictated by
// the already-deployed on-chain program: field order, widths and
// encodings mirror an immutable external contract and must never change
// without a format version bump.
package layout

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

var (
	// ErrorMalformedRecord indicates a buffer too short to decode a
	// full record.
	ErrorMalformedRecord = errors.New("malformed record")
	// ErrorInvalidField indicates a value that does not fit its
	// declared width or slot during encode.
	ErrorInvalidField = errors.New("invalid field")
)

// FieldKind discriminates how a field's byte range is interpreted.
type FieldKind uint8

const (
	// Uint8 is a single byte holding a tag or boolean flag.
	Uint8 FieldKind = iota + 1
	// Bytes is an opaque blob copied verbatim, e.g. a 32-byte public key.
	Bytes
	// String16 is a fixed slot of little-endian 16-bit code units, one
	// character per unit, zero-padded.
	String16
	// Uint64 is a native 8-byte little-endian unsigned integer.
	Uint64
)

// Field describes one entry of a packed record.
type Field struct {
	Name  string
	Kind  FieldKind
	Width int
}

// Schema is an ordered field list consumed by the generic Pack and
// Unpack routines. The declaration order IS the wire format.
type Schema []Field

// Size returns the packed size of the schema in bytes.
func (s Schema) Size() int {
	total := 0
	for _, f := range s {
		total += f.Width
	}
	return total
}

// Offset returns the byte offset of the named field, or -1 if the
// schema has no such field.
func (s Schema) Offset(name string) int {
	off := 0
	for _, f := range s {
		if f.Name == name {
			return off
		}
		off += f.Width
	}
	return -1
}

// Unpack reads one value per field from buf, in declaration order. The
// buffer may be longer than the schema; reading starts at offset 0.
// Value types by kind: Uint8 -> uint8, Bytes -> []byte, String16 ->
// string, Uint64 -> uint64.
func (s Schema) Unpack(buf []byte) ([]any, error) {
	if len(buf) < s.Size() {
		return nil, errors.Wrapf(ErrorMalformedRecord, "need %d bytes, got %d", s.Size(), len(buf))
	}

	values := make([]any, 0, len(s))
	off := 0
	for _, f := range s {
		slot := buf[off : off+f.Width]
		switch f.Kind {
		case Uint8:
			values = append(values, slot[0])
		case Bytes:
			b := make([]byte, f.Width)
			copy(b, slot)
			values = append(values, b)
		case String16:
			values = append(values, DecodeString16(slot))
		case Uint64:
			values = append(values, binary.LittleEndian.Uint64(slot))
		default:
			return nil, errors.Wrapf(ErrorInvalidField, "field %q has unknown kind %d", f.Name, f.Kind)
		}
		off += f.Width
	}
	return values, nil
}

// Pack serializes one value per field into a buffer of exactly
// Size() bytes, in declaration order. Values must match the types
// documented on Unpack.
func (s Schema) Pack(values []any) ([]byte, error) {
	if len(values) != len(s) {
		return nil, errors.Wrapf(ErrorInvalidField, "schema has %d fields, got %d values", len(s), len(values))
	}

	buf := make([]byte, s.Size())
	off := 0
	for i, f := range s {
		slot := buf[off : off+f.Width]
		switch f.Kind {
		case Uint8:
			v, ok := values[i].(uint8)
			if !ok {
				return nil, errors.Wrapf(ErrorInvalidField, "field %q wants uint8, got %T", f.Name, values[i])
			}
			slot[0] = v
		case Bytes:
			b, ok := values[i].([]byte)
			if !ok {
				return nil, errors.Wrapf(ErrorInvalidField, "field %q wants []byte, got %T", f.Name, values[i])
			}
			if len(b) != f.Width {
				return nil, errors.Wrapf(ErrorInvalidField, "field %q wants %d bytes, got %d", f.Name, f.Width, len(b))
			}
			copy(slot, b)
		case String16:
			str, ok := values[i].(string)
			if !ok {
				return nil, errors.Wrapf(ErrorInvalidField, "field %q wants string, got %T", f.Name, values[i])
			}
			if err := EncodeString16(str, slot); err != nil {
				return nil, errors.Wrapf(err, "field %q", f.Name)
			}
		case Uint64:
			v, ok := values[i].(uint64)
			if !ok {
				return nil, errors.Wrapf(ErrorInvalidField, "field %q wants uint64, got %T", f.Name, values[i])
			}
			binary.LittleEndian.PutUint64(slot, v)
		default:
			return nil, errors.Wrapf(ErrorInvalidField, "field %q has unknown kind %d", f.Name, f.Kind)
		}
		off += f.Width
	}
	return buf, nil
}
