package util

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
)

var amountCtx = apd.BaseContext.WithPrecision(38)

// ParseTokenAmount converts a decimal display amount (e.g. "12.5") into
// raw token units at the mint's precision (10^decimals units per whole
// token). The result must be a non-negative integer that fits 64 bits;
// amounts with more fractional digits than the mint supports are
// rejected rather than rounded.
func ParseTokenAmount(value string, decimals uint32) (uint64, error) {
	d, _, err := apd.NewFromString(value)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid amount %q", value)
	}
	if d.Negative {
		return 0, errors.Errorf("amount %q must not be negative", value)
	}

	scaled := new(apd.Decimal)
	if _, err := amountCtx.Mul(scaled, d, apd.New(1, int32(decimals))); err != nil {
		return 0, errors.Wrapf(err, "scaling amount %q", value)
	}

	rounded := new(apd.Decimal)
	cond, err := amountCtx.Quantize(rounded, scaled, 0)
	if err != nil {
		return 0, errors.Wrapf(err, "normalizing amount %q", value)
	}
	if cond.Inexact() {
		return 0, errors.Errorf("amount %q has more than %d decimal places", value, decimals)
	}

	raw, ok := new(big.Int).SetString(rounded.Text('f'), 10)
	if !ok {
		return 0, errors.Errorf("amount %q is not an integer after scaling", value)
	}
	if !raw.IsUint64() {
		return 0, errors.Errorf("amount %q does not fit an unsigned 64-bit integer", value)
	}
	return raw.Uint64(), nil
}
