package util

import (
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
)

// amountCtx has enough precision for uint256-scale token amounts.
var amountCtx = apd.Context{
	Precision:   100,
	MaxExponent: apd.MaxExponent,
	MinExponent: apd.MinExponent,
	Rounding:    apd.RoundHalfUp,
	Traps:       apd.DefaultTraps,
}

// ParseTokenAmount converts a human-readable decimal amount into an integer
// base-unit string, e.g. ("1.5", 18) -> "1500000000000000000". The
// conversion is exact; amounts with more fractional digits than the token
// carries are rejected rather than rounded.
func ParseTokenAmount(amount string, decimals uint32) (string, error) {
	d, _, err := apd.NewFromString(amount)
	if err != nil {
		return "", errors.Wrapf(err, "invalid amount %q", amount)
	}
	if d.Negative {
		return "", errors.Errorf("amount %q cannot be negative", amount)
	}

	scaled := new(apd.Decimal)
	if _, err := amountCtx.Mul(scaled, d, apd.New(1, int32(decimals))); err != nil {
		return "", errors.Wrap(err, "failed to scale amount")
	}

	result := new(apd.Decimal)
	if _, err := amountCtx.Quantize(result, scaled, 0); err != nil {
		return "", errors.Wrap(err, "failed to quantize amount")
	}
	if result.Cmp(scaled) != 0 {
		return "", errors.Errorf("amount %q has more than %d decimal places", amount, decimals)
	}

	return result.Text('f'), nil
}

// FormatTokenAmount converts an integer base-unit string back into a
// human-readable decimal amount, e.g. ("1500000000000000000", 18) -> "1.5".
func FormatTokenAmount(baseUnits string, decimals uint32) (string, error) {
	d, _, err := apd.NewFromString(baseUnits)
	if err != nil {
		return "", errors.Wrapf(err, "invalid base-unit amount %q", baseUnits)
	}
	if d.Form != apd.Finite || strings.ContainsAny(baseUnits, ".eE") {
		return "", errors.Errorf("base-unit amount %q must be an integer", baseUnits)
	}

	scaled := new(apd.Decimal)
	if _, err := amountCtx.Quo(scaled, d, apd.New(1, int32(decimals))); err != nil {
		return "", errors.Wrap(err, "failed to scale amount")
	}

	reduced := new(apd.Decimal)
	if _, _, err := amountCtx.Reduce(reduced, scaled); err != nil {
		return "", errors.Wrap(err, "failed to reduce amount")
	}

	return reduced.Text('f'), nil
}
