// Package units converts between whole-coin amounts entered by people and
// the octa amounts the ledger works with.
package units

import (
	"crowdfund/internal/core/domain"
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

const octaDecimals = 8

var maxOctas = fromUint64(math.MaxUint64)

// ToOctas parses a whole-coin decimal string such as "0.1" into octas. It
// rejects negative values and precision finer than one octa.
func ToOctas(coins string) (domain.Octas, error) {
	d, err := decimal.NewFromString(coins)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q is not a decimal number", domain.ErrInvalidRequest, coins)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: amount %q is negative", domain.ErrInvalidRequest, coins)
	}
	octas := d.Shift(octaDecimals)
	if !octas.IsInteger() {
		return 0, fmt.Errorf("%w: amount %q has more than %d decimal places", domain.ErrInvalidRequest, coins, octaDecimals)
	}
	if octas.GreaterThan(maxOctas) {
		return 0, fmt.Errorf("%w: amount %q is too large", domain.ErrInvalidRequest, coins)
	}
	return domain.Octas(octas.BigInt().Uint64()), nil
}

// FormatCoins renders octas as a whole-coin decimal string without
// trailing zeros.
func FormatCoins(o domain.Octas) string {
	return fromUint64(uint64(o)).Shift(-octaDecimals).String()
}

func fromUint64(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}
