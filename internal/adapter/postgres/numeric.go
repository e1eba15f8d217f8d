package postgres

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Amounts are unsigned 64-bit integers stored as NUMERIC(20,0).

func toNumeric(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}

func fromNumeric(d decimal.Decimal) (uint64, error) {
	if d.IsNegative() || !d.IsInteger() {
		return 0, fmt.Errorf("amount %s out of range", d)
	}
	b := d.BigInt()
	if !b.IsUint64() {
		return 0, fmt.Errorf("amount %s out of range", d)
	}
	return b.Uint64(), nil
}
