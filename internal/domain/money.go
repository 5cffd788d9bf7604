package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Costs are USD amounts; an invalid NullDecimal means "not recorded".

func nonNegative(field string, v decimal.NullDecimal) error {
	if v.Valid && v.Decimal.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, field)
	}
	return nil
}

// CostOrZero returns the recorded amount, or zero when none was recorded.
func CostOrZero(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}
