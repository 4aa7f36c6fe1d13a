package transaction

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// AllocationAmount computes the slice of a transaction that funds a goal:
// amount times percent over 100. A nil or zero percent allocates nothing.
func AllocationAmount(amount decimal.Decimal, percent *decimal.Decimal) decimal.Decimal {
	if percent == nil || percent.IsZero() {
		return decimal.Zero
	}
	return amount.Mul(*percent).Div(hundred)
}
