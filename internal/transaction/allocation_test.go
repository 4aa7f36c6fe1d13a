package transaction

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func pct(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestAllocationAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		percent *decimal.Decimal
		want    string
	}{
		{"quinze por cento", "1000", pct("15"), "150"},
		{"cem por cento", "250.50", pct("100"), "250.50"},
		{"percentual fracionado", "1000", pct("12.5"), "125"},
		{"valor com centavos", "333.33", pct("10"), "33.333"},
		{"percentual nulo", "1000", nil, "0"},
		{"percentual zero", "1000", pct("0"), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			got := AllocationAmount(amount, tt.percent)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"esperava %s, obteve %s", tt.want, got)
		})
	}
}
