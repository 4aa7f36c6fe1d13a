package money_test

import (
	"testing"

	"github.com/monevo-app/monevo-api/internal/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBRL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"R$ 1.234,56", "1234.56"},
		{"R$1234,56", "1234.56"},
		{"1234,56", "1234.56"},
		{"1.234,56", "1234.56"},
		{"1234.56", "1234.56"},
		{"1,234.56", "1234.56"},
		{"1.234", "1234"},
		{"1.234.567", "1234567"},
		{"0,50", "0.5"},
		{"15000", "15000"},
		{"R$ 0,00", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := money.ParseBRL(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestParseBRLInvalid(t *testing.T) {
	for _, in := range []string{"", "R$", "-10", "abc", "1,2,3", "12.34.56"} {
		t.Run(in, func(t *testing.T) {
			_, err := money.ParseBRL(in)
			assert.ErrorIs(t, err, money.ErrInvalidAmount)
		})
	}
}

func TestFormatBRL(t *testing.T) {
	d, err := money.ParseBRL("1.234,5")
	require.NoError(t, err)
	assert.Equal(t, "R$ 1234.50", money.FormatBRL(d))
}
