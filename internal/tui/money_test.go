package tui

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{amount: "1234.5", currency: "USD", want: "$1,234.50"},
		{amount: "-10.25", currency: "usd", want: "-$10.25"},
		{amount: "0.005", currency: "USD", want: "$0.01"},
		{amount: "1500", currency: "JPY", want: "¥1,500"},
		{amount: "12.3", currency: "NOPE", want: "12.30"},
	}

	for _, tt := range tests {
		t.Run(tt.amount+" "+tt.currency, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(decimal.RequireFromString(tt.amount), tt.currency))
		})
	}
}
