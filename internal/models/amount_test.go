package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Plain", input: "12.34", want: "12.34"},
		{name: "Dollar sign", input: "$12.34", want: "12.34"},
		{name: "Thousands separators", input: "$1,234.56", want: "1234.56"},
		{name: "Currency code", input: "USD 10.00", want: "10"},
		{name: "Internal spaces", input: "$ 1 234.50", want: "1234.5"},
		{name: "No cents", input: "$45", want: "45"},
		{name: "Garbage", input: "free", want: "0"},
		{name: "Empty", input: "", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.input).String())
		})
	}
}

func TestNormalizeAmount(t *testing.T) {
	assert.Equal(t, "12.35", NormalizeAmount(decimal.RequireFromString("12.345")).StringFixed(2))
	assert.Equal(t, "12.00", NormalizeAmount(decimal.RequireFromString("12")).StringFixed(2))
}
