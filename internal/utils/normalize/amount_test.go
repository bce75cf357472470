package normalize_test

import (
	"testing"

	"github.com/SscSPs/receivables_app/internal/utils/normalize"
	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want int64
	}{
		{"nil", nil, 0},
		{"empty", "", 0},
		{"thousands dot decimal comma", "1.234,56", 1235},
		{"comma decimal only", "500,5", 501},
		{"comma decimal rounds down", "500,4", 500},
		{"currency symbol and spaces", "$ 1.234.567,00", 1234567},
		{"several dots stop at the second dot", "1.234.567", 1},
		{"lone dot is decimal", "1.500", 2},
		{"single dot is decimal", "1234.5", 1235},
		{"plain integer string", "98000", 98000},
		{"float cell", 1234.56, 1235},
		{"int cell", 42, 42},
		{"negative sign stripped", "-250", 250},
		{"zero", 0.0, 0},
		{"no digits", "n/a", 0},
		{"only separators", ".,", 0},
		{"leading decimal", ",75", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.Amount(tt.raw))
		})
	}
}
