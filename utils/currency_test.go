package utils_test

import (
	"testing"

	"barberpos-backend/utils"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{1500, "Rp 1.500"},
		{150000, "Rp 150.000"},
		{1250000, "Rp 1.250.000"},
		{-10000, "-Rp 10.000"},
		{999.6, "Rp 1.000"}, // whole-rupiah rounding
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatRupiah(tt.amount))
		})
	}
}
