package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bagbot/internal/domain"
)

func TestCalculateTotalPrice(t *testing.T) {
	tests := []struct {
		name string
		sel  domain.ProductSelection
		want float64
	}{
		{
			name: "nothing selected",
			sel:  domain.ProductSelection{},
			want: 0,
		},
		{
			name: "all dimensions, explicit quantity",
			sel: domain.ProductSelection{
				Size: "small", Thickness: "thin", Material: "pe", Color: "white",
				Quantity: 1200,
			},
			want: 0.85 * 1200,
		},
		{
			name: "missing quantity falls back to 1000",
			sel:  domain.ProductSelection{Size: "small"},
			want: 500,
		},
		{
			name: "partial selection",
			sel:  domain.ProductSelection{Size: "large", Color: "black", Quantity: 300},
			want: 0.55 * 300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CalculateTotalPrice(tt.sel), 1e-9)
		})
	}
}
