package order

import "bagbot/internal/domain"

// CalculateTotalPrice is a placeholder estimate: a flat per-unit increment
// for each chosen dimension, times the quantity. It deliberately does not
// read catalog prices; real quoting happens off-platform.
func CalculateTotalPrice(sel domain.ProductSelection) float64 {
	var base float64
	if sel.Size != "" {
		base += 0.5
	}
	if sel.Thickness != "" {
		base += 0.1
	}
	if sel.Material != "" {
		base += 0.2
	}
	if sel.Color != "" {
		base += 0.05
	}

	quantity := sel.Quantity
	if quantity <= 0 {
		quantity = 1000
	}
	return base * float64(quantity)
}
