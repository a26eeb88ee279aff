package services

import (
	"math"

	"restaurant_pos_backend/internal/models"
)

// CalculateBill derives the four-amount bill breakdown from a set of order
// lines plus the tax and discount percentages. It is a pure function: no side
// effects, and identical inputs always produce identical output.
//
// Rounding contract: the subtotal is the exact sum of price*quantity; tax and
// discount are computed from the unrounded subtotal; each of the four output
// fields is then rounded to 2 decimal places independently. The total is
// rounded from the unrounded subtotal+tax-discount, NOT assembled from the
// rounded components, so Total can differ from Subtotal+GST-Discount by a
// cent at the rounding boundary. Callers must not "fix" that.
//
// Percentages are not bounded above: a 150% discount is accepted and simply
// produces a negative total. Quantity validation happens before lines reach
// this function.
func CalculateBill(lines []models.OrderLine, gstPercent, discountPercent float64) models.Bill {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.Price * float64(line.Quantity)
	}

	gst := subtotal * (gstPercent / 100)
	discount := subtotal * (discountPercent / 100)
	total := subtotal + gst - discount

	return models.Bill{
		Subtotal: round2(subtotal),
		GST:      round2(gst),
		Discount: round2(discount),
		Total:    round2(total),
	}
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
