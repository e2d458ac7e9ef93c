// Package checkout derives order totals from the cart and drives order
// placement against the order API.
package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/fjod/go_storefront/internal/domain"
)

// DefaultTaxRate is the flat checkout tax rate. Not jurisdiction-aware;
// override via configuration when the business rule changes.
const DefaultTaxRate = "0.13"

// Totals is the checkout price breakdown in decimal currency units, all
// values rounded to two decimals.
type Totals struct {
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
}

var cents = decimal.NewFromInt(100)

// ComputeTotals derives subtotal, tax and grand total from the cart lines.
// When a totals hint is present its integer-cents subtotal is used instead
// of re-summing the lines.
//
// Tax is computed from the rounded subtotal, not the raw sum: rounding
// error is absorbed once at the subtotal step rather than accumulated
// across lines.
func ComputeTotals(lines []domain.CartLine, hint *domain.CartTotals, taxRate decimal.Decimal) Totals {
	var subtotal decimal.Decimal
	if hint != nil {
		subtotal = decimal.NewFromInt(hint.SubtotalCents).Div(cents)
	} else {
		for _, line := range lines {
			unit := decimal.NewFromInt(line.UnitPriceCents).Div(cents)
			subtotal = subtotal.Add(unit.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
	}

	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(taxRate).Round(2)
	grand := subtotal.Add(tax).Round(2)

	return Totals{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: grand,
	}
}
