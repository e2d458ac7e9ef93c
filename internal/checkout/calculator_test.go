package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_storefront/internal/domain"
)

func rate(t *testing.T, s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestComputeTotals_ReferenceValues(t *testing.T) {
	// subtotal 19.99 -> tax 2.60, grand total 22.59
	hint := &domain.CartTotals{SubtotalCents: 1999}

	totals := ComputeTotals(nil, hint, rate(t, DefaultTaxRate))

	assert.Equal(t, "19.99", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "2.60", totals.Tax.StringFixed(2))
	assert.Equal(t, "22.59", totals.GrandTotal.StringFixed(2))
}

func TestComputeTotals_SumsLinesWithoutHint(t *testing.T) {
	lines := []domain.CartLine{
		{UnitPriceCents: 1999, Quantity: 2},
		{UnitPriceCents: 3200, Quantity: 1},
	}

	totals := ComputeTotals(lines, nil, rate(t, DefaultTaxRate))

	// 39.98 + 32.00 = 71.98
	assert.Equal(t, "71.98", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "9.36", totals.Tax.StringFixed(2))
	assert.Equal(t, "81.34", totals.GrandTotal.StringFixed(2))
}

func TestComputeTotals_HintWinsOverLines(t *testing.T) {
	lines := []domain.CartLine{{UnitPriceCents: 100000, Quantity: 5}}
	hint := &domain.CartTotals{SubtotalCents: 1000}

	totals := ComputeTotals(lines, hint, rate(t, DefaultTaxRate))

	assert.Equal(t, "10.00", totals.Subtotal.StringFixed(2))
}

func TestComputeTotals_TaxOnRoundedSubtotal(t *testing.T) {
	// 3 * 3.33 = 9.99; tax must come from the rounded subtotal, not the
	// per-line raw sum.
	lines := []domain.CartLine{{UnitPriceCents: 333, Quantity: 3}}

	totals := ComputeTotals(lines, nil, rate(t, DefaultTaxRate))

	assert.Equal(t, "9.99", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "1.30", totals.Tax.StringFixed(2))
	assert.Equal(t, "11.29", totals.GrandTotal.StringFixed(2))
}

func TestComputeTotals_CustomRate(t *testing.T) {
	hint := &domain.CartTotals{SubtotalCents: 10000}

	totals := ComputeTotals(nil, hint, rate(t, "0.07"))

	assert.Equal(t, "7.00", totals.Tax.StringFixed(2))
	assert.Equal(t, "107.00", totals.GrandTotal.StringFixed(2))
}

func TestComputeTotals_EmptyCart(t *testing.T) {
	totals := ComputeTotals(nil, nil, rate(t, DefaultTaxRate))

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
}
