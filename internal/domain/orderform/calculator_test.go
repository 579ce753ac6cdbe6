package orderform_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/salesdesk-api/internal/domain/orderform"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRecompute(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		price    string
		taxRate  string
		wantExcl string
		wantTax  string
		wantIncl string
	}{
		{"whole numbers", "2", "1500", "10", "3000", "300", "3300"},
		{"fractional quantity", "1.5", "10", "10", "15", "1.5", "16.5"},
		{"zero tax rate", "3", "20", "0", "60", "0", "60"},
		{"zero quantity", "0", "99.95", "15", "0", "0", "0"},
		{"blank quantity computes as zero", "", "100", "10", "0", "0", "0"},
		{"blank tax rate computes as zero", "4", "25", "", "100", "0", "100"},
		{"malformed quantity computes as zero", "abc", "100", "10", "0", "0", "0"},
		{"malformed tax rate computes as zero", "2", "50", "ten", "100", "0", "100"},
		{"fractional everything", "2.5", "19.99", "12.5", "49.975", "6.246875", "56.221875"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := orderform.Line{
				Quantity:  tt.quantity,
				UnitPrice: dec(tt.price),
				TaxRate:   tt.taxRate,
			}

			got := orderform.Recompute(line)

			assert.True(t, got.ExclAmount.Equal(dec(tt.wantExcl)),
				"excl: got %s want %s", got.ExclAmount, tt.wantExcl)
			assert.True(t, got.TaxAmount.Equal(dec(tt.wantTax)),
				"tax: got %s want %s", got.TaxAmount, tt.wantTax)
			assert.True(t, got.InclAmount.Equal(dec(tt.wantIncl)),
				"incl: got %s want %s", got.InclAmount, tt.wantIncl)
		})
	}

	t.Run("should keep raw field values as entered", func(t *testing.T) {
		line := orderform.Line{Quantity: "  ", UnitPrice: dec("10"), TaxRate: "x"}

		got := orderform.Recompute(line)

		assert.Equal(t, "  ", got.Quantity)
		assert.Equal(t, "x", got.TaxRate)
	})

	t.Run("should not round intermediate results", func(t *testing.T) {
		// 3 * 0.333 * 7% stays exact; a cents-based scheme would drift.
		line := orderform.Recompute(orderform.Line{
			Quantity:  "3",
			UnitPrice: dec("0.333"),
			TaxRate:   "7",
		})

		require.True(t, line.ExclAmount.Equal(dec("0.999")))
		require.True(t, line.TaxAmount.Equal(dec("0.06993")))
		require.True(t, line.InclAmount.Equal(dec("1.06893")))
	})
}

func TestLine_Rounded(t *testing.T) {
	line := orderform.Recompute(orderform.Line{
		Quantity:  "2.5",
		UnitPrice: dec("19.99"),
		TaxRate:   "12.5",
	})

	rounded := line.Rounded()

	assert.True(t, rounded.ExclAmount.Equal(dec("49.98")))
	assert.True(t, rounded.TaxAmount.Equal(dec("6.25")))
	assert.True(t, rounded.InclAmount.Equal(dec("56.22")))
	// The original keeps full precision.
	assert.True(t, line.ExclAmount.Equal(dec("49.975")))
}
