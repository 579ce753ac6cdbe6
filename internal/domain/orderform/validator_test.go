package orderform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/salesdesk-api/internal/domain/orderform"
)

func TestLine_Qualifies(t *testing.T) {
	tests := []struct {
		name     string
		itemCode string
		quantity string
		want     bool
	}{
		{"code and positive quantity", "ITEM001", "2", true},
		{"fractional quantity", "ITEM001", "0.5", true},
		{"empty item code", "", "2", false},
		{"zero quantity", "ITEM001", "0", false},
		{"blank quantity", "ITEM001", "", false},
		{"malformed quantity", "ITEM001", "two", false},
		{"negative quantity", "ITEM001", "-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := orderform.Line{ItemCode: tt.itemCode, Quantity: tt.quantity}

			assert.Equal(t, tt.want, line.Qualifies())
		})
	}
}

func TestPrepareForSubmit(t *testing.T) {
	t.Run("drops disqualified lines without touching the input", func(t *testing.T) {
		form := orderform.Form{
			Lines: []orderform.Line{
				{ItemCode: "ITEM001", Quantity: "2"},
				{ItemCode: "", Quantity: "5"},
				{ItemCode: "ITEM002", Quantity: "0"},
				{ItemCode: "ITEM003", Quantity: "1"},
			},
		}

		prepared, err := orderform.PrepareForSubmit(form)

		require.NoError(t, err)
		require.Len(t, prepared.Lines, 2)
		assert.Equal(t, "ITEM001", prepared.Lines[0].ItemCode)
		assert.Equal(t, "ITEM003", prepared.Lines[1].ItemCode)
		// Editing state keeps all rows, including rejected ones.
		assert.Len(t, form.Lines, 4)
	})

	t.Run("rejects when every line has an empty item code", func(t *testing.T) {
		form := orderform.Form{
			Lines: []orderform.Line{
				{Quantity: "2"},
				{Quantity: "1"},
			},
		}

		_, err := orderform.PrepareForSubmit(form)

		require.Error(t, err)
		assert.ErrorIs(t, err, orderform.ErrEmptyOrder)
	})

	t.Run("rejects a fresh blank form", func(t *testing.T) {
		_, err := orderform.PrepareForSubmit(orderform.NewForm())

		assert.ErrorIs(t, err, orderform.ErrEmptyOrder)
	})

	t.Run("keeps header intact", func(t *testing.T) {
		form := orderform.Form{
			Header: orderform.Header{InvoiceNo: "INV-001", CustomerName: "Acme Pty Ltd"},
			Lines:  []orderform.Line{{ItemCode: "ITEM001", Quantity: "1"}},
		}

		prepared, err := orderform.PrepareForSubmit(form)

		require.NoError(t, err)
		assert.Equal(t, "INV-001", prepared.Header.InvoiceNo)
		assert.Equal(t, "Acme Pty Ltd", prepared.Header.CustomerName)
	})
}
