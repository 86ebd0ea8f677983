package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateTransaction_Validate(t *testing.T) {
	valid := func() CreateTransaction {
		return CreateTransaction{
			ID:      "INV-1",
			Channel: "QRIS2",
			Items:   []TransactionItem{{SKU: "SKU-1", Price: 100, Quantity: 100}},
			Customer: &Customer{
				Name:  "testing",
				Email: "testing@gmail.com",
			},
		}
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("ValidWithoutCustomer", func(t *testing.T) {
		tx := valid()
		tx.Customer = nil
		assert.NoError(t, tx.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*CreateTransaction)
	}{
		{"MissingID", func(tx *CreateTransaction) { tx.ID = "" }},
		{"MissingChannel", func(tx *CreateTransaction) { tx.Channel = "" }},
		{"NoItems", func(tx *CreateTransaction) { tx.Items = nil }},
		{"EmptyItems", func(tx *CreateTransaction) { tx.Items = []TransactionItem{} }},
		{"ItemWithoutSKU", func(tx *CreateTransaction) { tx.Items[0].SKU = "" }},
		{"ZeroQuantity", func(tx *CreateTransaction) { tx.Items[0].Quantity = 0 }},
		{"NegativePrice", func(tx *CreateTransaction) { tx.Items[0].Price = -1 }},
		{"BadEmail", func(tx *CreateTransaction) { tx.Customer.Email = "not-an-email" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid()
			tt.mutate(&tx)
			assert.ErrorIs(t, tx.Validate(), ErrValidation)
		})
	}
}
