package payment

import (
	"context"
	"net/http"
)

// Gateway is implemented by every provider adapter.
type Gateway interface {
	// Channels lists the payment methods the merchant can offer.
	Channels(ctx context.Context) ([]Channel, error)
	// Create opens a transaction at the provider.
	Create(ctx context.Context, tx CreateTransaction) (*Transaction, error)
	// Get fetches a transaction by the provider's payment id.
	Get(ctx context.Context, paymentID string) (*Transaction, error)
	// VerifyCallback authenticates a provider callback against its raw body
	// and returns the transaction it reports.
	VerifyCallback(body []byte, header http.Header) (*Transaction, error)
}

// Base holds behaviour shared by adapters. Embed it in an adapter struct.
type Base struct {
	FeeItemSKU string
}

// WithFeeItem returns a copy of items with a line item for the gateway fee
// appended, for providers that bill the fee as a separate item. Without a
// configured SKU or a positive fee the copy is returned unchanged.
func (b Base) WithFeeItem(items []TransactionItem, fee int64) []TransactionItem {
	out := make([]TransactionItem, len(items), len(items)+1)
	copy(out, items)

	if b.FeeItemSKU == "" || fee <= 0 {
		return out
	}

	return append(out, TransactionItem{
		SKU:      b.FeeItemSKU,
		Price:    fee,
		Quantity: 1,
	})
}

// ItemsTotal is the sum of price * quantity over items.
func ItemsTotal(items []TransactionItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Price * it.Quantity
	}
	return total
}
