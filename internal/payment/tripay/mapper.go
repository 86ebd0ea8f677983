package tripay

import (
	"strings"
	"time"

	"paygate/internal/payment"
)

var categories = map[string]payment.ChannelCategory{
	"Virtual Account":   payment.CategoryVirtualAccount,
	"Convenience Store": payment.CategoryStore,
	"E-Wallet":          payment.CategoryEWallet,
}

func channelCategory(group string) payment.ChannelCategory {
	if c, ok := categories[group]; ok {
		return c
	}
	return payment.CategoryUnknown
}

func toChannel(ch channel) payment.Channel {
	return payment.Channel{
		ID:       ch.Code,
		Name:     ch.Name,
		Category: channelCategory(ch.Group),
		Fee: payment.Fee{
			Flat:    ch.FeeCustomer.Flat,
			Percent: ch.FeeCustomer.Percent,
			Min:     ch.MinimumFee,
			Max:     ch.MaximumFee,
		},
		ImageURL: ch.IconURL,
	}
}

// toPayment picks the single payment instruction of a transaction: the QR
// image for QRIS methods, then the redirect URL, then the pay code.
func toPayment(tx transaction) payment.Payment {
	method := strings.ToLower(tx.PaymentMethod)

	switch {
	case strings.Contains(method, "qris"):
		return payment.Payment{Name: "qris", Type: payment.PaymentTypeURL, Data: tx.QRURL}
	case tx.PayURL != "":
		return payment.Payment{Name: method, Type: payment.PaymentTypeURL, Data: tx.PayURL}
	default:
		return payment.Payment{Name: method, Type: payment.PaymentTypeCode, Data: tx.PayCode}
	}
}

func toTransaction(tx transaction) *payment.Transaction {
	items := make([]payment.TransactionItem, 0, len(tx.OrderItems))
	for _, it := range tx.OrderItems {
		sku := it.SKU
		if sku == "" {
			sku = it.Name
		}
		items = append(items, payment.TransactionItem{
			SKU:      sku,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	var customer *payment.Customer
	if tx.CustomerName != "" || tx.CustomerEmail != "" || tx.CustomerPhone != "" {
		customer = &payment.Customer{
			Name:  tx.CustomerName,
			Email: tx.CustomerEmail,
			Phone: tx.CustomerPhone,
		}
	}

	var instructions []payment.Instruction
	for _, in := range tx.Instructions {
		instructions = append(instructions, payment.Instruction{Title: in.Title, Steps: in.Steps})
	}

	var expiresAt *time.Time
	if tx.ExpiredTime > 0 {
		t := time.Unix(tx.ExpiredTime, 0).UTC()
		expiresAt = &t
	}

	return &payment.Transaction{
		ID:           tx.MerchantRef,
		PaymentID:    tx.Reference,
		Amount:       tx.Amount,
		Items:        items,
		Customer:     customer,
		State:        payment.TransactionState(tx.Status),
		Payments:     []payment.Payment{toPayment(tx)},
		Instructions: instructions,
		CheckoutURL:  tx.CheckoutURL,
		ExpiresAt:    expiresAt,
	}
}

func toOrderItems(items []payment.TransactionItem) []orderItem {
	out := make([]orderItem, 0, len(items))
	for _, it := range items {
		out = append(out, orderItem{
			SKU:      it.SKU,
			Name:     it.SKU,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	return out
}
