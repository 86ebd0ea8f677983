package payment

import (
	"time"
)

type ChannelCategory string

const (
	CategoryVirtualAccount ChannelCategory = "virtual-account"
	CategoryStore          ChannelCategory = "store"
	CategoryEWallet        ChannelCategory = "e-wallet"
	CategoryUnknown        ChannelCategory = "unknown"
)

// Fee is the customer-borne fee of a channel. Min and Max are ignored when zero.
type Fee struct {
	Flat    int64   `json:"flat"`
	Percent float64 `json:"percent"`
	Min     int64   `json:"min"`
	Max     int64   `json:"max"`
}

type Channel struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category ChannelCategory `json:"category"`
	Fee      Fee             `json:"fee"`
	ImageURL string          `json:"imageUrl,omitempty"`
}

// TransactionItem prices are in the smallest currency unit.
type TransactionItem struct {
	SKU      string `json:"sku" validate:"required"`
	Price    int64  `json:"price" validate:"gte=0"`
	Quantity int64  `json:"quantity" validate:"gt=0"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone,omitempty"`
}

type CreateTransaction struct {
	ID       string            `json:"id" validate:"required"`
	Channel  string            `json:"channel" validate:"required"`
	Items    []TransactionItem `json:"items" validate:"required,min=1,dive"`
	Customer *Customer         `json:"customer,omitempty"`
}

type PaymentType string

const (
	PaymentTypeURL  PaymentType = "url"
	PaymentTypeCode PaymentType = "code"
)

// Payment tells the customer how to pay: a URL to visit or a code to enter.
type Payment struct {
	Name string      `json:"name"`
	Type PaymentType `json:"type"`
	Data string      `json:"data"`
}

// TransactionState values not listed here are passed through from the provider.
type TransactionState string

const (
	StateUnpaid  TransactionState = "UNPAID"
	StatePaid    TransactionState = "PAID"
	StateExpired TransactionState = "EXPIRED"
	StateFailed  TransactionState = "FAILED"
	StateRefund  TransactionState = "REFUND"
)

type Instruction struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

// Transaction is the provider-agnostic view of a payment attempt. ID is the
// caller's reference and PaymentID the provider's.
type Transaction struct {
	ID           string            `json:"id"`
	PaymentID    string            `json:"paymentId"`
	Amount       int64             `json:"amount"`
	Items        []TransactionItem `json:"items"`
	Customer     *Customer         `json:"customer,omitempty"`
	State        TransactionState  `json:"state"`
	Payments     []Payment         `json:"payments"`
	Instructions []Instruction     `json:"instructions,omitempty"`
	CheckoutURL  string            `json:"checkoutUrl,omitempty"`
	ExpiresAt    *time.Time        `json:"expiresAt,omitempty"`
}
