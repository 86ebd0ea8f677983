package tripay

import "encoding/json"

// envelope wraps every Tripay API response.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type fee struct {
	Flat    int64   `json:"flat"`
	Percent float64 `json:"percent"`
}

type channel struct {
	Group       string `json:"group"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	FeeMerchant fee    `json:"fee_merchant"`
	FeeCustomer fee    `json:"fee_customer"`
	MinimumFee  int64  `json:"minimum_fee"`
	MaximumFee  int64  `json:"maximum_fee"`
	IconURL     string `json:"icon_url"`
	Active      bool   `json:"active"`
}

type orderItem struct {
	SKU      string `json:"sku,omitempty"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

type instruction struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

// transaction is the shape returned by transaction/create, transaction/detail
// and posted to the callback URL. Nullable strings decode to "".
type transaction struct {
	Reference      string        `json:"reference"`
	MerchantRef    string        `json:"merchant_ref"`
	PaymentMethod  string        `json:"payment_method"`
	PaymentName    string        `json:"payment_name"`
	CustomerName   string        `json:"customer_name"`
	CustomerEmail  string        `json:"customer_email"`
	CustomerPhone  string        `json:"customer_phone"`
	Amount         int64         `json:"amount"`
	FeeMerchant    int64         `json:"fee_merchant"`
	FeeCustomer    int64         `json:"fee_customer"`
	TotalFee       int64         `json:"total_fee"`
	AmountReceived int64         `json:"amount_received"`
	PayCode        string        `json:"pay_code"`
	PayURL         string        `json:"pay_url"`
	CheckoutURL    string        `json:"checkout_url"`
	Status         string        `json:"status"`
	ExpiredTime    int64         `json:"expired_time"`
	OrderItems     []orderItem   `json:"order_items"`
	Instructions   []instruction `json:"instructions"`
	QRString       string        `json:"qr_string"`
	QRURL          string        `json:"qr_url"`
}

type createRequest struct {
	Method        string      `json:"method"`
	MerchantRef   string      `json:"merchant_ref"`
	Amount        int64       `json:"amount"`
	CustomerName  string      `json:"customer_name,omitempty"`
	CustomerEmail string      `json:"customer_email,omitempty"`
	CustomerPhone string      `json:"customer_phone,omitempty"`
	OrderItems    []orderItem `json:"order_items"`
	Signature     string      `json:"signature"`
}
