package tripay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"paygate/internal/logger"
	"paygate/internal/payment"
	"paygate/internal/signer"

	"go.uber.org/zap"
)

const (
	ProviderName = "tripay"

	SandboxURL    = "https://tripay.co.id/api-sandbox/"
	ProductionURL = "https://tripay.co.id/api/"

	SignatureHeader = "X-Callback-Signature"

	pathChannels = "merchant/payment-channel"
	pathCreate   = "transaction/create"
	pathDetail   = "transaction/detail"
)

// Version is reported in the User-Agent header.
var Version = "dev"

type Options struct {
	MerchantCode string
	// APIKey authenticates every request.
	APIKey string
	// PrivateKey signs create requests and verifies callbacks.
	PrivateKey string

	// BaseURL overrides the sandbox/production endpoint.
	BaseURL    string
	Production bool
	FeeItemSKU string

	// HTTPClient defaults to http.DefaultClient. Timeouts belong to the client.
	HTTPClient *http.Client
}

// Gateway talks to the Tripay closed-payment API. Only customer-borne fees
// are supported.
type Gateway struct {
	payment.Base

	baseURL      *url.URL
	apiKey       string
	merchantCode string
	hmac         *signer.HMAC
	httpClient   *http.Client
}

var _ payment.Gateway = (*Gateway)(nil)

func New(opts Options) (*Gateway, error) {
	switch {
	case opts.MerchantCode == "":
		return nil, fmt.Errorf("%w: tripay merchant code is required", payment.ErrConfiguration)
	case opts.APIKey == "":
		return nil, fmt.Errorf("%w: tripay api key is required", payment.ErrConfiguration)
	case opts.PrivateKey == "":
		return nil, fmt.Errorf("%w: tripay private key is required", payment.ErrConfiguration)
	}

	base := SandboxURL
	if opts.BaseURL != "" {
		base = opts.BaseURL
	} else if opts.Production {
		base = ProductionURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	baseURL, err := url.Parse(base)
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("%w: invalid tripay base url %q", payment.ErrConfiguration, opts.BaseURL)
	}

	h, err := signer.NewHMAC("SHA-256", opts.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payment.ErrConfiguration, err)
	}

	client := opts.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Gateway{
		Base:         payment.Base{FeeItemSKU: opts.FeeItemSKU},
		baseURL:      baseURL,
		apiKey:       opts.APIKey,
		merchantCode: opts.MerchantCode,
		hmac:         h,
		httpClient:   client,
	}, nil
}

// BaseURL returns the resolved API root.
func (g *Gateway) BaseURL() string {
	return g.baseURL.String()
}

// do calls a Tripay endpoint and decodes the data field of the response into
// out. A non-nil body is sent as JSON with POST; otherwise query is appended
// to a GET request.
func (g *Gateway) do(ctx context.Context, path string, query url.Values, body any, out any) error {
	endpoint := g.baseURL.ResolveReference(&url.URL{Path: path})
	log := logger.FromCtx(ctx).With(
		zap.String("provider", ProviderName),
		zap.String("endpoint", endpoint.Path),
	)

	method := http.MethodGet
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode tripay request: %w", err)
		}
		method = http.MethodPost
		reader = bytes.NewReader(payload)
	} else if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("build tripay request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("User-Agent", "paygate/"+Version)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debug("sending tripay request", zap.String("method", method))

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Warn("tripay request failed", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)
	ok := resp.StatusCode >= 200 && resp.StatusCode < 300

	if !ok || (decodeErr == nil && !env.Success) {
		msg := env.Message
		if msg == "" {
			msg = "unknown error"
		}
		log.Warn("tripay rejected request",
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg),
		)
		return &payment.ProviderError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			Message:    msg,
		}
	}
	if decodeErr != nil {
		return fmt.Errorf("%w: tripay response: %v", payment.ErrFormat, decodeErr)
	}

	if data := bytes.TrimSpace(env.Data); len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("%w: tripay response has no data", payment.ErrFormat)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: tripay response data: %v", payment.ErrFormat, err)
	}
	return nil
}

func (g *Gateway) Channels(ctx context.Context) ([]payment.Channel, error) {
	var channels []channel
	if err := g.do(ctx, pathChannels, nil, nil, &channels); err != nil {
		return nil, err
	}

	out := make([]payment.Channel, 0, len(channels))
	for _, ch := range channels {
		out = append(out, toChannel(ch))
	}
	return out, nil
}

// Signature is the HMAC Tripay expects on transaction/create: merchant code,
// merchant ref and amount concatenated without separators.
func (g *Gateway) Signature(merchantRef string, amount int64) string {
	return g.hmac.Sign(g.merchantCode + merchantRef + strconv.FormatInt(amount, 10))
}

func (g *Gateway) Create(ctx context.Context, tx payment.CreateTransaction) (*payment.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return nil, err
	}

	amount := payment.ItemsTotal(tx.Items)
	req := createRequest{
		Method:      tx.Channel,
		MerchantRef: tx.ID,
		Amount:      amount,
		OrderItems:  toOrderItems(tx.Items),
		Signature:   g.Signature(tx.ID, amount),
	}
	if tx.Customer != nil {
		req.CustomerName = tx.Customer.Name
		req.CustomerEmail = tx.Customer.Email
		req.CustomerPhone = tx.Customer.Phone
	}

	var res transaction
	if err := g.do(ctx, pathCreate, nil, req, &res); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("tripay transaction created",
		zap.String("merchant_ref", res.MerchantRef),
		zap.String("reference", res.Reference),
		zap.Int64("amount", res.Amount),
		zap.String("status", res.Status),
	)
	return toTransaction(res), nil
}

func (g *Gateway) Get(ctx context.Context, paymentID string) (*payment.Transaction, error) {
	var res transaction
	err := g.do(ctx, pathDetail, url.Values{"reference": {paymentID}}, nil, &res)
	if err != nil {
		return nil, err
	}
	return toTransaction(res), nil
}

// VerifyCallback checks the X-Callback-Signature header against the raw body
// before decoding it.
func (g *Gateway) VerifyCallback(body []byte, header http.Header) (*payment.Transaction, error) {
	sig := header.Get(SignatureHeader)
	if sig == "" {
		return nil, fmt.Errorf("%w: missing signature in %q header", payment.ErrAuthentication, SignatureHeader)
	}
	if !g.hmac.Verify(string(body), sig) {
		return nil, fmt.Errorf("%w: invalid signature in %q header", payment.ErrAuthentication, SignatureHeader)
	}

	var res transaction
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("%w: tripay callback: %v", payment.ErrFormat, err)
	}
	return toTransaction(res), nil
}
