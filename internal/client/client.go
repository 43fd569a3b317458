// Package client talks to the upstream payment reporting API. Every
// endpoint returns a {status, message, data} envelope; a missing data
// field decodes as an empty result, not an error, so a thin upstream
// never breaks the dashboard.
package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"paydash/internal/models"
	"paydash/internal/observability/metrics"
)

const defaultTimeout = 10 * time.Second

// Client fetches datasets from the upstream API.
type Client struct {
	baseURL string
	timeout time.Duration
}

// New returns a client for the given base URL, e.g.
// "https://recruit.paysbypays.com/api/v1".
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{baseURL: baseURL, timeout: timeout}
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) get(path string, out interface{}) error {
	endpoint := c.baseURL + path

	agent := fiber.Get(endpoint)
	agent.Timeout(c.timeout)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		metrics.UpstreamRequests.WithLabelValues(path, "error").Inc()
		return fmt.Errorf("GET %s: %w", path, errs[0])
	}
	if code == fiber.StatusNotFound {
		metrics.UpstreamRequests.WithLabelValues(path, "not_found").Inc()
		return fmt.Errorf("GET %s: %w", path, ErrNotFound)
	}
	if code < 200 || code >= 300 {
		metrics.UpstreamRequests.WithLabelValues(path, "error").Inc()
		return fmt.Errorf("GET %s: unexpected status %d", path, code)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		metrics.UpstreamRequests.WithLabelValues(path, "error").Inc()
		return fmt.Errorf("GET %s: decode envelope: %w", path, err)
	}

	metrics.UpstreamRequests.WithLabelValues(path, "ok").Inc()

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("GET %s: decode data: %w", path, err)
	}
	return nil
}

// FetchPayments returns the complete payment feed. The upstream list
// endpoint is unpaginated; aggregation assumes the whole dataset.
func (c *Client) FetchPayments() ([]models.Payment, error) {
	payments := []models.Payment{}
	if err := c.get("/payments/list", &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// FetchPayment returns a single payment by code.
func (c *Client) FetchPayment(code string) (*models.Payment, error) {
	var payment models.Payment
	if err := c.get("/payments/"+code, &payment); err != nil {
		return nil, err
	}
	if payment.PaymentCode == "" {
		return nil, fmt.Errorf("payment %s: %w", code, ErrNotFound)
	}
	return &payment, nil
}

// FetchMerchants returns the complete merchant list.
func (c *Client) FetchMerchants() ([]models.Merchant, error) {
	merchants := []models.Merchant{}
	if err := c.get("/merchants/list", &merchants); err != nil {
		return nil, err
	}
	return merchants, nil
}

// FetchMerchantDetail returns the full profile for one merchant.
func (c *Client) FetchMerchantDetail(code string) (*models.MerchantDetail, error) {
	var detail models.MerchantDetail
	if err := c.get("/merchants/details/"+code, &detail); err != nil {
		return nil, err
	}
	if detail.MchtCode == "" {
		return nil, fmt.Errorf("merchant %s: %w", code, ErrNotFound)
	}
	return &detail, nil
}

// FetchPaymentStatusCodes returns the payment status label table.
func (c *Client) FetchPaymentStatusCodes() ([]models.StatusCode, error) {
	codes := []models.StatusCode{}
	if err := c.get("/common/payment-status/all", &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

// FetchPayTypeCodes returns the payment method label table. The
// endpoint path carries the upstream's own spelling.
func (c *Client) FetchPayTypeCodes() ([]models.PayTypeCode, error) {
	codes := []models.PayTypeCode{}
	if err := c.get("/common/paymemt-type/all", &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

// FetchMerchantStatusCodes returns the merchant status label table.
func (c *Client) FetchMerchantStatusCodes() ([]models.StatusCode, error) {
	codes := []models.StatusCode{}
	if err := c.get("/common/mcht-status/all", &codes); err != nil {
		return nil, err
	}
	return codes, nil
}
