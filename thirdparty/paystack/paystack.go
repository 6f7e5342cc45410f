package paystack

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client verifies mobile-money charges with Paystack.
type Client interface {
	// Enabled reports whether a secret key is configured; without one callbacks
	// cannot be verified server-side.
	Enabled() bool
	Verify(ctx context.Context, reference string) (*Transaction, error)
}

// Transaction is the verified state of a charge. Amount is in minor units.
type Transaction struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Channel   string `json:"channel"`
}

type verifyResponse struct {
	Status  bool         `json:"status"`
	Message string       `json:"message"`
	Data    *Transaction `json:"data"`
}

type client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewClient(baseURL, secretKey string, timeout time.Duration) Client {
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *client) Enabled() bool {
	return c.secretKey != ""
}

func (c *client) Verify(ctx context.Context, reference string) (*Transaction, error) {
	endpoint := fmt.Sprintf("%s/transaction/verify/%s", c.baseURL, url.PathEscape(reference))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("paystack verify returned status %d: %s", resp.StatusCode, string(body))
	}

	var out verifyResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode verify response: %w", err)
	}
	if !out.Status || out.Data == nil {
		return nil, fmt.Errorf("paystack verify failed: %s", out.Message)
	}
	return out.Data, nil
}

// MinorUnits converts a major-unit amount (e.g. cedis) to the minor units Paystack expects.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
