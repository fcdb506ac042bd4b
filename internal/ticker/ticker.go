// Package ticker looks up currency prices from a public HTTP API.
package ticker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/codetray/codetray/internal/buildinfo"
	"github.com/codetray/codetray/internal/models"
)

// Quote is the latest price for a currency code.
type Quote struct {
	Code string
	Buy  float64
}

// response is the body returned by the ticker endpoint.
type response struct {
	Data *struct {
		Buy *float64 `json:"buy"`
	} `json:"data"`
}

// Client fetches quotes. The zero value uses http.DefaultClient and the
// default endpoint.
type Client struct {
	HTTPClient *http.Client
	Endpoint   string // fmt pattern, %s is the upper-case code
}

// NewClient creates a client for endpoint.
func NewClient(endpoint string) *Client {
	return &Client{Endpoint: endpoint}
}

// Fetch issues one GET for code and decodes the buy price.
func (c *Client) Fetch(ctx context.Context, code string) (Quote, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return Quote{}, fmt.Errorf("empty ticker code")
	}

	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = models.DefaultTickerEndpoint
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(endpoint, code), nil)
	if err != nil {
		return Quote{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "codetray/"+buildinfo.Version)

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("fetch %s: %w", code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("ticker API returned %d for %s", resp.StatusCode, code)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Quote{}, fmt.Errorf("decode %s: %w", code, err)
	}
	if body.Data == nil || body.Data.Buy == nil {
		return Quote{}, fmt.Errorf("decode %s: no buy price in response", code)
	}

	return Quote{Code: code, Buy: *body.Data.Buy}, nil
}

var brl = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formats v as Brazilian reais: "R$ 1.234,56".
func FormatBRL(v float64) string {
	return "R$ " + brl.Sprintf("%v", number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
