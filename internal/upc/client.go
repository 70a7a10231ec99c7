// Package upc is a client for the Go-UPC barcode lookup API.
package upc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultBaseURL = "https://go-upc.com"

type Options struct {
	APIKey    string
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	userAgent  string
}

func NewClient(opt Options) *Client {
	if opt.BaseURL == "" {
		opt.BaseURL = DefaultBaseURL
	}
	if opt.Timeout <= 0 {
		opt.Timeout = 15 * time.Second
	}
	if opt.UserAgent == "" {
		opt.UserAgent = "productimages/1.0"
	}
	return &Client{
		httpClient: &http.Client{Timeout: opt.Timeout},
		apiKey:     opt.APIKey,
		baseURL:    strings.TrimRight(opt.BaseURL, "/"),
		userAgent:  opt.UserAgent,
	}
}

// CodeResponse matches /api/v1/code/{code}. Product is nil when the
// service has no record of the code.
type CodeResponse struct {
	Code     string   `json:"code"`
	CodeType string   `json:"codeType"`
	Product  *Product `json:"product"`
}

// Product carries the fields we use. ImageURL is nil when the key is
// absent or null.
type Product struct {
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

// StatusError reports a non-2xx answer other than 404
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

// LookupCode fetches product data for barcode. A 404 yields a response
// with a nil Product.
func (c *Client) LookupCode(ctx context.Context, barcode string) (*CodeResponse, error) {
	u := fmt.Sprintf("%s/api/v1/code/%s?key=%s", c.baseURL, url.PathEscape(barcode), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", barcode, redact(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &CodeResponse{Code: barcode}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("lookup %s: %w", barcode, &StatusError{Code: resp.StatusCode})
	}

	var res CodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("lookup %s: decoding response: %w", barcode, err)
	}
	return &res, nil
}

// redact drops the request URL, which carries the API key, from transport errors
func redact(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}
