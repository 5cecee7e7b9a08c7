package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/01moynul/storefront/internal/models"
)

// StatusError is returned when the catalog answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Message    string // the "error" field of the body, when present
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP error! status: %d (%s)", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// Client talks to the catalog service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the service at baseURL.
// A nil httpClient uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ListProducts fetches the product listing envelope once. It never retries.
func (c *Client) ListProducts(ctx context.Context) (*models.ProductList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: body.Error}
	}

	var list models.ProductList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	if list.Products == nil {
		list.Products = []models.Product{}
	}
	return &list, nil
}
