package listview

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"corecrm/internal/dto"
)

const defaultFetchTimeout = 10 * time.Second

// HTTPListClient fetches listing pages from the admin search endpoint.
type HTTPListClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPListClient builds a client for the given server base URL, e.g.
// "http://localhost:8080".
func NewHTTPListClient(baseURL string, httpClient *http.Client) *HTTPListClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultFetchTimeout}
	}
	return &HTTPListClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Fetch implements ListClient against GET /admin/clientes/buscar.
func (c *HTTPListClient) Fetch(ctx context.Context, state QueryState) (*Page, error) {
	endpoint := c.baseURL + "/admin/clientes/buscar?" + requestValues(state).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search request returned status %d", resp.StatusCode)
	}

	var envelope dto.SearchCustomersResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	rows := make([]RowModel, 0, len(envelope.Customers))
	for _, customer := range envelope.Customers {
		rows = append(rows, NewRowModel(*customer))
	}

	return &Page{
		Rows:       rows,
		Total:      envelope.Total,
		Page:       envelope.Page,
		TotalPages: envelope.TotalPages,
	}, nil
}

// requestValues builds the wire query for the search endpoint. Unlike the
// browser URL, the page param is always explicit here.
func requestValues(state QueryState) url.Values {
	values := url.Values{}
	if state.Term != "" {
		values.Set("q", state.Term)
	}
	if state.Status != "" {
		values.Set("status", state.Status)
	}
	page := state.Page
	if page < 1 {
		page = 1
	}
	values.Set("page", strconv.Itoa(page))
	return values
}
