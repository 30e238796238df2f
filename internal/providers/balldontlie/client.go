package balldontlie

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"roster-service/internal/domain/players"
	"roster-service/internal/providers"
)

// Config controls how the balldontlie client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches catalog players from the balldontlie API and maps them
// to domain models. One call fetches exactly one page; pagination is
// driven by the caller through the returned cursor.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a balldontlie client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchPlayers retrieves one page of players starting at cursor.
func (c *Client) FetchPlayers(ctx context.Context, cursor *int, perPage int) (providers.Page, error) {
	if c.apiKey == "" {
		return providers.Page{}, &providers.UnauthorizedError{
			Provider: providerName,
			Message:  "missing API key: set BALLDONTLIE_API_KEY",
		}
	}

	req, err := c.buildRequest(ctx, cursor, perPage)
	if err != nil {
		return providers.Page{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return providers.Page{}, &providers.NetworkError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return providers.Page{}, &providers.UnauthorizedError{
			Provider: providerName,
			Message:  "Unauthorized: please check your API key",
		}
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return providers.Page{}, &providers.RequestError{Provider: providerName, StatusCode: resp.StatusCode}
	}

	var payload playersResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return providers.Page{}, &providers.NetworkError{Provider: providerName, Err: decodeErr}
	}

	page := providers.Page{
		Players:    make([]players.Player, 0, len(payload.Data)),
		NextCursor: payload.Meta.NextCursor,
	}
	for _, p := range payload.Data {
		page.Players = append(page.Players, mapPlayer(p))
	}
	return page, nil
}

func (c *Client) buildRequest(ctx context.Context, cursor *int, perPage int) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/players", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("per_page", strconv.Itoa(resolvePerPage(perPage)))
	if cursor != nil {
		q.Set("cursor", strconv.Itoa(*cursor))
	}
	req.URL.RawQuery = q.Encode()

	// balldontlie expects the bare key, no Bearer prefix.
	req.Header.Set("Authorization", c.apiKey)

	return req, nil
}
