package amadeus

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"flightdeck/pkg/logger"
)

const tokenRefreshBuffer = 60 * time.Second

type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	// Currency for offer pricing, e.g. "BRL".
	Currency string
	// Vendor-side request budget for this client.
	RequestsPerSecond float64
	Burst             int
}

// Client talks to the flight-offers vendor. Credentials are handled by a
// process-wide client-credentials token source: the token is fetched on the
// first request and refreshed 60s ahead of expiry, never per call.
type Client struct {
	httpClient *http.Client
	baseURL    string
	currency   string
	tokens     oauth2.TokenSource
	limiter    *rate.Limiter
	logger     logger.Logger
}

func NewClient(httpClient *http.Client, cfg Config, log logger.Logger) *Client {
	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.BaseURL + "/v1/security/oauth2/token",
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	// Token requests go through the same HTTP client as API calls.
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
	tokens := oauth2.ReuseTokenSourceWithExpiry(nil, cc.TokenSource(tokenCtx), tokenRefreshBuffer)

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 20
	}

	currency := cfg.Currency
	if currency == "" {
		currency = "BRL"
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		currency:   currency,
		tokens:     tokens,
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		logger:     log,
	}
}

// get performs one authenticated vendor call, rate-limited and
// token-refreshed. The caller owns decoding and closes nothing.
func (c *Client) get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	token, err := c.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to obtain vendor credential: %w", err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	token.SetAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vendor api call failed: %w", err)
	}
	return resp, nil
}

func drainError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return fmt.Errorf("vendor api returned status %d: %s", resp.StatusCode, string(body))
}
