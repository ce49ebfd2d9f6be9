package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Script endpoints exposed by the remote API.
const (
	EndpointGetAgents         = "get_agents"
	EndpointAddAgent          = "add_agent"
	EndpointGetClients        = "get_clients"
	EndpointAddClient         = "add_client"
	EndpointGetProducts       = "get_products"
	EndpointAddProduct        = "add_product"
	EndpointGetTransactions   = "get_transactions"
	EndpointAddTransaction    = "add_transaction"
	EndpointGetPayouts        = "get_commission_payouts"
	EndpointGeneratePayouts   = "generate_payouts"
	EndpointSaveQuote         = "save_quote"
	EndpointGetQuotes         = "get_quotes"
	EndpointUpdateQuoteStatus = "update_quote_status"
	EndpointRegister          = "register"
)

const maxBody = 4 << 20

type Config struct {
	BaseURL string
	Suffix  string
	APIKey  string
	Timeout time.Duration
}

// Client talks to the remote script API. Every call is a single attempt.
type Client struct {
	baseURL string
	suffix  string
	apiKey  string
	HTTP    *http.Client
	logger  *zap.Logger
}

func New(cfg Config, logger *zap.Logger) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		return nil, fmt.Errorf("invalid remote api url %q", cfg.BaseURL)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: base,
		suffix:  cfg.Suffix,
		apiKey:  cfg.APIKey,
		HTTP:    &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

type envelope struct {
	Success Bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (c *Client) url(endpoint string) string {
	return c.baseURL + "/" + endpoint + c.suffix
}

// call performs one request and unwraps the {success, data, message}
// envelope. payload nil means GET.
func (c *Client) call(ctx context.Context, endpoint string, payload any) (envelope, error) {
	method := http.MethodGet
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return envelope{}, fmt.Errorf("%s: encode request: %w", endpoint, err)
		}
		method = http.MethodPost
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(endpoint), body)
	if err != nil {
		return envelope{}, fmt.Errorf("%s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.logger.Warn("remote: request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return envelope{}, fmt.Errorf("%s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return envelope{}, fmt.Errorf("%s: read response: %w", endpoint, err)
	}
	c.logger.Debug("remote: call",
		zap.String("endpoint", endpoint),
		zap.String("method", method),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := resp.Status
		if decodeErr == nil && strings.TrimSpace(env.Message) != "" {
			msg = env.Message
		}
		return envelope{}, &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return envelope{}, fmt.Errorf("%s: decode response: %w", endpoint, decodeErr)
	}
	if !env.Success {
		msg := env.Message
		if strings.TrimSpace(msg) == "" {
			msg = genericFailure
		}
		return envelope{}, &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode, Message: msg}
	}
	return env, nil
}

// decodeData unmarshals an envelope's data into out. Missing data leaves
// out untouched.
func decodeData(endpoint string, env envelope, out any) error {
	if len(env.Data) == 0 || string(bytes.TrimSpace(env.Data)) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s: decode data: %w", endpoint, err)
	}
	return nil
}

// fetchList is shared by every get_* endpoint.
func fetchList[W any, V any](ctx context.Context, c *Client, endpoint string, mapFn func(W) V) ([]V, error) {
	env, err := c.call(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}
	var rows []W
	if err := decodeData(endpoint, env, &rows); err != nil {
		return nil, err
	}
	out := make([]V, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapFn(r))
	}
	return out, nil
}

// create posts in and maps the returned record. Fields the API sends back
// overlay the submitted ones, so a reply carrying only an id still yields
// a complete record.
func create[W any, V any](ctx context.Context, c *Client, endpoint string, in W, mapFn func(W) V) (V, error) {
	var zero V
	env, err := c.call(ctx, endpoint, in)
	if err != nil {
		return zero, err
	}
	row := in
	if err := decodeData(endpoint, env, &row); err != nil {
		return zero, err
	}
	return mapFn(row), nil
}
