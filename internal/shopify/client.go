// internal/shopify/client.go
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

// Client talks to the Shopify Admin GraphQL API. Endpoint and token are
// injected so tests can point it at a mock upstream.
type Client struct {
	endpoint string
	token    string
	httpc    *http.Client
	logger   *zap.Logger
}

func NewClient(endpoint, token string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		token:    token,
		httpc:    &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

type request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type responseError struct {
	Message string `json:"message"`
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []responseError `json:"errors"`
}

// Query executes a read document. Reads are idempotent, so one transport
// failure is retried before giving up.
func (c *Client) Query(ctx context.Context, document string, variables map[string]interface{}) (json.RawMessage, error) {
	data, err := c.post(ctx, document, variables)
	var transport *TransportError
	if errors.As(err, &transport) {
		c.logger.Warn("retrying shopify query after transport failure", zap.Error(err))
		return c.post(ctx, document, variables)
	}
	return data, err
}

// Mutate executes a mutation document. Never retried: a duplicate write is
// worse than a degraded response.
func (c *Client) Mutate(ctx context.Context, document string, variables map[string]interface{}) (json.RawMessage, error) {
	return c.post(ctx, document, variables)
}

func (c *Client) post(ctx context.Context, document string, variables map[string]interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(request{Query: document, Variables: variables})
	if err != nil {
		return nil, errors.Wrap(err, "marshaling shopify request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "building shopify request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &TransportError{Status: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &ParseError{Err: err}
	}
	if len(env.Errors) > 0 {
		messages := make([]string, 0, len(env.Errors))
		for _, respErr := range env.Errors {
			messages = append(messages, respErr.Message)
		}
		return env.Data, &UpstreamError{Messages: messages}
	}
	return env.Data, nil
}
