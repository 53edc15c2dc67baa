package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/backoffice-labs/store-admin/internal/config"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client talks to the store API. It owns the base URL, the HTTP client
// and the request logging; resource-level access goes through the typed
// collections in Store.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func New(cfg *config.API, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}
}

// do issues one request and decodes a 2xx JSON body into out (out may
// be nil for DELETE). Non-2xx responses and transport failures come
// back as *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Correlation ID, echoed by the server into its own logs
	correlationID := uuid.NewString()
	req.Header.Set("X-Request-ID", correlationID)

	requestLogger := c.logger.With(
		slog.String("correlation_id", correlationID),
		slog.String("http_method", method),
		slog.String("http_path", path),
	)

	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		requestLogger.Error("Request failed", slog.String("error", err.Error()))

		return &APIError{TransportErr: err}
	}

	defer resp.Body.Close()

	requestLogger.Info("Request completed",
		slog.Int("http_status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
