package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/time/rate"

	"notepad/internal/config"
	"notepad/internal/logging"
)

const (
	defaultTimeout    = 10 * time.Second
	maxErrorBodyBytes = 4 << 10
	requestIDHeader   = "X-Request-ID"
)

// Client talks JSON to the notes REST service.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	logger  logging.Logger
	newID   func() string
}

type Options struct {
	Timeout           time.Duration
	RequestsPerSecond float64
	HTTPClient        *http.Client
	Logger            logging.Logger
}

func New(baseURL string, opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		burst := int(opts.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    httpClient,
		limiter: limiter,
		logger:  logger.With(logging.F("component", "client")),
		newID:   func() string { return ulid.Make().String() },
	}
}

func NewFromConfig(cfg config.Config, logger logging.Logger) *Client {
	return New(cfg.BaseURL(), Options{
		Timeout:           cfg.Timeout(),
		RequestsPerSecond: cfg.RequestsPerSecond(),
		Logger:            logger,
	})
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends body as JSON and returns the raw body of a 2xx reply.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(buf)
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := c.newID()
	req.Header.Set(requestIDHeader, requestID)

	started := time.Now()
	logger := c.logger.With(
		logging.F("request_id", requestID),
		logging.F("method", method),
		logging.F("path", path),
	)
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("request failed", logging.Err(err), logging.F("elapsed", time.Since(started)))
		return nil, err
	}
	defer resp.Body.Close()

	logger.Debug("response", logging.F("status", resp.StatusCode), logging.F("elapsed", time.Since(started)))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeAPIError(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return data, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	data, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	type errorPayload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	var payload errorPayload
	_ = json.Unmarshal(data, &payload)
	switch {
	case strings.TrimSpace(payload.Message) != "":
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Message}
	case strings.TrimSpace(payload.Error) != "":
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
}

var ErrNotFound = errors.New("not found")

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// Is reports a 404 as ErrNotFound.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e != nil && e.StatusCode == http.StatusNotFound
}

func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}
