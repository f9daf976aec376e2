// Package httpjson performs the single GET-and-decode round trip shared by
// the dictionary providers.
package httpjson

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/heartmarshall/define/internal/provider"
	"github.com/heartmarshall/define/pkg/ctxutil"
)

// DefaultTimeout bounds every request when the caller does not set one.
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of an error response is read for its message.
const maxErrorBody = 64 << 10

// Client issues GET requests and decodes JSON bodies. It never retries.
type Client struct {
	httpClient *http.Client
	userAgent  string
	log        *slog.Logger
}

// New creates a Client. A zero timeout means DefaultTimeout.
func New(timeout time.Duration, userAgent string, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		log:        logger,
	}
}

// Get fetches reqURL and decodes the JSON body into out.
// Failures are *provider.TransportError, *provider.StatusError or
// *provider.DecodeError, labelled with op.
func (c *Client) Get(ctx context.Context, op, reqURL string, header http.Header, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &provider.TransportError{Op: op, Err: err}
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.DebugContext(ctx, "request failed",
			slog.String("op", op),
			slog.String("lookup_id", ctxutil.LookupIDFromCtx(ctx)),
			slog.String("error", err.Error()),
		)
		return &provider.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "response",
		slog.String("op", op),
		slog.String("lookup_id", ctxutil.LookupIDFromCtx(ctx)),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &provider.StatusError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    ErrorMessage(body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &provider.TransportError{Op: op, Err: err}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &provider.DecodeError{Op: op, Err: err}
	}
	return nil
}

// ErrorMessage pulls a human-readable message out of an error body.
// Wordnik and WordsAPI use "message", dictionaryapi.dev adds "title",
// RapidAPI gateways sometimes use "error".
func ErrorMessage(body []byte) string {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return ""
	}
	for _, path := range []string{"message", "title", "error"} {
		if v := gjson.GetBytes(body, path); v.Type == gjson.String {
			if msg := strings.TrimSpace(v.String()); msg != "" {
				return msg
			}
		}
	}
	return ""
}
