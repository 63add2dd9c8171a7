package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 2 * time.Minute
	annotatePath   = "/v1/annotate"
)

// RemoteClient calls an HTTP annotation service that wraps an NLP backend
// (e.g. a spaCy server) and returns tagged tokens in the wire shape of Token.
type RemoteClient struct {
	baseURL  string
	token    string
	language string
	client   *http.Client
	limiter  *rate.Limiter
}

// RemoteOptions configures a RemoteClient.
type RemoteOptions struct {
	BaseURL  string
	Token    string
	Language string
	// RequestsPerMin throttles annotate calls; 0 disables throttling.
	RequestsPerMin int
	Timeout        time.Duration
}

// NewRemoteClient creates a rate-limited client for the annotation service.
func NewRemoteClient(opts RemoteOptions) *RemoteClient {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var limiter *rate.Limiter
	if opts.RequestsPerMin > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(opts.RequestsPerMin)/60.0), 1)
	}

	return &RemoteClient{
		baseURL:  opts.BaseURL,
		token:    opts.Token,
		language: opts.Language,
		client:   &http.Client{Timeout: timeout},
		limiter:  limiter,
	}
}

type annotateRequest struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

type annotateResponse struct {
	Tokens []Token `json:"tokens"`
}

// Annotate sends text to the annotation service and returns tagged tokens.
// Transport and non-200 failures are reported as ErrUnavailable so callers
// can distinguish "no annotator" from malformed input.
func (c *RemoteClient) Annotate(ctx context.Context, text string) ([]Token, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	payload, err := json.Marshal(annotateRequest{Text: text, Language: c.language})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+annotatePath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var decoded annotateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return decoded.Tokens, nil
}
