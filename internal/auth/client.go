package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dravidKumar007/hair-Cut-Model/internal/infra"
)

// Options controls how the auth-provider client is configured.
type Options struct {
	BaseURL    string
	PublicKey  string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Client exchanges one-time authorization codes for provider sessions.
type Client struct {
	baseURL    string
	publicKey  string
	httpClient *http.Client
	logger     *infra.Logger
}

// Session is the provider session returned by a successful code exchange.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

type exchangeRequest struct {
	AuthCode string `json:"auth_code"`
}

type exchangeError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
}

func (e exchangeError) message() string {
	switch {
	case e.ErrorDescription != "":
		return e.ErrorDescription
	case e.Msg != "":
		return e.Msg
	default:
		return e.Error
	}
}

// NewClient constructs an auth client. Callers may provide a nil HTTP
// client; one with sensible timeouts will be created.
func NewClient(opts Options) *Client {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		publicKey:  strings.TrimSpace(opts.PublicKey),
		httpClient: client,
		logger:     logger,
	}
}

// ExchangeCode trades the one-time authorization code for a session.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*Session, error) {
	body, err := json.Marshal(exchangeRequest{AuthCode: code})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := c.baseURL + "/auth/v1/token?grant_type=authorization_code"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.publicKey != "" {
		req.Header.Set("apikey", c.publicKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr exchangeError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.message() != "" {
			return nil, fmt.Errorf("code exchange failed: %s", apiErr.message())
		}
		return nil, fmt.Errorf("code exchange failed: status %d", resp.StatusCode)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if session.AccessToken == "" {
		return nil, fmt.Errorf("code exchange returned no session")
	}

	c.logger.Debug().Msg("auth: code exchanged for session")
	return &session, nil
}
