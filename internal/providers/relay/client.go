package relay

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dravidKumar007/hair-Cut-Model/internal/capture"
	"github.com/dravidKumar007/hair-Cut-Model/internal/domain"
	"github.com/dravidKumar007/hair-Cut-Model/internal/infra"
)

// Options controls how the relay client is configured.
type Options struct {
	BaseURL    string
	PublicKey  string
	Function   string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Client invokes the auth provider's named server-side function, which
// forwards the photo and instruction to the generative-image service and
// normalizes its response.
type Client struct {
	baseURL    string
	publicKey  string
	function   string
	httpClient *http.Client
	logger     *infra.Logger
}

type invokeRequest struct {
	Base64Image string `json:"base64Image"`
	MimeType    string `json:"mimeType"`
	Prompt      string `json:"prompt"`
}

type invokeResponse struct {
	Data *struct {
		Image string `json:"image"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewClient constructs a relay client. Callers may provide a nil HTTP client;
// one with sensible timeouts will be created.
func NewClient(opts Options) *Client {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}

	function := strings.TrimSpace(opts.Function)
	if function == "" {
		function = "gemini-function"
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
		function:   function,
		httpClient: client,
		logger:     logger,
	}
}

// Transform invokes the relay function and returns the edited image as the
// data URI the function already produced.
func (c *Client) Transform(ctx context.Context, img capture.SelectedImage, instruction string) (string, error) {
	body, err := json.Marshal(invokeRequest{
		Base64Image: base64.StdEncoding.EncodeToString(img.Data),
		MimeType:    img.MIME,
		Prompt:      instruction,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := c.baseURL + "/functions/v1/" + c.function
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.publicKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.publicKey)
		req.Header.Set("apikey", c.publicKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("invoke %s: %w", c.function, err)
	}
	defer resp.Body.Close()

	var parsed invokeResponse
	if resp.StatusCode >= http.StatusBadRequest {
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err == nil && parsed.Error != nil && parsed.Error.Message != "" {
			return "", errors.New(parsed.Error.Message)
		}
		return "", fmt.Errorf("%s status %d", c.function, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode %s response: %w", c.function, err)
	}

	if parsed.Error != nil && parsed.Error.Message != "" {
		return "", errors.New(parsed.Error.Message)
	}
	if parsed.Data == nil || parsed.Data.Image == "" {
		return "", domain.ErrNoImageReturned
	}

	c.logger.Debug().Str("function", c.function).Msg("relay: received image")
	return parsed.Data.Image, nil
}
