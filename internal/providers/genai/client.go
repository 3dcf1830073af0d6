package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dravidKumar007/hair-Cut-Model/internal/capture"
	"github.com/dravidKumar007/hair-Cut-Model/internal/domain"
	"github.com/dravidKumar007/hair-Cut-Model/internal/infra"
)

// Options controls how the Gemini client is configured.
type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Client calls the Gemini generateContent endpoint directly with the photo
// inlined and a single text instruction, asking for an image modality back.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *infra.Logger
}

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	InlineData *inlineData `json:"inline_data,omitempty"`
	Text       string      `json:"text,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type,omitempty"`
	Data     string `json:"data,omitempty"`
}

type generationConfig struct {
	ResponseModalities []string `json:"responseModalities"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content responseContent `json:"content"`
}

type responseContent struct {
	Parts []responsePart `json:"parts"`
}

// responsePart accepts both historical namings of the inline-image field.
// Newer API revisions emit camelCase, older ones snake_case; callers only
// ever see the canonical InlineImage produced by inline().
type responsePart struct {
	Text        string          `json:"text,omitempty"`
	InlineSnake *responseInline `json:"inline_data,omitempty"`
	InlineCamel *responseInline `json:"inlineData,omitempty"`
}

type responseInline struct {
	MimeSnake string `json:"mime_type,omitempty"`
	MimeCamel string `json:"mimeType,omitempty"`
	Data      string `json:"data,omitempty"`
}

// InlineImage is the canonical shape an inline response part is normalized
// into at the decode boundary.
type InlineImage struct {
	MIME string
	Data string
}

func (p responsePart) inline() *InlineImage {
	raw := p.InlineSnake
	if raw == nil {
		raw = p.InlineCamel
	}
	if raw == nil || raw.Data == "" {
		return nil
	}
	mime := raw.MimeSnake
	if mime == "" {
		mime = raw.MimeCamel
	}
	if mime == "" {
		mime = "image/png"
	}
	return &InlineImage{MIME: mime, Data: raw.Data}
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code,omitempty"`
		Message string `json:"message,omitempty"`
	} `json:"error"`
}

// NewClient constructs a Gemini client with sane defaults. Callers may provide
// a nil HTTP client; a reusable one with sensible timeouts will be created.
func NewClient(opts Options) *Client {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	model := opts.Model
	if model == "" {
		model = "gemini-2.5-flash-image-preview"
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
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		model:      model,
		httpClient: client,
		logger:     logger,
	}
}

// Model returns the configured Gemini model identifier.
func (c *Client) Model() string {
	return c.model
}

// Transform sends the photo and instruction to Gemini and returns the edited
// image as a data URI. It fails fast when no API key is configured and makes
// exactly one attempt.
func (c *Client) Transform(ctx context.Context, img capture.SelectedImage, instruction string) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrNoAPIKey
	}

	payload := generateContentRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{InlineData: &inlineData{
					MimeType: img.MIME,
					Data:     base64.StdEncoding.EncodeToString(img.Data),
				}},
				{Text: instruction},
			},
		}},
		GenerationConfig: generationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	}

	var response generateContentResponse
	path := fmt.Sprintf("/models/%s:generateContent", url.PathEscape(c.model))
	if err := c.invoke(ctx, path, payload, &response); err != nil {
		return "", err
	}

	for _, cand := range response.Candidates {
		for _, p := range cand.Content.Parts {
			if inl := p.inline(); inl != nil {
				c.logger.Debug().
					Str("model", c.model).
					Str("mime", inl.MIME).
					Msg("genai: received inline image")
				return "data:" + inl.MIME + ";base64," + inl.Data, nil
			}
		}
	}

	return "", domain.ErrNoImageReturned
}

func (c *Client) invoke(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("invoke gemini: %w", err)
	}
	defer resp.Body.Close()

	// Read the body once up front so a failed JSON decode can still surface
	// a plain-text error body.
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read gemini response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr apiErrorResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("gemini status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		if body := strings.TrimSpace(string(data)); body != "" {
			return fmt.Errorf("gemini status %d: %s", resp.StatusCode, body)
		}
		return fmt.Errorf("gemini status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode gemini response: %w", err)
	}
	return nil
}
