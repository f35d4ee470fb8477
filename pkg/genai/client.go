// Package genai adapts external generation APIs for the creatives pipeline:
// image generation for products without a base asset, and copywriting for
// per-product messaging.
//
// Both adapters are thin collaborators with a narrow contract. The rendering
// core never talks to them directly; the pipeline hands it already-decoded
// images and already-finalized messaging. Network retry policy is
// deliberately out of scope here.
package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Shadid12/creatives-automation/pkg/errors"
	"github.com/Shadid12/creatives-automation/pkg/observability"
)

const (
	defaultBaseURL    = "https://generativelanguage.googleapis.com"
	defaultAPIVersion = "v1beta"

	modelText  = "gemini-2.0-flash"
	modelImage = "gemini-2.0-flash-exp"
)

// Options configures a Client.
type Options struct {
	APIKey     string
	BaseURL    string
	APIVersion string
	HTTPClient *http.Client
	Logger     *log.Logger
}

// Client calls the Gemini generateContent API for text completion and image
// generation.
type Client struct {
	apiKey     string
	baseURL    string
	apiVersion string
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient creates a client with defaults applied for every unset option.
func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	apiVersion := strings.TrimSpace(opts.APIVersion)
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		apiKey:     opts.APIKey,
		baseURL:    baseURL,
		apiVersion: apiVersion,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Complete sends a text prompt and returns the model's text response.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	req := generateContentRequest{
		Contents:         []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{Temperature: 0.7},
	}

	resp, err := c.generateContent(ctx, modelText, req)
	if err != nil {
		return "", err
	}
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.Text != "" {
				return p.Text, nil
			}
		}
	}
	return "", errors.New(errors.ErrCodeGenerationFailed, "no text in model response")
}

// Generate requests an advertising image for the prompt and decodes the
// first inline image of the response. It implements ImageGenerator.
func (c *Client) Generate(ctx context.Context, prompt string) (image.Image, error) {
	req := generateContentRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"IMAGE", "TEXT"},
		},
	}

	resp, err := c.generateContent(ctx, modelImage, req)
	if err != nil {
		return nil, err
	}

	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData == nil || p.InlineData.Data == "" {
				continue
			}
			raw, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeGenerationFailed, err, "decode inline image data")
			}
			img, _, err := image.Decode(bytes.NewReader(raw))
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeGenerationFailed, err, "decode generated image (%s)", p.InlineData.MimeType)
			}
			return img, nil
		}
	}
	return nil, errors.New(errors.ErrCodeGenerationFailed, "model response contained no image")
}

func (c *Client) generateContent(ctx context.Context, model string, reqBody generateContentRequest) (*generateContentResponse, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode request")
	}

	url := fmt.Sprintf("%s/%s/models/%s:generateContent", c.baseURL, c.apiVersion, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	c.logger.Debug("calling generation API", "model", model, "bytes", len(payload))
	observability.HTTP().OnRequest(ctx, http.MethodPost, req.URL.Host, req.URL.Path)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, http.MethodPost, req.URL.Host, req.URL.Path, err)
		return nil, errors.Wrap(errors.ErrCodeGenerationFailed, err, "call %s", model)
	}
	defer resp.Body.Close()
	observability.HTTP().OnResponse(ctx, http.MethodPost, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeGenerationFailed, err, "read response from %s", model)
	}

	var out generateContentResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeGenerationFailed, err, "decode response from %s", model)
	}
	if out.Error != nil {
		return nil, errors.New(errors.ErrCodeGenerationFailed, "%s: %s (%s)", model, out.Error.Message, out.Error.Status)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.ErrCodeGenerationFailed, "%s returned HTTP %d", model, resp.StatusCode)
	}
	return &out, nil
}
