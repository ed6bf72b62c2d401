// Package enhance wraps the external image enhancement service. The rest
// of the application treats it as opaque: an image and an instruction go
// in, an enhanced image comes out. Nothing here touches progress state.
package enhance

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/carlamendes/bloom/internal/keyring"
	"github.com/carlamendes/bloom/internal/logger"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash-image:generateContent"
	apiKeyEnvVar   = "BLOOM_ENHANCE_API_KEY"
	requestTimeout = 60 * time.Second
)

// ErrNoAPIKey is returned when neither the keyring nor the environment
// provides an API key.
var ErrNoAPIKey = errors.New("no enhancement API key configured, run 'bloom keyring set'")

// Enhancer produces an enhanced image from an input image and a free-form
// instruction. A failed enhancement returns an error and no partial result.
type Enhancer interface {
	Enhance(ctx context.Context, image []byte, mimeType, instruction string) ([]byte, error)
}

// Client calls a Gemini-style REST endpoint.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient resolves the API key from the OS keyring, falling back to the
// environment. Returns ErrNoAPIKey when neither is configured.
func NewClient() (*Client, error) {
	key, err := keyring.GetAPIKey()
	if err != nil {
		if envKey := os.Getenv(apiKeyEnvVar); envKey != "" {
			key = envKey
		} else {
			return nil, ErrNoAPIKey
		}
	}

	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  key,
		http:    &http.Client{Timeout: requestTimeout},
	}, nil
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Enhance sends the image and instruction to the service and returns the
// first image the service produced.
func (c *Client) Enhance(ctx context.Context, image []byte, mimeType, instruction string) ([]byte, error) {
	reqBody := generateRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
				{Text: instruction},
			},
		}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode enhancement request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("enhancement request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Enhancement service returned non-OK status", "status", resp.StatusCode)
		return nil, fmt.Errorf("enhancement service returned status %d", resp.StatusCode)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode enhancement response: %w", err)
	}

	for _, cand := range result.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
				if err != nil {
					return nil, fmt.Errorf("failed to decode enhanced image: %w", err)
				}
				return data, nil
			}
		}
	}

	return nil, errors.New("enhancement service returned no image")
}
