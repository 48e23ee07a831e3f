// SPDX-License-Identifier: GPL-3.0-or-later

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"github.com/sapan15/Omni-IP-Scanner/internal/logger"
	"github.com/sapan15/Omni-IP-Scanner/pkg/device"
)

// HTTPClient implements Client against an OpenAI compatible
// chat-completions endpoint
type HTTPClient struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        logger.Logger
}

// HTTPClientOption mutates an HTTPClient during construction
type HTTPClientOption = func(c *HTTPClient)

// WithHTTPTransport overrides the underlying http client (used in tests)
func WithHTTPTransport(hc *http.Client) HTTPClientOption {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// WithRateLimit throttles requests to the given requests per second
func WithRateLimit(rps float64) HTTPClientOption {
	return func(c *HTTPClient) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewHTTPClient returns a Client talking to baseURL with the given model
func NewHTTPClient(baseURL, model, apiKey string, options ...HTTPClientOption) *HTTPClient {
	client := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
		limiter:    rate.NewLimiter(rate.Limit(1), 1),
		log:        logger.New(),
	}

	for _, o := range options {
		o(client)
	}

	return client
}

// FingerprintDevice asks the model for an OS guess, falling back to
// Unknown on any failure
func (c *HTTPClient) FingerprintDevice(ctx context.Context, d device.Device) *Fingerprint {
	content, err := c.complete(ctx, fingerprintPrompt(d))

	if err != nil {
		c.log.Error().Err(err).Str("ip", d.IP).Msg("fingerprint request failed")
		fp := fallbackFingerprint
		return &fp
	}

	fp, err := parseFingerprint(content)

	if err != nil {
		c.log.Error().Err(err).Str("ip", d.IP).Msg("fingerprint response unparseable")
		fp := fallbackFingerprint
		return &fp
	}

	return fp
}

// DeepProbe asks the model to fabricate output for a probe command,
// falling back to a canned timeout line on any failure
func (c *HTTPClient) DeepProbe(
	ctx context.Context,
	d device.Device,
	history []string,
	command string,
) string {
	content, err := c.complete(ctx, probePrompt(d, history, command))

	if err != nil {
		c.log.Error().Err(err).Str("ip", d.IP).Msg("probe request failed")
		return fallbackProbeOutput
	}

	return content
}

// GenerateAudit asks the model for a free-text audit of the inventory,
// falling back to a canned report on any failure
func (c *HTTPClient) GenerateAudit(ctx context.Context, devices []device.Device) string {
	content, err := c.complete(ctx, auditPrompt(devices))

	if err != nil {
		c.log.Error().Err(err).Msg("audit request failed")
		return fallbackAudit
	}

	return content
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *HTTPClient) complete(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	})

	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v1/chat/completions",
		bytes.NewReader(body),
	)

	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)

	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("completion endpoint returned %d: %s", resp.StatusCode, detail)
	}

	out := chatResponse{}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}

	if len(out.Choices) == 0 {
		return "", errors.New("completion response contained no choices")
	}

	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

// parseFingerprint tolerates models that wrap the JSON object in code
// fences or surrounding prose
func parseFingerprint(content string) (*Fingerprint, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")

	if start == -1 || end == -1 || end < start {
		return nil, errors.New("no json object in response")
	}

	fp := &Fingerprint{}

	if err := json.Unmarshal([]byte(content[start:end+1]), fp); err != nil {
		return nil, err
	}

	if fp.OS == "" {
		return nil, errors.New("fingerprint response missing os field")
	}

	return fp, nil
}
