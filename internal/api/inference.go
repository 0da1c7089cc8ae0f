// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/jeranaias/newsdesk-tui/internal/model"
)

// =============================================================================
// CLASSIFICATION
// =============================================================================

// Classify submits one news text for classification under a template.
func (c *Client) Classify(ctx context.Context, templateID, newsText string) (*ClassifyResponse, error) {
	if strings.TrimSpace(newsText) == "" {
		return nil, NewValidationError("news text is empty")
	}
	if templateID == "" {
		return nil, NewValidationError("no template selected")
	}

	var resp ClassifyResponse
	err := c.call(ctx, http.MethodPost, "/classify",
		ClassifyRequest{TemplateID: templateID, NewsText: newsText}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ClassifyBatch submits several news texts in one exchange. Per-item
// failures come back inside the result list, not as a call error.
func (c *Client) ClassifyBatch(ctx context.Context, templateID string, newsTexts []string) ([]ClassifyResponse, error) {
	if len(newsTexts) == 0 {
		return nil, NewValidationError("no news texts provided")
	}
	if templateID == "" {
		return nil, NewValidationError("no template selected")
	}

	var resp BatchClassifyResponse
	err := c.call(ctx, http.MethodPost, "/classify/batch",
		BatchClassifyRequest{TemplateID: templateID, NewsTexts: newsTexts}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// =============================================================================
// CHAT
// =============================================================================

// Chat sends a chat message with the prior conversation history. The
// history must exclude the message being sent.
func (c *Client) Chat(ctx context.Context, message string, history []model.Message) (*ChatResponse, error) {
	if strings.TrimSpace(message) == "" {
		return nil, NewValidationError("message is empty")
	}

	if history == nil {
		history = []model.Message{}
	}

	var resp ChatResponse
	err := c.call(ctx, http.MethodPost, "/chat",
		ChatRequest{Message: message, History: history}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// =============================================================================
// LANGUAGE & SECTOR ANALYSIS
// =============================================================================

// DetectLanguage identifies the language of a text.
func (c *Client) DetectLanguage(ctx context.Context, text string) (*DetectLanguageResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, NewValidationError("text is empty")
	}

	var resp DetectLanguageResponse
	err := c.call(ctx, http.MethodPost, "/detect-language",
		DetectLanguageRequest{Text: text}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ClassifySector tags a news text with sector and importance level.
func (c *Client) ClassifySector(ctx context.Context, newsText string) (*SectorResponse, error) {
	if strings.TrimSpace(newsText) == "" {
		return nil, NewValidationError("news text is empty")
	}

	var resp SectorResponse
	err := c.call(ctx, http.MethodPost, "/classify-sector",
		SectorRequest{NewsText: newsText}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// =============================================================================
// LINK ANALYSIS
// =============================================================================

// AnalyzeLink analyzes a URL. The URL must parse and carry an http or
// https scheme; anything else is rejected before the exchange.
func (c *Client) AnalyzeLink(ctx context.Context, rawURL string) (*AnalyzeLinkResponse, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, NewValidationError("URL is empty")
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, NewValidationError("invalid URL: " + rawURL)
	}

	var resp AnalyzeLinkResponse
	err = c.call(ctx, http.MethodPost, "/analyze-link",
		AnalyzeLinkRequest{URL: rawURL}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// =============================================================================
// HEALTH PROBE
// =============================================================================

// CheckHealth probes the backend status endpoint and maps the response to
// a display state. Probe failures are a state, not an error: the indicator
// always has something to show.
func (c *Client) CheckHealth(ctx context.Context) HealthState {
	ctx, cancel := context.WithTimeout(ctx, c.config.HealthTimeout)
	defer cancel()

	var resp healthResponse
	if err := c.call(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return HealthUnreachable
	}

	if resp.Status == "healthy" {
		return HealthConnected
	}
	return HealthDegraded
}
