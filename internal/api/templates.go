// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/jeranaias/newsdesk-tui/internal/model"
)

// =============================================================================
// TEMPLATE OPERATIONS
// =============================================================================

// ListTemplates retrieves all prompt templates from the backend.
func (c *Client) ListTemplates(ctx context.Context) ([]model.Template, error) {
	var resp TemplateListResponse
	if err := c.call(ctx, http.MethodGet, "/templates", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Templates, nil
}

// GetTemplate retrieves a single template by id.
func (c *Client) GetTemplate(ctx context.Context, id string) (*model.Template, error) {
	var tmpl model.Template
	if err := c.call(ctx, http.MethodGet, "/templates/"+id, nil, &tmpl); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// CreateTemplate creates a template. The id is assigned by the backend and
// must be absent on the request.
func (c *Client) CreateTemplate(ctx context.Context, tmpl model.Template) (*model.Template, error) {
	tmpl.ID = ""
	var created model.Template
	if err := c.call(ctx, http.MethodPost, "/templates", tmpl, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTemplate replaces the template with the given id.
func (c *Client) UpdateTemplate(ctx context.Context, id string, tmpl model.Template) (*model.Template, error) {
	var updated model.Template
	if err := c.call(ctx, http.MethodPut, "/templates/"+id, tmpl, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTemplate removes the template with the given id.
func (c *Client) DeleteTemplate(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/templates/"+id, nil, nil)
}

// =============================================================================
// SETTINGS OPERATIONS
// =============================================================================

// GetSettings retrieves the backend's KV cache settings.
func (c *Client) GetSettings(ctx context.Context) (*model.CacheSettings, error) {
	var settings model.CacheSettings
	if err := c.call(ctx, http.MethodGet, "/settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings replaces the backend's KV cache settings. Values are
// validated locally before the exchange is attempted.
func (c *Client) UpdateSettings(ctx context.Context, settings model.CacheSettings) (*model.CacheSettings, error) {
	if !settings.CacheType.Valid() {
		return nil, NewValidationError("invalid KV cache type: " + string(settings.CacheType))
	}
	if settings.NumParallel < 1 || settings.NumParallel > 16 {
		return nil, NewValidationError("num_parallel must be between 1 and 16")
	}

	var updated model.CacheSettings
	if err := c.call(ctx, http.MethodPut, "/settings", settings, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// =============================================================================
// MODEL OPERATIONS
// =============================================================================

// ListModels retrieves the models available to the backend.
func (c *Client) ListModels(ctx context.Context) ([]ModelInfo, error) {
	var resp ModelsResponse
	if err := c.call(ctx, http.MethodGet, "/models", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Models, nil
}
