// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/jeranaias/newsdesk-tui/internal/model"
)

// =============================================================================
// REPORT FILES
// =============================================================================

// ReportFile is one uploaded spreadsheet handle: a name plus its content.
type ReportFile struct {
	Name    string
	Content []byte
}

// =============================================================================
// REPORT PREVIEW
// =============================================================================

// PreviewReport uploads the file set and returns the derived preview
// payload. The exchange is read-only on the backend.
func (c *Client) PreviewReport(ctx context.Context, files []ReportFile) (*PreviewData, error) {
	if len(files) == 0 {
		return nil, NewValidationError("no report files uploaded")
	}

	body, contentType, err := encodeMultipart(files, "")
	if err != nil {
		return nil, err
	}

	resp, err := c.doMultipart(ctx, "/generate-report/preview", body, contentType)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var preview PreviewResponse
	if err := json.NewDecoder(resp.Body).Decode(&preview); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode preview", Cause: err}
	}
	if !preview.Success || preview.Data == nil {
		msg := preview.Error
		if msg == "" {
			msg = "preview failed"
		}
		return nil, NewTransportError(resp.StatusCode, msg)
	}

	return preview.Data, nil
}

// =============================================================================
// REPORT GENERATION
// =============================================================================

// GenerateReport uploads the file set with the chosen layout and returns
// the final spreadsheet as a binary stream.
func (c *Client) GenerateReport(ctx context.Context, files []ReportFile, layout string) ([]byte, error) {
	if len(files) == 0 {
		return nil, NewValidationError("no report files uploaded")
	}

	body, contentType, err := encodeMultipart(files, layout)
	if err != nil {
		return nil, err
	}

	resp, err := c.doMultipart(ctx, "/generate-report", body, contentType)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError("failed to read report stream", err)
	}
	return data, nil
}

// =============================================================================
// LINK ANALYSIS EXPORT
// =============================================================================

// ExportLinkAnalyses sends the full (uncapped) analysis history and returns
// the exported spreadsheet as a binary stream.
func (c *Client) ExportLinkAnalyses(ctx context.Context, analyses []model.LinkAnalysis) ([]byte, error) {
	if len(analyses) == 0 {
		return nil, NewValidationError("no analyses to export")
	}

	payload := struct {
		Analyses []model.LinkAnalysis `json:"analyses"`
	}{Analyses: analyses}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.config.BaseURL+"/export-link-analysis", bytes.NewReader(data))
	if err != nil {
		return nil, NewNetworkError("failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, NewNetworkError("request timed out", err)
		}
		return nil, NewNetworkError("backend unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, NewTransportError(resp.StatusCode, readErrorDetail(resp))
	}

	return io.ReadAll(resp.Body)
}

// =============================================================================
// MULTIPART HELPERS
// =============================================================================

// encodeMultipart builds a multipart form body from the file set, with an
// optional layout field.
func encodeMultipart(files []ReportFile, layout string) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, f := range files {
		part, err := writer.CreateFormFile("files", f.Name)
		if err != nil {
			return nil, "", NewNetworkError("failed to encode upload", err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, "", NewNetworkError("failed to encode upload", err)
		}
	}

	if layout != "" {
		if err := writer.WriteField("layout", layout); err != nil {
			return nil, "", NewNetworkError("failed to encode upload", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", NewNetworkError("failed to encode upload", err)
	}

	return body, writer.FormDataContentType(), nil
}

// doMultipart posts a multipart body and returns the raw response. The
// caller owns the body.
func (c *Client) doMultipart(ctx context.Context, path string, body *bytes.Buffer, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, body)
	if err != nil {
		return nil, NewNetworkError("failed to create request", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, NewNetworkError("request timed out", err)
		}
		return nil, NewNetworkError("backend unreachable", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, NewTransportError(resp.StatusCode, readErrorDetail(resp))
	}

	return resp, nil
}
