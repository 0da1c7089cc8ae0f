// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import "github.com/jeranaias/newsdesk-tui/internal/model"

// =============================================================================
// TEMPLATE TYPES
// =============================================================================

// TemplateListResponse is the response from GET /templates.
type TemplateListResponse struct {
	Templates []model.Template `json:"templates"`
	Count     int              `json:"count"`
}

// ModelsResponse is the response from GET /models.
type ModelsResponse struct {
	Models []ModelInfo `json:"models"`
}

// ModelInfo describes one model available to the backend.
type ModelInfo struct {
	Name       string `json:"name"`
	Size       int64  `json:"size,omitempty"`
	ModifiedAt string `json:"modified_at,omitempty"`
}

// =============================================================================
// CLASSIFICATION TYPES
// =============================================================================

// ClassifyRequest is the request body for POST /classify.
type ClassifyRequest struct {
	TemplateID string `json:"template_id"`
	NewsText   string `json:"news_text"`
}

// ClassifyResponse is the response from POST /classify. On success Result
// holds the flat field map produced by the template's tool schema; on
// failure only Error is set.
type ClassifyResponse struct {
	Success         bool              `json:"success"`
	Result          map[string]string `json:"result,omitempty"`
	Error           string            `json:"error,omitempty"`
	ResponseTimeMs  int64             `json:"response_time_ms,omitempty"`
	TokensPerSecond float64           `json:"tokens_per_second,omitempty"`
}

// BatchClassifyRequest is the request body for POST /classify/batch.
type BatchClassifyRequest struct {
	TemplateID string   `json:"template_id"`
	NewsTexts  []string `json:"news_texts"`
}

// BatchClassifyResponse is the response from POST /classify/batch.
type BatchClassifyResponse struct {
	Results []ClassifyResponse `json:"results"`
}

// =============================================================================
// CHAT TYPES
// =============================================================================

// ChatRequest is the request body for POST /chat. History carries all prior
// messages excluding the one being sent.
type ChatRequest struct {
	Message string          `json:"message"`
	History []model.Message `json:"history"`
}

// ChatResponse is the response from POST /chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// =============================================================================
// ANALYSIS TYPES
// =============================================================================

// DetectLanguageRequest is the request body for POST /detect-language.
type DetectLanguageRequest struct {
	Text string `json:"text"`
}

// DetectLanguageResponse is the response from POST /detect-language.
type DetectLanguageResponse struct {
	Language     string  `json:"language"`
	LanguageName string  `json:"language_name"`
	Confidence   float64 `json:"confidence"`
}

// SectorRequest is the request body for POST /classify-sector.
type SectorRequest struct {
	NewsText string `json:"news_text"`
}

// SectorResponse is the response from POST /classify-sector.
// ImportanceLevel runs 1..5 with 1 the most critical.
type SectorResponse struct {
	ImportanceLevel     int      `json:"importance_level"`
	ImportanceReasoning string   `json:"importance_reasoning"`
	Sector              string   `json:"sector"`
	Subsector           string   `json:"subsector"`
	Keywords            []string `json:"keywords"`
	Confidence          float64  `json:"confidence"`
}

// AnalyzeLinkRequest is the request body for POST /analyze-link.
type AnalyzeLinkRequest struct {
	URL string `json:"url"`
}

// AnalyzeLinkResponse is the response from POST /analyze-link.
type AnalyzeLinkResponse struct {
	Domain          string  `json:"domain"`
	Title           string  `json:"title"`
	Language        string  `json:"language"`
	ContentType     string  `json:"content_type"`
	City            string  `json:"city"`
	Scope           string  `json:"scope"`
	MonthlyVisitors string  `json:"monthly_visitors"`
	Confidence      float64 `json:"confidence"`
}

// =============================================================================
// REPORT TYPES
// =============================================================================

// ChartSeries is one named series in the preview chart.
type ChartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// ChartData is the label/series payload of a report preview.
type ChartData struct {
	Labels []string      `json:"labels"`
	Series []ChartSeries `json:"series"`
}

// PreviewData is the tabular summary of a report preview.
type PreviewData struct {
	SummaryTable []map[string]any `json:"summary_table"`
	Totals       map[string]any   `json:"totals"`
	ChartData    ChartData        `json:"chart_data"`
}

// PreviewResponse is the response from POST /report/preview.
type PreviewResponse struct {
	Success bool         `json:"success"`
	Data    *PreviewData `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// =============================================================================
// HEALTH TYPES
// =============================================================================

// HealthState is the status-indicator mapping of the health probe.
type HealthState int

const (
	// HealthUnreachable: the backend did not answer at all.
	HealthUnreachable HealthState = iota
	// HealthDegraded: the backend answered but its inference engine is down.
	HealthDegraded
	// HealthConnected: backend and inference engine are both up.
	HealthConnected
)

// String returns the state name for display.
func (h HealthState) String() string {
	switch h {
	case HealthConnected:
		return "connected"
	case HealthDegraded:
		return "degraded"
	default:
		return "unreachable"
	}
}

// healthResponse is the raw body of GET /health.
type healthResponse struct {
	Status string `json:"status"`
	API    string `json:"api"`
	Ollama string `json:"ollama"`
}
