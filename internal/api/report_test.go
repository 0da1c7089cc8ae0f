// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/newsdesk-tui/internal/model"
)

func TestPreviewReport(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/generate-report/preview", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		files := r.MultipartForm.File["files"]
		require.Len(t, files, 2)
		assert.Equal(t, "ocak.xlsx", files[0].Filename)
		assert.Equal(t, "şubat.xlsx", files[1].Filename)

		json.NewEncoder(w).Encode(PreviewResponse{
			Success: true,
			Data: &PreviewData{
				SummaryTable: []map[string]any{{"ay": "Ocak", "toplam": 42.0}},
				Totals:       map[string]any{"toplam": 42.0},
				ChartData: ChartData{
					Labels: []string{"Ocak"},
					Series: []ChartSeries{{Name: "toplam", Values: []float64{42}}},
				},
			},
		})
	}))

	data, err := client.PreviewReport(context.Background(), []ReportFile{
		{Name: "ocak.xlsx", Content: []byte("a")},
		{Name: "şubat.xlsx", Content: []byte("b")},
	})
	require.NoError(t, err)
	require.Len(t, data.SummaryTable, 1)
	assert.Equal(t, []string{"Ocak"}, data.ChartData.Labels)
}

func TestPreviewReportEmptySet(t *testing.T) {
	client := NewClient()
	_, err := client.PreviewReport(context.Background(), nil)
	assert.True(t, IsValidation(err))
}

func TestPreviewReportBackendFailure(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(PreviewResponse{Success: false, Error: "unsupported sheet"})
	}))

	_, err := client.PreviewReport(context.Background(), []ReportFile{
		{Name: "bozuk.xlsx", Content: []byte("x")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported sheet")
}

func TestGenerateReportSendsLayout(t *testing.T) {
	report := []byte("PK\x03\x04 fake xlsx bytes")
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/generate-report", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "modern", r.FormValue("layout"))
		w.Write(report)
	}))

	data, err := client.GenerateReport(context.Background(), []ReportFile{
		{Name: "ocak.xlsx", Content: []byte("a")},
	}, "modern")
	require.NoError(t, err)
	assert.Equal(t, report, data)
}

func TestExportLinkAnalysesSendsFullHistory(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/export-link-analysis", r.URL.Path)

		var payload struct {
			Analyses []model.LinkAnalysis `json:"analyses"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Len(t, payload.Analyses, 12)

		w.Write([]byte("spreadsheet"))
	}))

	analyses := make([]model.LinkAnalysis, 12)
	for i := range analyses {
		analyses[i] = model.NewLinkAnalysis("https://example.com")
	}

	data, err := client.ExportLinkAnalyses(context.Background(), analyses)
	require.NoError(t, err)
	assert.Equal(t, []byte("spreadsheet"), data)
}

func TestExportLinkAnalysesEmpty(t *testing.T) {
	client := NewClient()
	_, err := client.ExportLinkAnalyses(context.Background(), nil)
	assert.True(t, IsValidation(err))
}
