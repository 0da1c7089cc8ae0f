// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render maps service responses to display models.
//
// Everything here is a pure function: no state, no side effects, no
// styling. Responses may arrive with partial or absent fields and must
// still produce a usable display model.
package render

import (
	"sort"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/jeranaias/newsdesk-tui/internal/api"
	"github.com/jeranaias/newsdesk-tui/internal/model"
)

// placeholder stands in for fields the backend left empty.
const placeholder = "—"

// Field is one labelled display row.
type Field struct {
	Label string
	Value string
}

// =============================================================================
// CLASSIFICATION
// =============================================================================

// ClassificationDisplay is the display model of one classify exchange.
// Exactly one of Fields or Err is populated.
type ClassificationDisplay struct {
	Fields       []Field
	Err          string
	ResponseTime string
	TokensPerSec string
}

// Classification maps a classify response. Result fields come out sorted
// by label so rendering is deterministic.
func Classification(resp *api.ClassifyResponse) ClassificationDisplay {
	if resp == nil {
		return ClassificationDisplay{Err: "no response"}
	}

	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = "classification failed"
		}
		return ClassificationDisplay{Err: msg}
	}

	d := ClassificationDisplay{}
	labels := make([]string, 0, len(resp.Result))
	for k := range resp.Result {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	for _, label := range labels {
		value := resp.Result[label]
		if value == "" {
			value = placeholder
		}
		d.Fields = append(d.Fields, Field{Label: label, Value: value})
	}

	if resp.ResponseTimeMs > 0 {
		d.ResponseTime = strconv.FormatInt(resp.ResponseTimeMs, 10) + " ms"
	}
	if resp.TokensPerSecond > 0 {
		d.TokensPerSec = strconv.FormatFloat(resp.TokensPerSecond, 'f', 1, 64) + " tok/s"
	}

	return d
}

// =============================================================================
// SECTOR
// =============================================================================

// importanceLabels maps levels 1..5, level 1 being the most critical.
var importanceLabels = map[int]string{
	1: "kritik",
	2: "yüksek",
	3: "orta",
	4: "düşük",
	5: "önemsiz",
}

// Sector maps a sector classification response to display rows.
func Sector(resp *api.SectorResponse) []Field {
	if resp == nil {
		return nil
	}

	importance := placeholder
	if label, ok := importanceLabels[resp.ImportanceLevel]; ok {
		importance = strconv.Itoa(resp.ImportanceLevel) + " (" + label + ")"
	}

	fields := []Field{
		{Label: "Önem", Value: importance},
		{Label: "Sektör", Value: orPlaceholder(resp.Sector)},
		{Label: "Alt sektör", Value: orPlaceholder(resp.Subsector)},
		{Label: "Güven", Value: Confidence(resp.Confidence)},
	}

	if len(resp.Keywords) > 0 {
		keywords := resp.Keywords[0]
		for _, k := range resp.Keywords[1:] {
			keywords += ", " + k
		}
		fields = append(fields, Field{Label: "Anahtar kelimeler", Value: keywords})
	}
	if resp.ImportanceReasoning != "" {
		fields = append(fields, Field{Label: "Gerekçe", Value: resp.ImportanceReasoning})
	}

	return fields
}

// =============================================================================
// LANGUAGE DETECTION
// =============================================================================

// Language maps a detect-language response. When the backend sends only a
// language code, the display name is derived locally.
func Language(resp *api.DetectLanguageResponse) []Field {
	if resp == nil {
		return nil
	}

	name := resp.LanguageName
	if name == "" && resp.Language != "" {
		if tag, err := language.Parse(resp.Language); err == nil {
			name = display.Self.Name(tag)
		}
	}
	if name == "" {
		name = orPlaceholder(resp.Language)
	}

	return []Field{
		{Label: "Dil", Value: name},
		{Label: "Kod", Value: orPlaceholder(resp.Language)},
		{Label: "Güven", Value: Confidence(resp.Confidence)},
	}
}

// =============================================================================
// LINK ANALYSIS
// =============================================================================

// Link maps one analysis record to display rows.
func Link(rec model.LinkAnalysis) []Field {
	return []Field{
		{Label: "Alan adı", Value: orPlaceholder(rec.Domain)},
		{Label: "Başlık", Value: orPlaceholder(rec.Title)},
		{Label: "Dil", Value: orPlaceholder(rec.Language)},
		{Label: "İçerik türü", Value: orPlaceholder(rec.ContentType)},
		{Label: "Şehir", Value: orPlaceholder(rec.City)},
		{Label: "Kapsam", Value: orPlaceholder(rec.Scope)},
		{Label: "Aylık ziyaretçi", Value: orPlaceholder(rec.MonthlyVisitors)},
		{Label: "Güven", Value: Confidence(rec.Confidence)},
	}
}

// =============================================================================
// REPORT PREVIEW
// =============================================================================

// PreviewDisplay is the display model of a report preview snapshot.
type PreviewDisplay struct {
	Columns []string
	Rows    [][]string
	Totals  []string
	Chart   api.ChartData
}

// Preview maps a preview snapshot to a table display model. Column order
// is alphabetical so rows line up across renders. A nil snapshot yields a
// nil display: the view renders its empty state.
func Preview(data *api.PreviewData) *PreviewDisplay {
	if data == nil {
		return nil
	}

	columnSet := make(map[string]bool)
	for _, row := range data.SummaryTable {
		for k := range row {
			columnSet[k] = true
		}
	}
	columns := make([]string, 0, len(columnSet))
	for k := range columnSet {
		columns = append(columns, k)
	}
	sort.Strings(columns)

	d := &PreviewDisplay{Columns: columns, Chart: data.ChartData}
	for _, row := range data.SummaryTable {
		out := make([]string, len(columns))
		for i, col := range columns {
			out[i] = cellString(row[col])
		}
		d.Rows = append(d.Rows, out)
	}
	for _, col := range columns {
		d.Totals = append(d.Totals, cellString(data.Totals[col]))
	}

	return d
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// Confidence formats a 0..1 confidence as a percentage.
func Confidence(v float64) string {
	if v <= 0 {
		return placeholder
	}
	if v > 1 {
		v = 1
	}
	return strconv.Itoa(int(v*100+0.5)) + "%"
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// cellString renders one JSON table cell. Numbers arrive as float64.
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return placeholder
	case string:
		return orPlaceholder(x)
	case float64:
		if x == float64(int64(x)) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', 2, 64)
	case bool:
		if x {
			return "evet"
		}
		return "hayır"
	default:
		return placeholder
	}
}
