// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"testing"

	"github.com/jeranaias/newsdesk-tui/internal/api"
	"github.com/jeranaias/newsdesk-tui/internal/model"
)

func TestClassificationSuccess(t *testing.T) {
	d := Classification(&api.ClassifyResponse{
		Success:         true,
		Result:          map[string]string{"Kategori": "Ekonomi"},
		ResponseTimeMs:  120,
		TokensPerSecond: 15.2,
	})

	if d.Err != "" {
		t.Fatalf("unexpected error state: %q", d.Err)
	}
	if len(d.Fields) != 1 {
		t.Fatalf("got %d fields, want 1", len(d.Fields))
	}
	if d.Fields[0].Label != "Kategori" || d.Fields[0].Value != "Ekonomi" {
		t.Errorf("field = %+v, want Kategori → Ekonomi", d.Fields[0])
	}
	if d.ResponseTime != "120 ms" {
		t.Errorf("ResponseTime = %q", d.ResponseTime)
	}
	if d.TokensPerSec != "15.2 tok/s" {
		t.Errorf("TokensPerSec = %q", d.TokensPerSec)
	}
}

func TestClassificationFailure(t *testing.T) {
	d := Classification(&api.ClassifyResponse{
		Success: false,
		Error:   "model timeout",
	})

	if d.Err != "model timeout" {
		t.Errorf("Err = %q, want %q", d.Err, "model timeout")
	}
	if len(d.Fields) != 0 {
		t.Errorf("failure must not produce fields: %+v", d.Fields)
	}
}

func TestClassificationFieldsSorted(t *testing.T) {
	d := Classification(&api.ClassifyResponse{
		Success: true,
		Result: map[string]string{
			"Kategori": "Ekonomi",
			"Dil":      "Türkçe",
			"Özet":     "",
		},
	})

	if len(d.Fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(d.Fields))
	}
	if d.Fields[0].Label != "Dil" || d.Fields[1].Label != "Kategori" {
		t.Errorf("fields not sorted: %+v", d.Fields)
	}
	// Empty values render as placeholder, not as empty strings.
	if d.Fields[2].Value != "—" {
		t.Errorf("empty value = %q, want placeholder", d.Fields[2].Value)
	}
}

func TestClassificationPartialStats(t *testing.T) {
	d := Classification(&api.ClassifyResponse{
		Success: true,
		Result:  map[string]string{"Kategori": "Spor"},
	})
	if d.ResponseTime != "" || d.TokensPerSec != "" {
		t.Errorf("absent stats should stay empty: %q %q", d.ResponseTime, d.TokensPerSec)
	}
}

func TestSectorImportanceLabel(t *testing.T) {
	fields := Sector(&api.SectorResponse{
		ImportanceLevel: 1,
		Sector:          "Enerji",
		Confidence:      0.8,
		Keywords:        []string{"doğalgaz", "boru hattı"},
	})

	if fields[0].Value != "1 (kritik)" {
		t.Errorf("importance = %q, want %q", fields[0].Value, "1 (kritik)")
	}
	if fields[1].Value != "Enerji" {
		t.Errorf("sector = %q", fields[1].Value)
	}

	var keywords string
	for _, f := range fields {
		if f.Label == "Anahtar kelimeler" {
			keywords = f.Value
		}
	}
	if keywords != "doğalgaz, boru hattı" {
		t.Errorf("keywords = %q", keywords)
	}
}

func TestSectorOutOfRangeImportance(t *testing.T) {
	fields := Sector(&api.SectorResponse{ImportanceLevel: 0})
	if fields[0].Value != "—" {
		t.Errorf("importance = %q, want placeholder", fields[0].Value)
	}
}

func TestLanguageNameFromBackend(t *testing.T) {
	fields := Language(&api.DetectLanguageResponse{
		Language:     "tr",
		LanguageName: "Türkçe",
		Confidence:   0.97,
	})

	if fields[0].Value != "Türkçe" {
		t.Errorf("name = %q", fields[0].Value)
	}
	if fields[2].Value != "97%" {
		t.Errorf("confidence = %q", fields[2].Value)
	}
}

func TestLanguageNameDerivedFromCode(t *testing.T) {
	fields := Language(&api.DetectLanguageResponse{
		Language:   "tr",
		Confidence: 0.9,
	})
	// Name derived locally when the backend only sends a code.
	if fields[0].Value != "Türkçe" {
		t.Errorf("name = %q, want Türkçe", fields[0].Value)
	}
}

func TestLinkPartialFields(t *testing.T) {
	rec := model.LinkAnalysis{
		Domain:     "example.com",
		Confidence: 0.5,
	}
	fields := Link(rec)

	if fields[0].Value != "example.com" {
		t.Errorf("domain = %q", fields[0].Value)
	}
	// Absent fields render as placeholder rather than empty cells.
	for _, f := range fields[1:7] {
		if f.Value != "—" {
			t.Errorf("%s = %q, want placeholder", f.Label, f.Value)
		}
	}
	if fields[7].Value != "50%" {
		t.Errorf("confidence = %q", fields[7].Value)
	}
}

func TestPreviewNilSnapshot(t *testing.T) {
	if Preview(nil) != nil {
		t.Error("nil snapshot must yield nil display")
	}
}

func TestPreviewTable(t *testing.T) {
	d := Preview(&api.PreviewData{
		SummaryTable: []map[string]any{
			{"ay": "Ocak", "toplam": 42.0},
			{"ay": "Şubat"}, // missing column
		},
		Totals: map[string]any{"toplam": 42.0},
	})

	if len(d.Columns) != 2 || d.Columns[0] != "ay" || d.Columns[1] != "toplam" {
		t.Fatalf("columns = %v", d.Columns)
	}
	if d.Rows[0][1] != "42" {
		t.Errorf("cell = %q, want 42", d.Rows[0][1])
	}
	if d.Rows[1][1] != "—" {
		t.Errorf("missing cell = %q, want placeholder", d.Rows[1][1])
	}
	if d.Totals[0] != "—" || d.Totals[1] != "42" {
		t.Errorf("totals = %v", d.Totals)
	}
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "—"},
		{0.5, "50%"},
		{0.974, "97%"},
		{1, "100%"},
		{1.5, "100%"},
	}
	for _, tt := range tests {
		if got := Confidence(tt.in); got != tt.want {
			t.Errorf("Confidence(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
