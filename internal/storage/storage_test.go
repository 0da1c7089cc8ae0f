// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/newsdesk-tui/internal/model"
)

func TestKVStoreRoundTrip(t *testing.T) {
	store, err := NewKVStoreWithDir(t.TempDir())
	require.NoError(t, err)

	first := model.NewChatSession()
	first.Append(model.NewUserMessage("ekonomi haberleri"))
	first.Append(model.NewAssistantMessage("İşte sınıflandırma sonucu."))

	second := model.NewChatSession()
	second.Append(model.NewUserMessage("spor haberleri"))

	snap := &SessionSnapshot{
		ActiveID: second.ID,
		Sessions: []*model.ChatSession{second, first},
	}
	require.NoError(t, store.SaveSessions(snap))

	loaded, err := store.LoadSessions()
	require.NoError(t, err)

	assert.Equal(t, second.ID, loaded.ActiveID)
	require.Len(t, loaded.Sessions, 2)
	assert.Equal(t, second.ID, loaded.Sessions[0].ID)
	assert.Equal(t, "spor haberleri", loaded.Sessions[0].Title)
	require.Len(t, loaded.Sessions[1].History, 2)
	assert.Equal(t, model.RoleUser, loaded.Sessions[1].History[0].Role)
	assert.Equal(t, "ekonomi haberleri", loaded.Sessions[1].History[0].Content)
}

func TestKVStoreMissingFile(t *testing.T) {
	store, err := NewKVStoreWithDir(t.TempDir())
	require.NoError(t, err)

	snap, err := store.LoadSessions()
	require.NoError(t, err)
	assert.Empty(t, snap.Sessions)
	assert.Empty(t, snap.ActiveID)
}

func TestKVStoreCorruptedFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewKVStoreWithDir(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, SessionsKey+".json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	snap, err := store.LoadSessions()
	require.NoError(t, err)
	assert.Empty(t, snap.Sessions)
}

func TestKVStoreClear(t *testing.T) {
	store, err := NewKVStoreWithDir(t.TempDir())
	require.NoError(t, err)

	s := model.NewChatSession()
	s.Append(model.NewUserMessage("silinecek"))
	require.NoError(t, store.SaveSessions(&SessionSnapshot{
		ActiveID: s.ID,
		Sessions: []*model.ChatSession{s},
	}))

	require.NoError(t, store.Clear())
	// Clearing twice must not fail.
	require.NoError(t, store.Clear())

	snap, err := store.LoadSessions()
	require.NoError(t, err)
	assert.Empty(t, snap.Sessions)
}

func TestLinkArchiveInsertAndRecent(t *testing.T) {
	archive, err := OpenLinkArchive(filepath.Join(t.TempDir(), "links.db"))
	require.NoError(t, err)
	defer archive.Close()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 12; i++ {
		rec := model.NewLinkAnalysis("https://example.com/haber")
		rec.Domain = "example.com"
		rec.Language = "Türkçe"
		rec.Confidence = 0.9
		rec.AnalyzedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, archive.Insert(rec))
	}

	recent, err := archive.Recent(10)
	require.NoError(t, err)
	require.Len(t, recent, 10)

	// Newest first.
	for i := 1; i < len(recent); i++ {
		assert.True(t, !recent[i].AnalyzedAt.After(recent[i-1].AnalyzedAt),
			"records out of order at index %d", i)
	}

	all, err := archive.All()
	require.NoError(t, err)
	assert.Len(t, all, 12)

	n, err := archive.Count()
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestLinkArchiveFieldsRoundTrip(t *testing.T) {
	archive, err := OpenLinkArchive(filepath.Join(t.TempDir(), "links.db"))
	require.NoError(t, err)
	defer archive.Close()

	rec := model.NewLinkAnalysis("https://sondakika.example.com/gündem/1")
	rec.Domain = "sondakika.example.com"
	rec.Title = "Gündem haberi"
	rec.Language = "Türkçe"
	rec.ContentType = "haber"
	rec.City = "İstanbul"
	rec.Scope = "ulusal"
	rec.MonthlyVisitors = "1M-5M"
	rec.Confidence = 0.87
	require.NoError(t, archive.Insert(rec))

	all, err := archive.All()
	require.NoError(t, err)
	require.Len(t, all, 1)

	got := all[0]
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.URL, got.URL)
	assert.Equal(t, "İstanbul", got.City)
	assert.Equal(t, "ulusal", got.Scope)
	assert.Equal(t, "1M-5M", got.MonthlyVisitors)
	assert.InDelta(t, 0.87, got.Confidence, 1e-9)
}
