package timeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customTable = `version = "%s"

[[entries]]
id = "staff_engineer_acme"
date = "2025 - Present"
title = "Staff Engineer"
organization = "Acme"
description = "Platform work."
`

func writeTable(t *testing.T, path, version string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf(customTable, version)), 0644))
}

func TestDefault(t *testing.T) {
	table := Default()
	require.Len(t, table.Entries, 4)
	assert.Equal(t, "senior_ai_engineer_google", table.Entries[0].ID)
	assert.Equal(t, "education_bgu", table.Entries[3].ID)
	assert.Equal(t, "Ben Gurion University", table.Entries[3].Organization)
	assert.NotEmpty(t, table.Version)
}

func TestHighlight(t *testing.T) {
	entries := Default().Entries

	tests := []struct {
		name string
		id   string
		want []string
	}{
		{name: "substring edu", id: "edu", want: []string{"education_bgu"}},
		{name: "exact id", id: "ai_researcher_deepmind", want: []string{"ai_researcher_deepmind"}},
		{name: "shared fragment over-highlights", id: "engineer", want: []string{"senior_ai_engineer_google", "software_engineer_microsoft"}},
		{name: "case sensitive", id: "Google", want: nil},
		{name: "empty id marks nothing", id: "", want: nil},
		{name: "no match", id: "amazon", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marked := Highlight(entries, tt.id)
			require.Len(t, marked, len(entries))

			var got []string
			for _, m := range marked {
				if m.Highlighted {
					got = append(got, m.ID)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	table, err := Load("")
	require.NoError(t, err)
	assert.Len(t, table.Entries, 4)

	path := filepath.Join(t.TempDir(), "timeline.toml")
	writeTable(t, path, "v2")

	table, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "v2", table.Version)
	require.Len(t, table.Entries, 1)
	assert.Equal(t, "Acme", table.Entries[0].Organization)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestParseRejectsInvalidTables(t *testing.T) {
	_, err := Parse([]byte(`[[entries]]
title = "no id"`))
	assert.Error(t, err)

	_, err = Parse([]byte(`[[entries]]
id = "a"
[[entries]]
id = "a"`))
	assert.Error(t, err)

	_, err = Parse([]byte(`version = `))
	assert.Error(t, err)
}

func TestStoreReloadKeepsLastGoodTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timeline.toml")
	writeTable(t, path, "v1")

	store, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, "v1", store.Version())

	require.NoError(t, os.WriteFile(path, []byte("version = "), 0644))
	assert.Error(t, store.Reload())
	assert.Equal(t, "v1", store.Version())

	writeTable(t, path, "v2")
	require.NoError(t, store.Reload())
	assert.Equal(t, "v2", store.Version())
}

func TestStoreEntriesReturnsCopy(t *testing.T) {
	store := NewStaticStore(Default())
	entries := store.Entries()
	entries[0].ID = "mutated"
	assert.Equal(t, "senior_ai_engineer_google", store.Entries()[0].ID)
}

func TestStoreWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timeline.toml")
	writeTable(t, path, "v1")

	store, err := NewStore(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- store.Watch(ctx) }()

	assert.Eventually(t, func() bool {
		// Rewrite on every poll; the first write may land before the watch is armed
		_ = os.WriteFile(path, []byte(fmt.Sprintf(customTable, "v2")), 0644)
		return store.Version() == "v2"
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatchWithoutFileReturns(t *testing.T) {
	store := NewStaticStore(Default())
	assert.NoError(t, store.Watch(context.Background()))
}

func TestDefaultTOMLParses(t *testing.T) {
	data := DefaultTOML()
	table, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default().Version, table.Version)

	data[0] = 'X'
	assert.NotEqual(t, data[0], DefaultTOML()[0], "callers get a copy")
}
