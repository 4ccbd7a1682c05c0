package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportRoundTrip(t *testing.T) {
	j, _ := openJournal(t)
	base := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	for i, after := range []string{"a", "b"} {
		_, err := j.Record(Edit{Path: "root/Name", Member: "Name", After: after, EditedAt: base.Add(time.Duration(i) * time.Second)})
		require.NoError(t, err)
	}
	edits, err := j.List(0)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "edits.jsonl")
	require.NoError(t, Export(path, edits))

	got, err := ReadExport(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].After, "export is oldest first")
	assert.Equal(t, "b", got[1].After)
	assert.Equal(t, edits[1].EditID, got[0].EditID)
	assert.True(t, base.Equal(got[0].EditedAt))
}

func TestExportReplacesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edits.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0o644))

	require.NoError(t, Export(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestReadExportSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edits.jsonl")
	content := `{"edit_id":"1","path":"r/A","after":"x","edited_at":"2026-10-16T09:00:00Z"}

not json
{"edit_id":"2","path":"r/B","after":"y","edited_at":"2026-10-16T09:00:01Z"}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := ReadExport(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "r/A", got[0].Path)
	assert.Equal(t, "r/B", got[1].Path)
}

func TestReadExportMissingFile(t *testing.T) {
	_, err := ReadExport(filepath.Join(t.TempDir(), "absent.jsonl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
