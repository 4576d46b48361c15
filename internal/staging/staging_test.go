package staging

import (
	"os"
	"path/filepath"
	"testing"

	"go-aisociety-jobs/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	path := Path(t.TempDir(), "academic")

	file := &models.SourceFile{
		Jobs: []models.Job{
			{Title: "AI Ethics Fellow", Company: "MIT", SourceURL: "http://x/1", RelevanceScore: 85, Tags: []string{"AI", "Ethics"}},
		},
		Metadata: models.SourceMetadata{TotalJobs: 1, Source: "academic"},
	}
	require.NoError(t, Save(path, file))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, file.Jobs, loaded.Jobs)
	assert.Equal(t, "academic", loaded.Metadata.Source)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope_jobs.json"))
	assert.Error(t, err)
}

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad_jobs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestWriteJSONReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	require.NoError(t, WriteJSON(path, map[string]int{"a": 1}))
	require.NoError(t, WriteJSON(path, map[string]int{"a": 2}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 2}`, string(data))

	//no temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteJSONCreatesDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")
	require.NoError(t, WriteJSON(path, []string{"x"}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
