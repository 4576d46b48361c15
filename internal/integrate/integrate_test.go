package integrate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-aisociety-jobs/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 8, 31, 6, 0, 0, 0, time.UTC)

func TestBuildCrossSourceDedup(t *testing.T) {
	academic := SourceData{
		Name: "academic",
		Jobs: []models.Job{
			{Title: "AI Ethics Fellow", Company: "MIT", SourceURL: "http://x/1", SourceSite: "academic_jobs_online", RelevanceScore: 60},
		},
	}
	linkedin := SourceData{
		Name: "linkedin",
		Jobs: []models.Job{
			{Title: "AI Ethics Fellow", Company: "MIT", SourceURL: "http://x/1", SourceSite: "linkedin", RelevanceScore: 90},
		},
	}

	dataset := Build([]SourceData{academic, linkedin}, now)

	//exactly one record survives, from the source processed first
	require.Len(t, dataset.Jobs, 1)
	assert.Equal(t, "academic_jobs_online", dataset.Jobs[0].SourceSite)
	assert.Equal(t, 1, dataset.Stats.DuplicatesRemoved)
	assert.Equal(t, map[string]int{"academic": 1, "linkedin": 1}, dataset.Stats.Sources)
	assert.Equal(t, []string{"academic", "linkedin"}, dataset.Metadata.SourcesIntegrated)
}

func TestBuildRanksOutput(t *testing.T) {
	src := SourceData{
		Name: "rss",
		Jobs: []models.Job{
			{Title: "low", SourceURL: "http://x/1", RelevanceScore: 40},
			{Title: "high", SourceURL: "http://x/2", RelevanceScore: 95},
			{Title: "mid", SourceURL: "http://x/3", RelevanceScore: 60},
		},
	}

	dataset := Build([]SourceData{src}, now)

	require.Len(t, dataset.Jobs, 3)
	assert.Equal(t, "high", dataset.Jobs[0].Title)
	assert.Equal(t, "mid", dataset.Jobs[1].Title)
	assert.Equal(t, "low", dataset.Jobs[2].Title)
}

func TestBuildEmptySources(t *testing.T) {
	sources := []SourceData{
		{Name: "academic", Note: "no staging data for academic"},
		{Name: "rss"},
		{Name: "linkedin"},
	}

	dataset := Build(sources, now)

	assert.Equal(t, 0, dataset.Stats.TotalJobs)
	assert.Equal(t, 0, dataset.Stats.DuplicatesRemoved)
	assert.Contains(t, dataset.Metadata.Note, "no staging data for academic")
	assert.Equal(t, now.Format(time.RFC3339), dataset.Metadata.LastUpdate)
}

func TestPublishEmptyStillValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "all_jobs_integrated.json")
	dataset := Build(nil, now)

	require.NoError(t, Publish(path, dataset))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out models.Dataset
	require.NoError(t, json.Unmarshal(data, &out))
	assert.NotNil(t, out.Jobs)
	assert.Equal(t, 0, out.Stats.TotalJobs)

	//jobs serializes as [] rather than null for the dashboard
	var wire map[string]any
	require.NoError(t, json.Unmarshal(data, &wire))
	assert.Equal(t, []any{}, wire["jobs"])
}

func TestWriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scraping_summary.json")

	dataset := Build([]SourceData{
		{Name: "rss", Jobs: []models.Job{{Title: "a", SourceURL: "http://x/1", RelevanceScore: 90, GeminiAnalyzed: true}}},
	}, now)
	require.NoError(t, WriteSummary(path, dataset))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var summary models.Summary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, 1, summary.TotalJobs)
	assert.Equal(t, 1, summary.Quality.HighRelevance)
	assert.Equal(t, 1, summary.Quality.GeminiAnalyzed)
}
