package integrate

import (
	"log"
	"strings"
	"time"

	"go-aisociety-jobs/internal/dedup"
	"go-aisociety-jobs/internal/models"
	"go-aisociety-jobs/internal/rank"
	"go-aisociety-jobs/internal/staging"
	"go-aisociety-jobs/internal/stats"
)

// SourceData is one source's contribution, in processing-priority order
type SourceData struct {
	Name string
	Jobs []models.Job
	Note string
}

// Build concatenates the per-source arrays in order, deduplicates with
// first-occurrence-wins, ranks by relevance and computes the aggregate
// stats. It always produces a valid dataset, even from zero sources.
func Build(sources []SourceData, now time.Time) models.Dataset {
	var all []models.Job
	sourceCounts := map[string]int{}
	integrated := []string{}
	var notes []string

	for _, src := range sources {
		all = append(all, src.Jobs...)
		sourceCounts[src.Name] = len(src.Jobs)
		integrated = append(integrated, src.Name)
		if src.Note != "" {
			notes = append(notes, src.Note)
		}
	}

	unique, removed := dedup.Deduplicate(all)
	rank.ByRelevance(unique)

	log.Printf("🔍 Deduplication: %d total -> %d unique jobs (%d removed)", len(all), len(unique), removed)

	timestamp := now.Format(time.RFC3339)
	return models.Dataset{
		Jobs:  unique,
		Stats: stats.Compute(unique, sourceCounts),
		Metadata: models.Metadata{
			LastUpdate:        timestamp,
			TotalUniqueJobs:   len(unique),
			SourcesIntegrated: integrated,
			IntegrationDate:   timestamp,
			Note:              strings.Join(notes, "; "),
		},
	}
}

// Publish atomically replaces the published dataset file. On failure the
// previous artifact stays in place untouched.
func Publish(path string, dataset models.Dataset) error {
	if dataset.Jobs == nil {
		dataset.Jobs = []models.Job{}
	}
	return staging.WriteJSON(path, dataset)
}

// WriteSummary emits the small companion summary artifact
func WriteSummary(path string, dataset models.Dataset) error {
	summary := models.Summary{
		LastUpdate: dataset.Metadata.LastUpdate,
		TotalJobs:  dataset.Stats.TotalJobs,
		Sources:    dataset.Stats.Sources,
		Quality: models.SummaryQuality{
			HighRelevance:  dataset.Stats.HighRelevance,
			GeminiAnalyzed: dataset.Stats.GeminiAnalyzed,
		},
	}
	return staging.WriteJSON(path, summary)
}
