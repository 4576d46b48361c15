package stats

import (
	"go-aisociety-jobs/internal/models"
)

// Compute tallies the aggregate counters over the final deduplicated set.
// sourceCounts holds the per-source record counts before dedup, so
// duplicates_removed = sum(sourceCounts) - len(jobs).
func Compute(jobs []models.Job, sourceCounts map[string]int) models.Stats {
	s := models.Stats{
		TotalJobs:  len(jobs),
		ByJobType:  map[string]int{},
		ByCategory: map[string]int{},
		Sources:    map[string]int{},
	}

	rawTotal := 0
	for name, count := range sourceCounts {
		s.Sources[name] = count
		rawTotal += count
	}
	s.DuplicatesRemoved = rawTotal - len(jobs)

	for _, job := range jobs {
		s.ByJobType[job.JobType]++
		s.ByCategory[job.Category]++
		if job.RelevanceScore >= models.HighRelevanceThreshold {
			s.HighRelevance++
		}
		if job.GeminiAnalyzed {
			s.GeminiAnalyzed++
		}
		if job.IsRemote {
			s.RemoteJobs++
		}
	}
	return s
}
