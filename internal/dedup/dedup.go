package dedup

import (
	"go-aisociety-jobs/internal/models"

	mapset "github.com/deckarep/golang-set/v2"
)

const identitySeparator = "-"

// Identity returns the dedup key for a job. A non-empty source URL is the
// identity verbatim; otherwise title+company is used as a heuristic fallback,
// which deliberately conflates postings that share both (precision over
// recall for the feed).
func Identity(job models.Job) string {
	if job.SourceURL != "" {
		return job.SourceURL
	}
	return job.Title + identitySeparator + job.Company
}

// Deduplicate keeps the first occurrence of every identity and reports how
// many later duplicates were dropped. Input order is the source priority:
// a posting seen by two sources survives as the earlier source's version.
func Deduplicate(jobs []models.Job) ([]models.Job, int) {
	seen := mapset.NewThreadUnsafeSet[string]()
	unique := make([]models.Job, 0, len(jobs))

	for _, job := range jobs {
		if seen.Add(Identity(job)) {
			unique = append(unique, job)
		}
	}
	return unique, len(jobs) - len(unique)
}
