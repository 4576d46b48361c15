package rank

import (
	"sort"

	"go-aisociety-jobs/internal/models"
)

// ByRelevance sorts jobs by descending relevance score in place.
// The sort is stable so equal scores keep their input order, which keeps
// runs deterministic.
func ByRelevance(jobs []models.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].RelevanceScore > jobs[j].RelevanceScore
	})
}
