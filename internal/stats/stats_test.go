package stats

import (
	"testing"

	"go-aisociety-jobs/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeArithmetic(t *testing.T) {
	jobs := []models.Job{
		{JobType: "faculty", Category: "research", RelevanceScore: 85, GeminiAnalyzed: true, IsRemote: true},
		{JobType: "industry", Category: "policy", RelevanceScore: 60},
		{JobType: "industry", Category: "research", RelevanceScore: 80},
	}
	//5 raw records across sources, 3 survived dedup
	sourceCounts := map[string]int{"academic": 2, "rss": 1, "linkedin": 2}

	s := Compute(jobs, sourceCounts)

	assert.Equal(t, 3, s.TotalJobs)
	assert.Equal(t, 2, s.DuplicatesRemoved) //(2+1+2) - 3
	assert.Equal(t, 2, s.HighRelevance)     //85 and 80 are >= 80
	assert.Equal(t, 1, s.GeminiAnalyzed)
	assert.Equal(t, 1, s.RemoteJobs)
	assert.Equal(t, map[string]int{"faculty": 1, "industry": 2}, s.ByJobType)
	assert.Equal(t, map[string]int{"research": 2, "policy": 1}, s.ByCategory)
	assert.Equal(t, sourceCounts, s.Sources)
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil, nil)

	assert.Equal(t, 0, s.TotalJobs)
	assert.Equal(t, 0, s.DuplicatesRemoved)
	assert.NotNil(t, s.ByJobType)
	assert.NotNil(t, s.ByCategory)
	assert.NotNil(t, s.Sources)
}
