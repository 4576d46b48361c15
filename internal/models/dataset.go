package models

// SearchContext carries the query that produced a raw record
type SearchContext struct {
	Keyword         string
	Location        string
	ExperienceLevel string
	JobType         string
	DateSincePosted string
	Limit           int
	Remote          bool
	SourceSite      string
}

// SourceFile is the per-source staging artifact written by cmd/fetch
// and read back by cmd/integrate.
type SourceFile struct {
	Jobs     []Job          `json:"jobs"`
	Metadata SourceMetadata `json:"metadata"`
}

type SourceMetadata struct {
	TotalJobs  int    `json:"total_jobs"`
	LastUpdate string `json:"last_update"`
	Source     string `json:"source"`
	FetchError string `json:"fetch_error,omitempty"`
}

// Stats holds the aggregate counters of one integration run
type Stats struct {
	TotalJobs         int            `json:"total_jobs"`
	DuplicatesRemoved int            `json:"duplicates_removed"`
	HighRelevance     int            `json:"high_relevance"`
	GeminiAnalyzed    int            `json:"gemini_analyzed"`
	RemoteJobs        int            `json:"remote_jobs"`
	ByJobType         map[string]int `json:"by_job_type"`
	ByCategory        map[string]int `json:"by_category"`
	Sources           map[string]int `json:"sources"`
}

type Metadata struct {
	LastUpdate        string   `json:"last_update"`
	TotalUniqueJobs   int      `json:"total_unique_jobs"`
	SourcesIntegrated []string `json:"sources_integrated"`
	IntegrationDate   string   `json:"integration_date"`
	Note              string   `json:"note,omitempty"`
}

// Dataset is the published integrated artifact consumed by the dashboard
type Dataset struct {
	Jobs     []Job    `json:"jobs"`
	Stats    Stats    `json:"stats"`
	Metadata Metadata `json:"metadata"`
}

// Summary is the small companion artifact written next to the dataset
type Summary struct {
	LastUpdate string         `json:"last_update"`
	TotalJobs  int            `json:"total_jobs"`
	Sources    map[string]int `json:"sources"`
	Quality    SummaryQuality `json:"quality"`
}

type SummaryQuality struct {
	HighRelevance  int `json:"high_relevance"`
	GeminiAnalyzed int `json:"gemini_analyzed"`
}
