package models

// Job type classifications derived from company name heuristics
const (
	JobTypeFaculty       = "faculty"
	JobTypeIndustry      = "industry"
	JobTypeNonprofit     = "nonprofit"
	JobTypeGovernment    = "government"
	JobTypeInternational = "international"
)

// Topical categories, overridable by the Gemini annotator
const (
	CategoryLaw       = "law"
	CategoryPolicy    = "policy"
	CategoryTechnical = "technical"
	CategoryResearch  = "research"
)

// Defaults applied before annotation
const (
	DefaultRelevanceScore = 60
	DefaultCategory       = CategoryResearch
	DefaultTitle          = "Unknown Position"
	DefaultCompany        = "Unknown Company"
)

// HighRelevanceThreshold marks a job as high relevance in the stats
const HighRelevanceThreshold = 80

// Job is the canonical normalized representation of one posting.
// JSON field names are a wire contract with the dashboard - do not rename.
type Job struct {
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	JobType         string   `json:"job_type"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	PostingDate     string   `json:"posting_date"`
	Deadline        *string  `json:"deadline"`
	SourceURL       string   `json:"source_url"`
	SourceSite      string   `json:"source_site"`
	Tags            []string `json:"tags"`
	RelevanceScore  int      `json:"relevance_score"`
	SalaryInfo      string   `json:"salary_info"`
	IsRemote        bool     `json:"is_remote"`
	SearchQuery     string   `json:"search_query"`
	ExperienceLevel string   `json:"experience_level"`
	CompanyLogo     string   `json:"company_logo"`
	AgoTime         string   `json:"ago_time"`

	//set by the Gemini annotator, zero-valued otherwise
	Confidence      string   `json:"confidence,omitempty"`
	GeminiReasoning string   `json:"gemini_reasoning,omitempty"`
	KeyTopics       []string `json:"key_topics,omitempty"`
	GeminiAnalyzed  bool     `json:"gemini_analyzed"`
}

// RawJob is the absent-tolerant input shape each source fetcher emits.
// Only a title/position and a company/organization field are guaranteed.
type RawJob struct {
	Title        string `json:"title"`
	Position     string `json:"position"`
	Company      string `json:"company"`
	Organization string `json:"organization"`
	Location     string `json:"location"`
	Date         string `json:"date"`
	JobURL       string `json:"jobUrl"`
	Description  string `json:"description"`
	Salary       string `json:"salary"`
	CompanyLogo  string `json:"companyLogo"`
	AgoTime      string `json:"agoTime"`
	JobType      string `json:"job_type,omitempty"`
	Category     string `json:"category,omitempty"`
	Score        int    `json:"relevance_score,omitempty"`
}
