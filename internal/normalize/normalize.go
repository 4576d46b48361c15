package normalize

import (
	"fmt"
	"strings"
	"time"

	"go-aisociety-jobs/internal/filter"
	"go-aisociety-jobs/internal/models"

	mapset "github.com/deckarep/golang-set/v2"
)

// jobTypeRules is an ordered decision list - a company name can satisfy
// several rules ("University of Law Foundation") and the first hit wins,
// so the order here is load-bearing.
var jobTypeRules = []struct {
	substrings []string
	jobType    string
}{
	{[]string{"university", "college"}, models.JobTypeFaculty},
	{[]string{"government", "federal"}, models.JobTypeGovernment},
	{[]string{"united nations", "oecd"}, models.JobTypeInternational},
	{[]string{"foundation", "nonprofit"}, models.JobTypeNonprofit},
}

// tagRules maps title substrings to canonical tags, scanned in order
var tagRules = []struct {
	substrings []string
	tag        string
}{
	{[]string{"ai", "artificial intelligence"}, "AI"},
	{[]string{"ethics"}, "Ethics"},
	{[]string{"policy"}, "Policy"},
	{[]string{"research"}, "Research"},
	{[]string{"senior", "lead"}, "Senior"},
}

var validCategories = map[string]bool{
	models.CategoryLaw:       true,
	models.CategoryPolicy:    true,
	models.CategoryTechnical: true,
	models.CategoryResearch:  true,
}

var validJobTypes = map[string]bool{
	models.JobTypeFaculty:       true,
	models.JobTypeIndustry:      true,
	models.JobTypeNonprofit:     true,
	models.JobTypeGovernment:    true,
	models.JobTypeInternational: true,
}

// Record maps one raw source record into the canonical job shape.
// It never fails: absent fields get the documented defaults.
func Record(raw models.RawJob, search models.SearchContext, collected time.Time) models.Job {
	title := firstNonEmpty(raw.Title, raw.Position, models.DefaultTitle)
	company := firstNonEmpty(raw.Company, raw.Organization, models.DefaultCompany)
	location := firstNonEmpty(raw.Location, search.Location)

	jobType := raw.JobType
	if !validJobTypes[jobType] {
		jobType = ClassifyJobType(company)
	}

	category := raw.Category
	if !validCategories[category] {
		category = models.DefaultCategory
	}

	description := raw.Description
	if description == "" {
		description = fmt.Sprintf("%s at %s. Query: %s", title, company, search.Keyword)
	}

	score := raw.Score
	if score <= 0 {
		score = models.DefaultRelevanceScore
	}
	if score > 100 {
		score = 100
	}

	return models.Job{
		Title:           title,
		Company:         company,
		Location:        location,
		JobType:         jobType,
		Category:        category,
		Description:     description,
		PostingDate:     filter.PostingDate(raw.Date, collected),
		Deadline:        nil,
		SourceURL:       raw.JobURL,
		SourceSite:      search.SourceSite,
		Tags:            Tags(title, search.Keyword),
		RelevanceScore:  score,
		SalaryInfo:      raw.Salary,
		IsRemote:        IsRemote(location, search),
		SearchQuery:     search.Keyword,
		ExperienceLevel: search.ExperienceLevel,
		CompanyLogo:     raw.CompanyLogo,
		AgoTime:         raw.AgoTime,
	}
}

// ClassifyJobType derives the job type from the company name
func ClassifyJobType(company string) string {
	lower := strings.ToLower(company)
	for _, rule := range jobTypeRules {
		for _, sub := range rule.substrings {
			if strings.Contains(lower, sub) {
				return rule.jobType
			}
		}
	}
	return models.JobTypeIndustry
}

// Tags builds the tag list from the search keyword plus title keyword hits,
// deduplicated preserving first-seen order
func Tags(title, searchQuery string) []string {
	tags := []string{}
	seen := mapset.NewThreadUnsafeSet[string]()
	if searchQuery != "" && seen.Add(searchQuery) {
		tags = append(tags, searchQuery)
	}

	content := strings.ToLower(title)
	for _, rule := range tagRules {
		for _, sub := range rule.substrings {
			if strings.Contains(content, sub) {
				if seen.Add(rule.tag) {
					tags = append(tags, rule.tag)
				}
				break
			}
		}
	}
	return tags
}

// IsRemote needs only the location text and search metadata, never annotation
func IsRemote(location string, search models.SearchContext) bool {
	if search.Remote {
		return true
	}
	return strings.Contains(strings.ToLower(location), "remote")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
