package filter

import (
	"strings"
	"unicode"

	"go-aisociety-jobs/internal/models"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var highValueKeywords = []string{
	"ai ethics", "responsible ai", "ai governance", "algorithmic fairness",
	"ai safety", "digital rights", "technology policy", "ai regulation",
	"machine learning ethics", "algorithmic bias", "ai transparency",
	"ai accountability", "ethical ai", "trustworthy ai",
}

var mediumValueKeywords = []string{
	"artificial intelligence", "machine learning", "data ethics",
	"policy", "governance", "privacy", "algorithm", "transparency",
	"bias", "fairness", "ethics", "regulation", "compliance",
}

var titleKeywords = []string{"ai", "ethics", "policy", "responsible", "governance"}

var aiKeywords = []string{"ai", "artificial intelligence", "machine learning", "algorithm", "data science"}

var societyKeywords = []string{
	"ethics", "policy", "governance", "fairness", "bias",
	"transparency", "responsibility", "regulation",
}

// fold strips diacritics and lowercases, so feed text in any script
// matches the ascii keyword vocabulary
func fold(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(result)
}

// Score calculates a keyword relevance score in [0,100] for a posting.
// Base 50, high value keywords +15, medium +8, title hits +10.
func Score(title, description string) int {
	content := fold(title + " " + description)
	score := 50

	for _, keyword := range highValueKeywords {
		if strings.Contains(content, keyword) {
			score += 15
		}
	}

	for _, keyword := range mediumValueKeywords {
		if strings.Contains(content, keyword) {
			score += 8
		}
	}

	//title bonus
	lowerTitle := fold(title)
	for _, keyword := range titleKeywords {
		if strings.Contains(lowerTitle, keyword) {
			score += 10
		}
	}

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// QuickCheck is the cheap relevance gate applied before any Gemini call
func QuickCheck(job models.Job) bool {
	content := fold(job.Title + " " + job.Description)

	//must mention AI/tech at all
	hasAI := false
	for _, keyword := range aiKeywords {
		if strings.Contains(content, keyword) {
			hasAI = true
			break
		}
	}
	if !hasAI {
		return false
	}

	//and either a society angle or a decent pre-score
	for _, keyword := range societyKeywords {
		if strings.Contains(content, keyword) {
			return true
		}
	}
	return job.RelevanceScore >= 40
}
