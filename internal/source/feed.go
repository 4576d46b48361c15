package source

import (
	"regexp"
	"strings"

	"go-aisociety-jobs/internal/models"

	"github.com/mmcdole/gofeed"
)

var (
	htmlTagRegex    = regexp.MustCompile(`<[^>]+>`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
	atCompanyRegex  = regexp.MustCompile(`(?i)\s+at\s+([^-]+)`)
	companyRegexes  = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Company:\s*([^\n]+)`),
		regexp.MustCompile(`(?i)Employer:\s*([^\n]+)`),
		regexp.MustCompile(`(?i)Organization:\s*([^\n]+)`),
	}
	salaryRegexes = []*regexp.Regexp{
		regexp.MustCompile(`[$£€][\d,]+[kK]?\s*-\s*[$£€][\d,]+[kK]?`),
		regexp.MustCompile(`[$£€][\d,]+[kK]?`),
	}
)

// FeedItemToRaw maps one RSS/Atom entry into the raw record shape the
// normalizer consumes. Best effort on every field.
func FeedItemToRaw(item *gofeed.Item) models.RawJob {
	//company patterns anchor on line ends, so extract before the HTML
	//cleanup collapses newlines
	rawDescription := firstOf(item.Description, item.Content)
	description := CleanHTML(rawDescription)

	raw := models.RawJob{
		Title:       item.Title,
		Company:     extractCompany(item, rawDescription),
		JobURL:      item.Link,
		Description: truncate(description, 500),
		Salary:      extractSalary(description),
	}

	if item.PublishedParsed != nil {
		raw.Date = item.PublishedParsed.Format("2006-01-02")
	} else if item.UpdatedParsed != nil {
		raw.Date = item.UpdatedParsed.Format("2006-01-02")
	}

	return raw
}

// CleanHTML strips tags, decodes common entities and collapses whitespace
func CleanHTML(text string) string {
	if text == "" {
		return ""
	}
	clean := htmlTagRegex.ReplaceAllString(text, "")

	replacer := strings.NewReplacer(
		"&lt;", "<", "&gt;", ">", "&amp;", "&",
		"&quot;", `"`, "&#39;", "'", "&nbsp;", " ",
	)
	clean = replacer.Replace(clean)

	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(clean, " "))
}

func extractCompany(item *gofeed.Item, description string) string {
	if item.Author != nil && item.Author.Name != "" {
		return item.Author.Name
	}

	//common pattern: "Job Title at Company"
	if match := atCompanyRegex.FindStringSubmatch(item.Title); match != nil {
		company := strings.TrimSpace(match[1])
		if len(company) < 100 {
			return company
		}
	}

	for _, re := range companyRegexes {
		if match := re.FindStringSubmatch(description); match != nil {
			company := strings.TrimSpace(match[1])
			if len(company) < 100 {
				return company
			}
		}
	}
	return ""
}

func extractSalary(description string) string {
	for _, re := range salaryRegexes {
		if match := re.FindString(description); match != "" {
			return match
		}
	}
	return ""
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}
