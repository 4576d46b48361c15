package filter

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// feedDateLayouts covers the date formats RSS/Atom feeds actually emit
var feedDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
}

// PostingDate normalizes a source date string to ISO 8601 (YYYY-MM-DD),
// falling back to the collection date when the source omits or mangles it.
func PostingDate(dateStr string, collected time.Time) string {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" || dateStr == "N/A" || dateStr == "Recent" {
		return collected.Format("2006-01-02")
	}

	//case 1: ISO "2026-08-31" or "2026-08-31T..."
	if isoDateRegex.MatchString(dateStr) {
		if _, err := time.Parse("2006-01-02", dateStr[:10]); err == nil {
			return dateStr[:10]
		}
	}

	//case 2: feed formats like "Mon, 02 Jan 2006 15:04:05 -0700"
	for _, layout := range feedDateLayouts {
		if parsed, err := time.Parse(layout, dateStr); err == nil {
			return parsed.Format("2006-01-02")
		}
	}

	//case 3: dd/mm/yyyy
	if strings.Contains(dateStr, "/") {
		parts := strings.Split(dateStr, "/")
		if len(parts) >= 3 {
			day, _ := strconv.Atoi(parts[0])
			month, _ := strconv.Atoi(parts[1])
			year, _ := strconv.Atoi(strings.TrimSpace(parts[2]))
			if day >= 1 && day <= 31 && month >= 1 && month <= 12 && year > 2000 {
				return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
			}
		}
	}

	//default: collection date
	return collected.Format("2006-01-02")
}
