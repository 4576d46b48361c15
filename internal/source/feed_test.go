package source

import (
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
)

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Strips tags and entities",
			input:    "<p>AI &amp; Society <b>role</b></p>",
			expected: "AI & Society role",
		},
		{
			name:     "Collapses whitespace",
			input:    "a\n\n  b\t c",
			expected: "a b c",
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanHTML(tt.input); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFeedItemToRaw(t *testing.T) {
	published := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	item := &gofeed.Item{
		Title:           "AI Ethics Researcher at Oxford Internet Institute",
		Link:            "https://example.org/jobs/42",
		Description:     "<p>Research post on algorithmic accountability. Salary $90,000 - $120,000.</p>",
		PublishedParsed: &published,
	}

	raw := FeedItemToRaw(item)

	assert.Equal(t, "AI Ethics Researcher at Oxford Internet Institute", raw.Title)
	assert.Equal(t, "Oxford Internet Institute", raw.Company)
	assert.Equal(t, "https://example.org/jobs/42", raw.JobURL)
	assert.Equal(t, "2026-08-24", raw.Date)
	assert.Equal(t, "$90,000 - $120,000", raw.Salary)
	assert.NotContains(t, raw.Description, "<p>")
}

func TestFeedItemToRawAuthorWins(t *testing.T) {
	item := &gofeed.Item{
		Title:  "Postdoc in AI Governance",
		Author: &gofeed.Person{Name: "Stanford University"},
	}

	raw := FeedItemToRaw(item)
	assert.Equal(t, "Stanford University", raw.Company)
}

func TestFeedItemToRawDescriptionCompany(t *testing.T) {
	item := &gofeed.Item{
		Title:       "AI Policy Analyst",
		Description: "Organization: Brookings Institution\nGreat role.",
	}

	raw := FeedItemToRaw(item)
	assert.Equal(t, "Brookings Institution", raw.Company)
}
