package filter

import (
	"testing"
	"time"

	"go-aisociety-jobs/internal/models"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		expected    int
	}{
		{
			name:        "Empty content keeps base score",
			title:       "",
			description: "",
			expected:    50,
		},
		{
			name:        "Core role saturates at 100",
			title:       "AI Ethics Lead",
			description: "responsible ai governance, algorithmic fairness, ai policy work",
			expected:    100,
		},
		{
			name:  "Single medium keyword",
			title: "Data Analyst",
			//"compliance" only: 50 + 8
			description: "regulatory compliance reporting",
			expected:    58,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.title, tt.description)
			if got != tt.expected {
				t.Errorf("got %d, want %d", got, tt.expected)
			}
			if got < 0 || got > 100 {
				t.Errorf("score %d out of range", got)
			}
		})
	}
}

func TestQuickCheck(t *testing.T) {
	tests := []struct {
		name     string
		job      models.Job
		expected bool
	}{
		{
			name:     "AI plus society keyword",
			job:      models.Job{Title: "AI Policy Researcher", Description: "governance of machine learning"},
			expected: true,
		},
		{
			name:     "No AI mention at all",
			job:      models.Job{Title: "Kindergarten Teacher", Description: "tutoring young children"},
			expected: false,
		},
		{
			name:     "AI without society angle but strong pre-score",
			job:      models.Job{Title: "Machine Learning Tools", Description: "build ml tooling", RelevanceScore: 55},
			expected: true,
		},
		{
			name:     "AI without society angle and weak pre-score",
			job:      models.Job{Title: "Machine Learning Tools", Description: "build ml tooling", RelevanceScore: 30},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuickCheck(tt.job); got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPostingDate(t *testing.T) {
	collected := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		dateStr  string
		expected string
	}{
		{"Empty falls back to collection date", "", "2026-08-31"},
		{"N/A falls back", "N/A", "2026-08-31"},
		{"ISO date", "2026-08-15", "2026-08-15"},
		{"ISO timestamp", "2026-08-15T09:30:00Z", "2026-08-15"},
		{"RSS RFC1123Z", "Mon, 24 Aug 2026 10:00:00 +0000", "2026-08-24"},
		{"Slash format dd/mm/yyyy", "24/08/2026", "2026-08-24"},
		{"Garbage falls back", "posted recently!!", "2026-08-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PostingDate(tt.dateStr, collected)
			if got != tt.expected {
				t.Errorf("got %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestFold(t *testing.T) {
	if got := fold("Chargé de Mission IA Éthique"); got != "charge de mission ia ethique" {
		t.Errorf("unexpected fold result: %q", got)
	}
}
