package annotate

import (
	"context"
	"fmt"
	"strings"

	"go-aisociety-jobs/internal/models"
)

// Annotator is the interface for LLM relevance annotation. The pipeline
// tolerates annotation being entirely absent or partial: unannotated
// records keep their pipeline-computed defaults.
type Annotator interface {
	// Annotate scores and categorizes jobs, dropping the ones the model
	// deems irrelevant. Records that fail individually are kept unannotated.
	Annotate(ctx context.Context, jobs []models.Job) ([]models.Job, error)
}

// minRelevanceScore is the cut below which an analyzed job is dropped
const minRelevanceScore = 30

// analysis is the JSON shape the model is asked to return
type analysis struct {
	IsRelevant     bool     `json:"is_relevant"`
	RelevanceScore int      `json:"relevance_score"`
	Category       string   `json:"category"`
	Confidence     string   `json:"confidence"`
	Reasoning      string   `json:"reasoning"`
	KeyTopics      []string `json:"key_topics"`
}

// buildPrompt creates the analysis request for one job
func buildPrompt(job models.Job) string {
	return fmt.Sprintf(`Analyze this job posting for "AI & Society" field relevance.

Job Title: %s
Company: %s
Location: %s
Search Query: %s
Description: %s

AI & Society field encompasses:
- AI Ethics and Responsible AI Development
- AI Policy, Governance, and Regulation
- Algorithmic Fairness and Bias Mitigation
- Technology Law and Digital Rights
- AI Safety and Alignment Research
- Computational Social Science
- Public Interest Technology

Provide analysis in this JSON format:
{
    "is_relevant": true/false,
    "relevance_score": 0-100,
    "category": "research/policy/law/technical",
    "confidence": "high/medium/low",
    "reasoning": "short explanation",
    "key_topics": ["topic1", "topic2", "topic3"]
}

Scoring Guidelines:
- 90-100: Core AI & Society roles (AI Ethics Lead, AI Policy Director)
- 70-89: Strong relevance (AI with clear societal components)
- 50-69: Moderate relevance (Tech roles with ethics/policy aspects)
- 30-49: Weak relevance (General tech with minimal social focus)
- 0-29: Not relevant (Pure engineering, sales, unrelated)

Respond with ONLY the JSON object.`,
		job.Title, job.Company, job.Location, job.SearchQuery, truncate(job.Description, 800))
}

// apply overwrites the annotation fields on a job from a model analysis
func apply(job models.Job, a analysis) models.Job {
	job.Category = normalizeCategory(a.Category, job.Category)
	job.RelevanceScore = clampScore(a.RelevanceScore)
	job.Confidence = a.Confidence
	job.GeminiReasoning = a.Reasoning
	job.KeyTopics = a.KeyTopics
	job.GeminiAnalyzed = true
	return job
}

// normalizeCategory maps model output onto the canonical category enum.
// Older prompts answered "legal" where the dashboard expects "law".
func normalizeCategory(category, fallback string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case models.CategoryLaw, "legal":
		return models.CategoryLaw
	case models.CategoryPolicy:
		return models.CategoryPolicy
	case models.CategoryTechnical:
		return models.CategoryTechnical
	case models.CategoryResearch:
		return models.CategoryResearch
	}
	return fallback
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// cleanMarkdownJSON removes backticks and "json" prefix if the model tries
// to be helpful
func cleanMarkdownJSON(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}

func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max]
}
