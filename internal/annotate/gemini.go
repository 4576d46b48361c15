package annotate

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"go-aisociety-jobs/internal/filter"
	"go-aisociety-jobs/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// annotatePause is the delay between successive Gemini calls
const annotatePause = 500 * time.Millisecond

type geminiAnnotator struct {
	model *genai.GenerativeModel
}

// NewGeminiAnnotator creates a Gemini-backed annotator
func NewGeminiAnnotator(ctx context.Context, apiKey, modelName string) (Annotator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.GenerationConfig.ResponseMIMEType = "application/json"

	return &geminiAnnotator{model: model}, nil
}

func (g *geminiAnnotator) Annotate(ctx context.Context, jobs []models.Job) ([]models.Job, error) {
	log.Printf("🤖 Analyzing %d jobs with Gemini...", len(jobs))

	var kept []models.Job
	for i, job := range jobs {
		if ctx.Err() != nil {
			//keep the remaining jobs unannotated rather than lose them
			kept = append(kept, jobs[i:]...)
			return kept, ctx.Err()
		}

		//cheap gate before spending a model call
		if !filter.QuickCheck(job) {
			continue
		}

		a, err := g.analyze(ctx, job)
		if err != nil {
			log.Printf("  ⚠️ Gemini error for %q: %v", job.Title, err)
			//keep the record with pipeline defaults
			kept = append(kept, job)
			continue
		}

		if !a.IsRelevant || a.RelevanceScore < minRelevanceScore {
			log.Printf("  ❌ [%d/%d] %d%% - %s", i+1, len(jobs), a.RelevanceScore, job.Title)
			continue
		}

		kept = append(kept, apply(job, *a))
		log.Printf("  ✅ [%d/%d] %d%% %s - %s", i+1, len(jobs), a.RelevanceScore, a.Category, job.Title)

		time.Sleep(annotatePause)
	}

	log.Printf("🎯 Gemini kept %d/%d jobs", len(kept), len(jobs))
	return kept, nil
}

func (g *geminiAnnotator) analyze(ctx context.Context, job models.Job) (*analysis, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(buildPrompt(job)))
	if err != nil {
		return nil, fmt.Errorf("generate content failed: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	var a analysis
	if err := json.Unmarshal([]byte(cleanMarkdownJSON(text)), &a); err != nil {
		return nil, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}
	return &a, nil
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no candidates returned")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text), nil
		}
	}
	return "", fmt.Errorf("no text part in response")
}
