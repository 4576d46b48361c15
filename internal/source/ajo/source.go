package ajo

import (
	"context"
	"log"
	"strings"
	"time"

	"go-aisociety-jobs/internal/config"
	"go-aisociety-jobs/internal/filter"
	"go-aisociety-jobs/internal/models"
	"go-aisociety-jobs/internal/normalize"
	"go-aisociety-jobs/internal/source"

	"github.com/mmcdole/gofeed"
)

// AJOSource reads the Academic Jobs Online department feeds
type AJOSource struct {
	cfg    *config.Config
	parser *gofeed.Parser
}

func NewAJOSource(cfg *config.Config) *AJOSource {
	return &AJOSource{
		cfg:    cfg,
		parser: gofeed.NewParser(),
	}
}

func (s *AJOSource) Name() string {
	return "academic"
}

func (s *AJOSource) Fetch(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	log.Println("🎓 Searching Academic Jobs Online feeds...")

	for i, feedURL := range s.cfg.AJOFeeds {
		if ctx.Err() != nil {
			return jobs, ctx.Err()
		}

		log.Printf("  [%d/%d] Processing: %s", i+1, len(s.cfg.AJOFeeds), feedURL)

		feedCtx, cancel := context.WithTimeout(ctx, source.QueryTimeout)
		feed, err := s.parser.ParseURLWithContext(feedURL, feedCtx)
		cancel()
		if err != nil {
			log.Printf("    ⚠️ Feed error: %v", err)
			_ = source.Pace(ctx)
			continue
		}

		search := models.SearchContext{
			Keyword:    departmentKeyword(feedURL),
			SourceSite: "academic_jobs_online",
		}

		collected := time.Now()
		kept := 0
		for _, item := range feed.Items {
			raw := source.FeedItemToRaw(item)
			raw.Score = filter.Score(raw.Title, raw.Description)

			job := normalize.Record(raw, search, collected)
			if !filter.QuickCheck(job) {
				continue
			}
			jobs = append(jobs, job)
			kept++
		}
		log.Printf("    ✅ Extracted %d/%d relevant jobs", kept, len(feed.Items))

		if err := source.Pace(ctx); err != nil {
			return jobs, err
		}
	}

	return jobs, nil
}

// departmentKeyword turns the feed path suffix (COMP, POLICY, ...) into the
// provenance search query
func departmentKeyword(feedURL string) string {
	parts := strings.Split(strings.TrimRight(feedURL, "/"), "/")
	return strings.ToLower(parts[len(parts)-1])
}
