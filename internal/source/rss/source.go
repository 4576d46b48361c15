package rss

import (
	"context"
	"log"
	"time"

	"go-aisociety-jobs/internal/config"
	"go-aisociety-jobs/internal/filter"
	"go-aisociety-jobs/internal/models"
	"go-aisociety-jobs/internal/normalize"
	"go-aisociety-jobs/internal/source"

	"github.com/mmcdole/gofeed"
)

// RSSSource aggregates the grouped job-board feeds (greenhouse, lever,
// government boards, generic job boards). Each group tags its records
// with source_site "rss_<group>".
type RSSSource struct {
	cfg    *config.Config
	parser *gofeed.Parser
}

func NewRSSSource(cfg *config.Config) *RSSSource {
	return &RSSSource{
		cfg:    cfg,
		parser: gofeed.NewParser(),
	}
}

func (s *RSSSource) Name() string {
	return "rss"
}

func (s *RSSSource) Fetch(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job

	total := 0
	for _, urls := range s.cfg.RSSFeeds {
		total += len(urls)
	}
	log.Printf("📡 Scraping %d RSS feeds...", total)

	current := 0
	for feedType, feedURLs := range s.cfg.RSSFeeds {
		for _, feedURL := range feedURLs {
			current++
			if ctx.Err() != nil {
				return jobs, ctx.Err()
			}

			log.Printf("  [%d/%d] %s: %s", current, total, feedType, feedURL)

			found, err := s.scrapeFeed(ctx, feedURL, feedType)
			if err != nil {
				log.Printf("    ⚠️ Feed error: %v", err)
				_ = source.Pace(ctx)
				continue
			}
			jobs = append(jobs, found...)

			if err := source.Pace(ctx); err != nil {
				return jobs, err
			}
		}
	}

	return jobs, nil
}

func (s *RSSSource) scrapeFeed(ctx context.Context, feedURL, feedType string) ([]models.Job, error) {
	feedCtx, cancel := context.WithTimeout(ctx, source.QueryTimeout)
	defer cancel()

	feed, err := s.parser.ParseURLWithContext(feedURL, feedCtx)
	if err != nil {
		return nil, err
	}

	search := models.SearchContext{
		Keyword:    feedType,
		SourceSite: "rss_" + feedType,
	}

	var jobs []models.Job
	collected := time.Now()
	for _, item := range feed.Items {
		raw := source.FeedItemToRaw(item)
		raw.Score = filter.Score(raw.Title, raw.Description)

		job := normalize.Record(raw, search, collected)
		if !filter.QuickCheck(job) {
			continue
		}
		jobs = append(jobs, job)
	}

	log.Printf("    ✅ Extracted %d/%d relevant jobs", len(jobs), len(feed.Items))
	return jobs, nil
}
