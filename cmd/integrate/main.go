package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go-aisociety-jobs/internal/annotate"
	"go-aisociety-jobs/internal/config"
	"go-aisociety-jobs/internal/integrate"
	"go-aisociety-jobs/internal/reporter"
	"go-aisociety-jobs/internal/staging"
)

// sourceOrder is the integration priority: when the same posting shows up
// in two sources, the earlier one's version survives dedup
var sourceOrder = []string{"academic", "rss", "linkedin", "jsearch"}

func main() {
	//load config
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	log.Println("🚀 Starting integration phase...")

	//load staging artifacts in priority order; missing or corrupt files
	//contribute zero jobs and a metadata note
	var sources []integrate.SourceData
	for _, name := range sourceOrder {
		if name == "jsearch" && !cfg.JSearch.Enabled {
			sources = append(sources, integrate.SourceData{
				Name: name,
				Note: "jsearch source disabled",
			})
			continue
		}

		path := staging.Path(cfg.DataDir, name)
		file, err := staging.Load(path)
		if err != nil {
			log.Printf("⚠️ %v (treating as 0 jobs)", err)
			sources = append(sources, integrate.SourceData{
				Name: name,
				Note: fmt.Sprintf("no staging data for %s", name),
			})
			continue
		}

		data := integrate.SourceData{Name: name, Jobs: file.Jobs}
		if file.Metadata.FetchError != "" {
			data.Note = fmt.Sprintf("%s fetch was partial: %s", name, file.Metadata.FetchError)
		}
		sources = append(sources, data)
		log.Printf("📂 Loaded %d jobs from %s", len(file.Jobs), name)
	}

	//annotation pass - optional, records keep defaults without it
	if cfg.GeminiAPIKey != "" {
		annotator, err := annotate.NewGeminiAnnotator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("⚠️ Gemini unavailable, keeping pipeline defaults: %v", err)
		} else {
			for i := range sources {
				if len(sources[i].Jobs) == 0 {
					continue
				}
				annotated, err := annotator.Annotate(ctx, sources[i].Jobs)
				if err != nil {
					log.Printf("⚠️ Annotation of %s incomplete: %v", sources[i].Name, err)
				}
				sources[i].Jobs = annotated
			}
		}
	} else {
		log.Println("ℹ️ GEMINI_API_KEY not set - skipping annotation")
	}

	//dedup, rank, aggregate
	dataset := integrate.Build(sources, time.Now())

	//publish atomically - a failed publish leaves the previous artifact
	//authoritative and the run exits non-zero
	publishPath := filepath.Join(cfg.DataDir, "all_jobs_integrated.json")
	if err := integrate.Publish(publishPath, dataset); err != nil {
		log.Printf("❌ Publish failed: %v", err)
		os.Exit(1)
	}
	log.Printf("📁 Published %d jobs to %s", dataset.Stats.TotalJobs, publishPath)

	summaryPath := filepath.Join(cfg.DataDir, "scraping_summary.json")
	if err := integrate.WriteSummary(summaryPath, dataset); err != nil {
		log.Printf("⚠️ Failed to write summary: %v", err)
	}

	//report to telegram when configured
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		rep, err := reporter.NewTelegramReporter(cfg)
		if err != nil {
			log.Printf("⚠️ Failed to init Telegram reporter: %v", err)
		} else if err := rep.SendSummary(dataset); err != nil {
			log.Printf("⚠️ Failed to send Telegram summary: %v", err)
		}
	}

	log.Println("🏁 Integration finished.")
}
