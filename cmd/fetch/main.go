package main

import (
	"context"
	"log"
	"sync"
	"time"

	"go-aisociety-jobs/internal/config"
	"go-aisociety-jobs/internal/models"
	"go-aisociety-jobs/internal/source"
	"go-aisociety-jobs/internal/source/ajo"
	"go-aisociety-jobs/internal/source/jsearch"
	"go-aisociety-jobs/internal/source/linkedin"
	"go-aisociety-jobs/internal/source/rss"
	"go-aisociety-jobs/internal/staging"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Keywords: %v", cfg.Keywords)

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Println("🚀 Starting AI & Society job fetch phase...")

	//initialize enabled sources
	sources := []source.Source{
		ajo.NewAJOSource(cfg),
		rss.NewRSSSource(cfg),
	}
	if cfg.LinkedIn.Enabled {
		sources = append(sources, linkedin.NewLinkedInSource(cfg))
	} else {
		log.Println("ℹ️ LinkedIn source disabled in config")
	}
	if cfg.JSearch.Enabled {
		sources = append(sources, jsearch.NewJSearchSource(cfg))
	} else {
		log.Println("ℹ️ JSearch source disabled in config")
	}

	//run sources concurrently - they share no state and each writes
	//only its own staging file
	var wg sync.WaitGroup
	for _, s := range sources {
		wg.Add(1)
		go func(s source.Source) {
			defer wg.Done()
			runSource(ctx, cfg.DataDir, s)
		}(s)
	}
	wg.Wait()

	log.Println("🏁 Fetch phase finished.")
}

// runSource fetches one source and writes its staging artifact. A fetch
// error still stages whatever records were collected before the failure.
func runSource(ctx context.Context, dataDir string, s source.Source) {
	log.Printf("▶️ Starting source: %s", s.Name())

	jobs, err := s.Fetch(ctx)
	if err != nil {
		log.Printf("❌ Source %s failed: %v (staging %d partial jobs)", s.Name(), err, len(jobs))
	}
	if jobs == nil {
		jobs = []models.Job{}
	}

	file := &models.SourceFile{
		Jobs: jobs,
		Metadata: models.SourceMetadata{
			TotalJobs:  len(jobs),
			LastUpdate: time.Now().Format(time.RFC3339),
			Source:     s.Name(),
		},
	}
	if err != nil {
		file.Metadata.FetchError = err.Error()
	}

	path := staging.Path(dataDir, s.Name())
	if err := staging.Save(path, file); err != nil {
		log.Printf("❌ Failed to write staging file for %s: %v", s.Name(), err)
		return
	}
	log.Printf("💾 Staged %d jobs from %s to %s", len(jobs), s.Name(), path)
}
