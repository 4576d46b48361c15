package linkedin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go-aisociety-jobs/internal/config"
	"go-aisociety-jobs/internal/models"
	"go-aisociety-jobs/internal/normalize"
	"go-aisociety-jobs/internal/source"
)

type LinkedInSource struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewLinkedInSource(cfg *config.Config) *LinkedInSource {
	return &LinkedInSource{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: source.QueryTimeout},
	}
}

func (s *LinkedInSource) Name() string {
	return "linkedin"
}

// combinations builds the keyword x location search grid. A "Remote"
// location flips the API remote filter and marks results remote.
func (s *LinkedInSource) combinations() []models.SearchContext {
	var combos []models.SearchContext

	locations := s.cfg.Locations
	if len(locations) > 6 {
		locations = locations[:6]
	}

	for _, keyword := range s.cfg.Keywords {
		for _, loc := range locations {
			combos = append(combos, models.SearchContext{
				Keyword:         keyword,
				Location:        loc,
				ExperienceLevel: "senior",
				JobType:         "full time",
				DateSincePosted: "past week",
				Limit:           20,
				Remote:          loc == "Remote",
				SourceSite:      "linkedin",
			})
		}
	}
	return combos
}

func (s *LinkedInSource) Fetch(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	log.Println("💼 Searching LinkedIn query API...")

	combos := s.combinations()
	for i, combo := range combos {
		//check context cancellation
		if ctx.Err() != nil {
			return jobs, ctx.Err()
		}

		log.Printf("  [%d/%d] LinkedIn: %q in %q", i+1, len(combos), combo.Keyword, combo.Location)

		raws, err := s.query(ctx, combo)
		if err != nil {
			log.Printf("    ⚠️ Query failed: %v", err)
			_ = source.Pace(ctx)
			continue
		}

		collected := time.Now()
		for _, raw := range raws {
			jobs = append(jobs, normalize.Record(raw, combo, collected))
		}
		log.Printf("    ✅ Found %d jobs", len(raws))

		//1 second delay to respect the API rate limits
		if err := source.Pace(ctx); err != nil {
			return jobs, err
		}
	}

	return jobs, nil
}

// query performs one bounded call against the LinkedIn jobs query API
func (s *LinkedInSource) query(ctx context.Context, combo models.SearchContext) ([]models.RawJob, error) {
	params := url.Values{}
	params.Set("keyword", combo.Keyword)
	params.Set("location", combo.Location)
	params.Set("dateSincePosted", combo.DateSincePosted)
	params.Set("jobType", combo.JobType)
	params.Set("experienceLevel", combo.ExperienceLevel)
	params.Set("limit", strconv.Itoa(combo.Limit))
	params.Set("sortBy", "recent")
	if combo.Remote {
		params.Set("remoteFilter", "remote")
	}

	reqURL := s.cfg.LinkedIn.APIURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("linkedin API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var raws []models.RawJob
	if err := json.Unmarshal(bodyBytes, &raws); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return raws, nil
}
