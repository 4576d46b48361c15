package jsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"go-aisociety-jobs/internal/config"
	"go-aisociety-jobs/internal/models"
	"go-aisociety-jobs/internal/normalize"
	"go-aisociety-jobs/internal/source"
)

// JSearchSource wraps the JSearch API. Disabled by default in config; the
// integrator notes that in the published metadata.
type JSearchSource struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewJSearchSource(cfg *config.Config) *JSearchSource {
	return &JSearchSource{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: source.QueryTimeout},
	}
}

func (s *JSearchSource) Name() string {
	return "jsearch"
}

type searchResponse struct {
	Data []searchResult `json:"data"`
}

type searchResult struct {
	JobTitle     string `json:"job_title"`
	EmployerName string `json:"employer_name"`
	EmployerLogo string `json:"employer_logo"`
	JobCity      string `json:"job_city"`
	JobCountry   string `json:"job_country"`
	JobApplyLink string `json:"job_apply_link"`
	JobPostedAt  string `json:"job_posted_at_datetime_utc"`
	JobIsRemote  bool   `json:"job_is_remote"`
	Description  string `json:"job_description"`
}

func (s *JSearchSource) Fetch(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	log.Println("🔎 Searching JSearch API...")

	for i, keyword := range s.cfg.Keywords {
		if ctx.Err() != nil {
			return jobs, ctx.Err()
		}

		log.Printf("  [%d/%d] JSearch: %q", i+1, len(s.cfg.Keywords), keyword)

		results, err := s.query(ctx, keyword)
		if err != nil {
			log.Printf("    ⚠️ Query failed: %v", err)
			_ = source.Pace(ctx)
			continue
		}

		search := models.SearchContext{
			Keyword:    keyword,
			SourceSite: "jsearch",
		}

		collected := time.Now()
		for _, r := range results {
			raw := models.RawJob{
				Title:       r.JobTitle,
				Company:     r.EmployerName,
				Location:    joinLocation(r.JobCity, r.JobCountry),
				Date:        r.JobPostedAt,
				JobURL:      r.JobApplyLink,
				Description: r.Description,
				CompanyLogo: r.EmployerLogo,
			}
			job := normalize.Record(raw, search, collected)
			if r.JobIsRemote {
				job.IsRemote = true
			}
			jobs = append(jobs, job)
		}
		log.Printf("    ✅ Found %d jobs", len(results))

		if err := source.Pace(ctx); err != nil {
			return jobs, err
		}
	}

	return jobs, nil
}

func (s *JSearchSource) query(ctx context.Context, keyword string) ([]searchResult, error) {
	params := url.Values{}
	params.Set("query", keyword)
	params.Set("page", "1")
	params.Set("num_pages", "1")

	reqURL := s.cfg.JSearch.APIURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", s.cfg.JSearch.APIKey)

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
		return nil, fmt.Errorf("jsearch API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var parsed searchResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return parsed.Data, nil
}

func joinLocation(city, country string) string {
	if city == "" {
		return country
	}
	if country == "" {
		return city
	}
	return city + ", " + country
}
