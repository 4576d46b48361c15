// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type LinkedInConfig struct {
	Enabled bool   `yaml:"enabled"`
	APIURL  string `yaml:"api_url"`
}

type JSearchConfig struct {
	Enabled bool   `yaml:"enabled"`
	APIURL  string `yaml:"api_url"`
	APIKey  string `yaml:"-"`
}

type Config struct {
	GeminiAPIKey   string `yaml:"-"`
	GeminiModel    string `yaml:"gemini_model"`
	TelegramToken  string `yaml:"telegram_token"`
	TelegramChatID int64  `yaml:"telegram_chat_id"`
	//Search criteria
	Keywords  []string `yaml:"keywords"`
	Locations []string `yaml:"locations"`
	//Sources
	LinkedIn LinkedInConfig      `yaml:"linkedin"`
	JSearch  JSearchConfig       `yaml:"jsearch"`
	AJOFeeds []string            `yaml:"ajo_feeds"`
	RSSFeeds map[string][]string `yaml:"rss_feeds"`
	//Paths
	DataDir string `yaml:"data_dir"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.JSearch.APIKey = os.Getenv("JSEARCH_API_KEY")

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	if cfg.GeminiModel == "" {
		cfg.GeminiModel = "gemini-1.5-flash"
	}

	if len(cfg.Keywords) == 0 {
		cfg.Keywords = []string{
			"AI ethics", "responsible AI", "AI policy", "AI governance",
			"algorithmic fairness", "AI safety", "technology policy",
			"digital rights", "AI regulation", "AI risk management",
		}
	}

	if len(cfg.Locations) == 0 {
		cfg.Locations = []string{
			"San Francisco Bay Area", "Washington, DC", "New York City",
			"London, England", "Boston, Massachusetts", "Remote",
		}
	}

	if len(cfg.AJOFeeds) == 0 {
		cfg.AJOFeeds = []string{
			"https://academicjobsonline.org/ajo/jobs/rss/COMP",
			"https://academicjobsonline.org/ajo/jobs/rss/POLICY",
			"https://academicjobsonline.org/ajo/jobs/rss/LAW",
			"https://academicjobsonline.org/ajo/jobs/rss/PHIL",
			"https://academicjobsonline.org/ajo/jobs/rss/ECON",
		}
	}

	//jsearch stays disabled unless explicitly enabled AND keyed
	if cfg.JSearch.Enabled && cfg.JSearch.APIKey == "" {
		log.Println("Warning: jsearch enabled without JSEARCH_API_KEY, disabling")
		cfg.JSearch.Enabled = false
	}

	return cfg
}
