// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey means SERPAPI_API_KEY is absent. The caller must abort
// before any network activity.
var ErrMissingAPIKey = errors.New("missing SERPAPI_API_KEY in environment")

type Config struct {
	SerpAPIKey string `yaml:"-" env:"SERPAPI_API_KEY"`
	//Email delivery
	SMTPHost      string `yaml:"smtp_host" env:"EMAIL_SMTP_HOST"`
	SMTPPort      int    `yaml:"smtp_port" env:"EMAIL_SMTP_PORT"`
	EmailUsername string `yaml:"-" env:"EMAIL_USERNAME"`
	EmailPassword string `yaml:"-" env:"EMAIL_PASSWORD"`
	EmailTo       string `yaml:"email_to" env:"EMAIL_TO"`
	//Search criteria
	QueryTerms []string `yaml:"query_terms"`
	Locations  []string `yaml:"locations"`
	MaxResults int      `yaml:"max_results" env:"MAX_RESULTS"`
	MinDaysOld int      `yaml:"min_days_old" env:"MIN_DAYS_OLD"`
	//Optional Telegram channel
	TelegramToken  string `yaml:"-" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"-" env:"TELEGRAM_CHAT_ID"`
}

const yamlPath = "configs/config.yaml"

func Load() (*Config, error) {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile(yamlPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Could not read config.yaml: %v", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", yamlPath, err)
		}
	}

	//Override with env vars
	if key := os.Getenv("SERPAPI_API_KEY"); key != "" {
		cfg.SerpAPIKey = key
	}
	if host := os.Getenv("EMAIL_SMTP_HOST"); host != "" {
		cfg.SMTPHost = host
	}
	if port := os.Getenv("EMAIL_SMTP_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid EMAIL_SMTP_PORT: %w", err)
		}
		cfg.SMTPPort = p
	}
	if user := os.Getenv("EMAIL_USERNAME"); user != "" {
		cfg.EmailUsername = user
	}
	if pass := os.Getenv("EMAIL_PASSWORD"); pass != "" {
		cfg.EmailPassword = pass
	}
	if to := os.Getenv("EMAIL_TO"); to != "" {
		cfg.EmailTo = to
	}
	if terms := os.Getenv("JOB_QUERY_TERMS"); terms != "" {
		cfg.QueryTerms = strings.Split(terms, ";")
	}
	if locs := os.Getenv("LOCATIONS"); locs != "" {
		cfg.Locations = strings.Split(locs, ";")
	}
	if max := os.Getenv("MAX_RESULTS"); max != "" {
		m, err := strconv.Atoi(max)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_RESULTS: %w", err)
		}
		cfg.MaxResults = m
	}
	if min := os.Getenv("MIN_DAYS_OLD"); min != "" {
		m, err := strconv.Atoi(min)
		if err != nil {
			return nil, fmt.Errorf("invalid MIN_DAYS_OLD: %w", err)
		}
		cfg.MinDaysOld = m
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = "smtp.gmail.com"
	}
	if cfg.SMTPPort == 0 {
		cfg.SMTPPort = 587
	}
	if cfg.EmailTo == "" {
		cfg.EmailTo = cfg.EmailUsername
	}
	if len(cfg.QueryTerms) == 0 {
		cfg.QueryTerms = []string{
			"entry level Full Stack Developer",
			"entry level AI ML engineer",
			"Django developer",
		}
	}
	if len(cfg.Locations) == 0 {
		cfg.Locations = []string{"Remote", "India"}
	}
	if cfg.MaxResults == 0 {
		cfg.MaxResults = 25
	}
	if cfg.MinDaysOld == 0 {
		cfg.MinDaysOld = 4
	}

	//Validate required fields
	if cfg.SerpAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	return cfg, nil
}

// TelegramEnabled reports whether the optional Telegram channel is fully
// configured. Either value missing disables it.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}
