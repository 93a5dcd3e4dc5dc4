package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/harshtiwariiii/job-finder-bot/internal/config"
	"github.com/harshtiwariiii/job-finder-bot/internal/digest"
	"github.com/harshtiwariiii/job-finder-bot/internal/mailer"
	"github.com/harshtiwariiii/job-finder-bot/internal/pipeline"
	"github.com/harshtiwariiii/job-finder-bot/internal/reporter"
	"github.com/harshtiwariiii/job-finder-bot/internal/source"
	"github.com/harshtiwariiii/job-finder-bot/internal/source/serpapi"
)

func main() {
	//load config; a missing API key aborts before any network call
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Printf("🔧 Config loaded. Query terms: %v | Locations: %v", cfg.QueryTerms, cfg.Locations)

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Println("🚀 Starting job alert run...")

	src := serpapi.New(cfg.SerpAPIKey)
	res := pipeline.Collect(ctx, src, cfg.QueryTerms, cfg.Locations)
	log.Printf("📦 Total jobs collected: %d (%d of %d pairs failed)", len(res.Jobs), res.PairsFailed, res.PairsTotal)

	body := digest.Render(res.Jobs)
	subject := fmt.Sprintf("[Job Alert] %d jobs found — %s",
		len(res.Jobs), time.Now().UTC().Format("2006-01-02"))

	//optional telegram channel, never fatal
	if cfg.TelegramEnabled() {
		reportToTelegram(cfg, res.Jobs)
	}

	m := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUsername, cfg.EmailPassword, cfg.EmailTo)
	if err := m.Send(subject, body); err != nil {
		log.Fatalf("❌ %v", err)
	}

	//save results
	saveJobs(res.Jobs)

	log.Printf("✅ Email sent with %d job(s).", len(res.Jobs))
}

func reportToTelegram(cfg *config.Config, jobs []source.Job) {
	tg, err := reporter.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		log.Printf("⚠️ Telegram reporting skipped: %v", err)
		return
	}
	log.Println("🤖 Telegram Bot initialized.")

	for _, job := range jobs {
		if err := tg.SendJob(job); err != nil {
			log.Printf("⚠️ Failed to send job to Telegram: %v", err)
		}
		//1 second delay to avoid 429
		time.Sleep(1 * time.Second)
	}

	if err := tg.SendStatus(fmt.Sprintf("Found %d job(s) this run.", len(jobs))); err != nil {
		log.Printf("⚠️ Failed to send status to Telegram: %v", err)
	}
}

// saveJobs writes the accepted jobs of this run to a dated JSON file under
// logs/. A run artifact only; it is never read back.
func saveJobs(jobs []source.Job) {
	if len(jobs) == 0 {
		log.Println("ℹ️ No jobs to save.")
		return
	}

	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create logs directory: %v", err)
		return
	}

	//gen filename: job-alert-YYYY-MM-DD.json
	filename := fmt.Sprintf("job-alert-%s.json", time.Now().Format("2006-01-02"))
	filePath := filepath.Join(logDir, filename)

	data, err := json.MarshalIndent(jobs, "", " ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal jobs to JSON: %v", err)
		return
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write logs file: %v", err)
		return
	}

	log.Printf("📁 Results saved to %s", filePath)
}
