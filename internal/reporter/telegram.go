package reporter

import (
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/harshtiwariiii/job-finder-bot/internal/source"
)

// TelegramReporter is the optional second delivery channel. Failures here
// are reported to the caller but never abort the run; email stays the
// channel of record.
type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (t *TelegramReporter) sendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

// SendJob posts one job as an HTML message. Same link precondition as the
// digest: no usable link, no message.
func (t *TelegramReporter) SendJob(job source.Job) error {
	if !job.HasValidLink() {
		return nil
	}

	title := job.Title
	if title == "" {
		title = "N/A"
	}
	loc := job.Location
	if loc == "" {
		loc = "N/A"
	}

	text := fmt.Sprintf(
		"🔥 <b>%s</b>\n"+
			"🏢 %s\n"+
			"📍 %s\n"+
			"📅 %s\n"+
			"🔗 <a href=\"%s\">Apply Now</a>",
		html.EscapeString(title),
		html.EscapeString(job.CompanyName),
		html.EscapeString(loc),
		html.EscapeString(job.DetectedExtensions.PostedAt),
		html.EscapeString(job.BestLink()),
	)
	return t.sendMessage(text)
}

func (t *TelegramReporter) SendStatus(message string) error {
	return t.sendMessage("ℹ️ " + html.EscapeString(message))
}
