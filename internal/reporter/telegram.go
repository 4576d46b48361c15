package reporter

import (
	"fmt"
	"strings"

	"go-aisociety-jobs/internal/config"
	"go-aisociety-jobs/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// topJobsInReport caps how many postings the summary message lists
const topJobsInReport = 5

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

// SendSummary posts the integration run results after a successful publish
func (t *TelegramReporter) SendSummary(dataset models.Dataset) error {
	var b strings.Builder

	fmt.Fprintf(&b, "🎯 <b>AI &amp; Society jobs updated</b>\n")
	fmt.Fprintf(&b, "📦 Total unique: %d\n", dataset.Stats.TotalJobs)
	fmt.Fprintf(&b, "🗑 Duplicates removed: %d\n", dataset.Stats.DuplicatesRemoved)
	fmt.Fprintf(&b, "⭐ High relevance (80+): %d\n", dataset.Stats.HighRelevance)
	fmt.Fprintf(&b, "🤖 Gemini analyzed: %d\n", dataset.Stats.GeminiAnalyzed)
	fmt.Fprintf(&b, "🏠 Remote: %d\n", dataset.Stats.RemoteJobs)

	for name, count := range dataset.Stats.Sources {
		fmt.Fprintf(&b, "  • %s: %d\n", name, count)
	}

	if len(dataset.Jobs) > 0 {
		fmt.Fprintf(&b, "\n🔥 <b>Top postings</b>\n")
		limit := topJobsInReport
		if len(dataset.Jobs) < limit {
			limit = len(dataset.Jobs)
		}
		for _, job := range dataset.Jobs[:limit] {
			fmt.Fprintf(&b, "[%d] <a href=\"%s\">%s</a> @ %s\n",
				job.RelevanceScore, job.SourceURL, escapeHTML(job.Title), escapeHTML(job.Company))
		}
	}

	return t.SendMessage(b.String())
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>Pipeline Error</b>:\n%v", errReq)
	return t.SendMessage(text)
}

func escapeHTML(text string) string {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return replacer.Replace(text)
}
