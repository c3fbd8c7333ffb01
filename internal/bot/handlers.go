package bot

import (
	"fmt"
	"strings"

	"github.com/DanRulev/kotoba.git/internal/host"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonFlashcards = "🃏 Flashcards"
	ButtonQuiz       = "🧠 Quiz"
	ButtonProgress   = "📊 Progress"
	ButtonHelp       = "ℹ️ Help"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /start")
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🤖 Konnichiwa! I help you learn Japanese vocabulary.\n\n" +
		"✨ What I can do:\n" +
		"• 🃏 Flip through flashcards\n" +
		"• 🧠 Quiz you on kanji and kana\n" +
		"• 📝 Replay the questions you missed\n\n" +
		"Pick a screen below to begin!"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = t.generateMenuKeyboard()

	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonFlashcards),
			tgbotapi.NewKeyboardButton(ButtonQuiz),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonProgress),
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	stats := t.service.Stats()

	helpText := fmt.Sprintf(`
📚 Commands:
/start — open the main menu
/help — this message

🎯 Buttons:
• "Flashcards" — %d cards, flip to see the reading
• "Quiz" — %d questions, retry mistakes until you get them
• "Progress" — where you are in each screen
`, stats.CardCount, stats.PuzzleCount)

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}
	userID := message.From.ID

	switch message.Text {
	case ButtonFlashcards:
		t.cards.sendFlashcards(message, userID)
	case ButtonQuiz:
		t.quiz.sendQuiz(message, userID)
	case ButtonProgress:
		t.sendProgress(message, userID)
	case ButtonHelp:
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "I didn't get that. Use the buttons below.")
		msg.ReplyMarkup = t.generateMenuKeyboard()
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) sendProgress(message *tgbotapi.Message, userID int64) {
	var snap host.Snapshot
	if err := withHost(t.sessions, t.service, userID, func(h *host.Host) {
		snap = h.Snapshot()
	}); err != nil {
		t.log.Warn("failed to load session", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "❌ Could not load your progress."))
		return
	}

	var sb strings.Builder
	sb.WriteString("📊 Your progress\n\n")
	fmt.Fprintf(&sb, "🃏 Flashcards: card %d of %d (shuffle %s)\n",
		snap.Flashcards.Position+1, snap.Flashcards.Total, strings.ToLower(onOff(snap.Flashcards.Shuffle)))
	fmt.Fprintf(&sb, "%s %.0f%%\n\n", progressBar(snap.Flashcards.Progress), snap.Flashcards.Progress)
	fmt.Fprintf(&sb, "🧠 Quiz: %d of %d completed\n", snap.Quiz.Progress.Current, snap.Quiz.Progress.Total)
	fmt.Fprintf(&sb, "%s %.0f%%\n", progressBar(snap.Quiz.Progress.Percent), snap.Quiz.Progress.Percent)
	if snap.Quiz.IncorrectCount > 0 {
		fmt.Fprintf(&sb, "Mistakes to review: %d\n", snap.Quiz.IncorrectCount)
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, sb.String())
	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}

	if query.From == nil {
		t.log.Warn("callback without sender", zap.String("query_id", query.ID))
		return
	}

	data := query.Data

	switch {
	case strings.HasPrefix(data, "fc_"):
		t.cards.handleFlashcardCallbackQuery(query)
	case strings.HasPrefix(data, "qz_"):
		t.quiz.handleQuizCallbackQuery(query)
	default:
		t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("user_id", query.From.ID))
	}
}
