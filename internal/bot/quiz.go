package bot

import (
	"strconv"
	"strings"

	"github.com/DanRulev/kotoba.git/internal/host"
	"github.com/DanRulev/kotoba.git/internal/quiz"
	"github.com/DanRulev/kotoba.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	cbQuizChoicePrefix = "qz_choice_"
	cbQuizRetry        = "qz_retry"
	cbQuizNext         = "qz_next"
	cbQuizReset        = "qz_reset"
	cbQuizReview       = "qz_review"
	cbQuizExitReview   = "qz_exit_review"
)

type QuizT struct {
	bot      BotSender
	sessions *cache.Cache
	service  ServiceI
	log      *zap.Logger
}

func NewQuizTAPI(bot BotSender, sessions *cache.Cache, service ServiceI, log *zap.Logger) *QuizT {
	return &QuizT{
		bot:      bot,
		sessions: sessions,
		service:  service,
		log:      log,
	}
}

func (t *QuizT) sendQuiz(message *tgbotapi.Message, userID int64) {
	var snap quiz.Snapshot
	err := withHost(t.sessions, t.service, userID, func(h *host.Host) {
		h.SetMode(host.ModeQuiz)
		snap = h.Quiz().Snapshot()
	})
	if err != nil {
		t.log.Warn("failed to open quiz", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "❌ Could not open the quiz. Try again later."))
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, quizText(snap))
	msg.ReplyMarkup = quizKeyboard(snap)

	sendMessage(t.bot, t.log, msg)
}

// applyQuizAction runs one callback against the engine. It reports false for
// data it does not understand.
func applyQuizAction(engine *quiz.Engine, data string) bool {
	switch {
	case strings.HasPrefix(data, cbQuizChoicePrefix):
		choice, err := strconv.Atoi(strings.TrimPrefix(data, cbQuizChoicePrefix))
		if err != nil {
			return false
		}
		engine.Choose(choice)
	case data == cbQuizRetry:
		engine.TryAgain()
	case data == cbQuizNext:
		if !engine.Advance() {
			engine.Reset()
		}
	case data == cbQuizReset:
		engine.Reset()
	case data == cbQuizReview:
		engine.EnterReview()
	case data == cbQuizExitReview:
		engine.ExitReview()
	default:
		return false
	}
	return true
}

func (t *QuizT) handleQuizCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		t.log.Warn("callback without message", zap.String("query_id", query.ID))
		return
	}

	userID := query.From.ID

	var (
		snap  quiz.Snapshot
		known bool
	)
	err := withHost(t.sessions, t.service, userID, func(h *host.Host) {
		h.SetMode(host.ModeQuiz)
		known = applyQuizAction(h.Quiz(), query.Data)
		snap = h.Quiz().Snapshot()
	})
	if err != nil {
		t.log.Warn("failed to load session", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Could not load your session."))
		return
	}

	if !known {
		t.log.Warn("unknown quiz callback", zap.String("data", query.Data))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(query.Message.Chat.ID, "❌ UNKNOWN COMMAND"))
		return
	}

	editMsg := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, quizText(snap))
	editMsg.ReplyMarkup = quizKeyboard(snap)

	sendMessage(t.bot, t.log, editMsg)
}
