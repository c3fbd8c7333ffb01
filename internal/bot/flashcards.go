package bot

import (
	"github.com/DanRulev/kotoba.git/internal/flashcard"
	"github.com/DanRulev/kotoba.git/internal/host"
	"github.com/DanRulev/kotoba.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	cbFlashPrev      = "fc_prev"
	cbFlashNext      = "fc_next"
	cbFlashFlip      = "fc_flip"
	cbFlashShuffle   = "fc_shuffle"
	cbFlashReshuffle = "fc_reshuffle"
	cbFlashReset     = "fc_reset"
)

type FlashcardT struct {
	bot      BotSender
	sessions *cache.Cache
	service  ServiceI
	log      *zap.Logger
}

func NewFlashcardTAPI(bot BotSender, sessions *cache.Cache, service ServiceI, log *zap.Logger) *FlashcardT {
	return &FlashcardT{
		bot:      bot,
		sessions: sessions,
		service:  service,
		log:      log,
	}
}

func (t *FlashcardT) sendFlashcards(message *tgbotapi.Message, userID int64) {
	var snap flashcard.Snapshot
	err := withHost(t.sessions, t.service, userID, func(h *host.Host) {
		h.SetMode(host.ModeFlashcards)
		snap = h.Flashcards().Snapshot()
	})
	if err != nil {
		t.log.Warn("failed to open flashcards", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "❌ Could not open the flashcards. Try again later."))
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, flashcardText(snap))
	msg.ReplyMarkup = flashcardKeyboard(snap)

	sendMessage(t.bot, t.log, msg)
}

func (t *FlashcardT) handleFlashcardCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		t.log.Warn("callback without message", zap.String("query_id", query.ID))
		return
	}

	userID := query.From.ID

	var (
		snap  flashcard.Snapshot
		known = true
	)
	err := withHost(t.sessions, t.service, userID, func(h *host.Host) {
		h.SetMode(host.ModeFlashcards)
		nav := h.Flashcards()

		switch query.Data {
		case cbFlashPrev:
			nav.Prev()
		case cbFlashNext:
			nav.Next()
		case cbFlashFlip:
			nav.Flip()
			nav.Spring().Settle()
		case cbFlashShuffle:
			nav.ToggleShuffle()
		case cbFlashReshuffle:
			nav.Reshuffle()
		case cbFlashReset:
			nav.Reset()
		default:
			known = false
		}

		snap = nav.Snapshot()
	})
	if err != nil {
		t.log.Warn("failed to load session", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Could not load your session."))
		return
	}

	if !known {
		t.log.Warn("unknown flashcard callback", zap.String("data", query.Data))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(query.Message.Chat.ID, "❌ UNKNOWN COMMAND"))
		return
	}

	editMsg := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, flashcardText(snap))
	editMsg.ReplyMarkup = flashcardKeyboard(snap)

	sendMessage(t.bot, t.log, editMsg)
}
