package bot

import (
	"context"
	"strconv"

	"github.com/DanRulev/kotoba.git/internal/host"
	"github.com/DanRulev/kotoba.git/internal/models"
	"github.com/DanRulev/kotoba.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=telegram.go -destination=mock/service_mock.go

type ServiceI interface {
	NewHost() (*host.Host, error)
	Stats() models.DeckStats
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type TelegramAPI struct {
	api      *tgbotapi.BotAPI
	bot      BotSender
	sessions *cache.Cache
	service  ServiceI
	log      *zap.Logger

	cards *FlashcardT
	quiz  *QuizT
}

func NewTelegramAPI(botToken, env string, service ServiceI, sessions *cache.Cache, log *zap.Logger) (*TelegramAPI, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	api.Debug = env == "development"

	t := newTelegram(api, service, sessions, log)
	t.api = api
	return t, nil
}

func newTelegram(bot BotSender, service ServiceI, sessions *cache.Cache, log *zap.Logger) *TelegramAPI {
	return &TelegramAPI{
		bot:      bot,
		sessions: sessions,
		service:  service,
		log:      log,
		cards:    NewFlashcardTAPI(bot, sessions, service, log),
		quiz:     NewQuizTAPI(bot, sessions, service, log),
	}
}

// Start consumes updates until ctx is done.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.api.GetUpdatesChan(u)
	t.log.Info("telegram bot started", zap.String("username", t.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.handleUpdate(update)
		}
	}
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			t.handleMessage(update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(update.CallbackQuery)
	}
}

func sessionKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// withHost runs fn against the player's host, creating it on first contact.
func withHost(sessions *cache.Cache, service ServiceI, userID int64, fn func(h *host.Host)) error {
	s, err := sessions.GetOrCreate(sessionKey(userID), service.NewHost)
	if err != nil {
		return err
	}
	s.Do(fn)
	return nil
}

func sendMessage(bot BotSender, log *zap.Logger, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}
