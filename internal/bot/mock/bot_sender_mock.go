package mock_bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

type MockBot struct {
	SentMessages []tgbotapi.Chattable
	Requests     []tgbotapi.Chattable
}

func (m *MockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.SentMessages = append(m.SentMessages, c)
	return tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}}, nil
}

func (m *MockBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	m.Requests = append(m.Requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func ClearSentMessages(bot *MockBot) {
	bot.SentMessages = nil
	bot.Requests = nil
}

// LastEdit returns the most recent in-place edit, if any.
func LastEdit(bot *MockBot) (tgbotapi.EditMessageTextConfig, bool) {
	for i := len(bot.SentMessages) - 1; i >= 0; i-- {
		if edit, ok := bot.SentMessages[i].(tgbotapi.EditMessageTextConfig); ok {
			return edit, true
		}
	}
	return tgbotapi.EditMessageTextConfig{}, false
}
