package bot

import (
	"errors"
	"testing"

	mock_bot "github.com/DanRulev/kotoba.git/internal/bot/mock"
	"github.com/DanRulev/kotoba.git/internal/host"
	"github.com/DanRulev/kotoba.git/internal/models"
	"github.com/DanRulev/kotoba.git/internal/shuffle"
	"github.com/DanRulev/kotoba.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	testCards = []models.Card{
		{Front: "猫 (ねこ)", Back: "Cat"},
		{Front: "犬 (いぬ)", Back: "Dog"},
	}
	testPuzzles = []models.Puzzle{
		{ID: 1, Question: "What is the meaning of '水' (mizu)?", Choices: []string{"Fire", "Water"}, Answer: 1},
	}
)

func newTestHost() (*host.Host, error) {
	return host.New(testCards, testPuzzles, shuffle.NewSeededSource(1))
}

func newTelegramMock(t *testing.T, setupMock func(*mock_bot.MockServiceI)) (*TelegramAPI, *mock_bot.MockBot) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService)
	}

	return newTelegram(mockBot, mockService, cache.NewCache(), zap.NewNop()), mockBot
}

func withTestHost(ms *mock_bot.MockServiceI) {
	ms.EXPECT().NewHost().DoAndReturn(newTestHost).Times(1)
}

func testMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 10,
		Chat:      &tgbotapi.Chat{ID: 123},
		From:      &tgbotapi.User{ID: 456},
		Text:      text,
	}
}

func testCallback(data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:      "cb",
		From:    &tgbotapi.User{ID: 456},
		Message: testMessage(""),
		Data:    data,
	}
}

func inlineKeyboard(t *testing.T, markup interface{}) *tgbotapi.InlineKeyboardMarkup {
	t.Helper()

	kb, ok := markup.(*tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	return kb
}

func callbackData(kb *tgbotapi.InlineKeyboardMarkup) []string {
	var out []string
	for _, row := range kb.InlineKeyboard {
		for _, b := range row {
			if b.CallbackData != nil {
				out = append(out, *b.CallbackData)
			}
		}
	}
	return out
}

func lastEdit(t *testing.T, mb *mock_bot.MockBot) tgbotapi.EditMessageTextConfig {
	t.Helper()

	edit, ok := mock_bot.LastEdit(mb)
	require.True(t, ok)
	return edit
}

func TestTelegramAPI_handleMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		f          func(*mock_bot.MockServiceI)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "flashcards button opens the first card",
			text: ButtonFlashcards,
			f:    withTestHost,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, "Card 1 of 2")
				assert.Contains(t, msg.Text, "猫 (ねこ)")
				assert.Contains(t, msg.Text, "Shuffle: Off")

				kb := inlineKeyboard(t, msg.ReplyMarkup)
				assert.Equal(t, []string{cbFlashShuffle, cbFlashFlip, cbFlashNext}, callbackData(kb))
			},
		},
		{
			name: "quiz button shows the question with choices",
			text: ButtonQuiz,
			f:    withTestHost,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, "Question 1 of 1")
				assert.Contains(t, msg.Text, "mizu")

				kb := inlineKeyboard(t, msg.ReplyMarkup)
				require.Len(t, kb.InlineKeyboard, 2)
				assert.Equal(t, "Fire", kb.InlineKeyboard[0][0].Text)
				assert.Equal(t, []string{"qz_choice_0", "qz_choice_1"}, callbackData(kb))
			},
		},
		{
			name: "progress reports both screens",
			text: ButtonProgress,
			f:    withTestHost,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, "card 1 of 2")
				assert.Contains(t, msg.Text, "0 of 1 completed")
			},
		},
		{
			name: "help uses deck stats",
			text: ButtonHelp,
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Stats().Return(models.DeckStats{CardCount: 10, PuzzleCount: 5})
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, "10 cards")
				assert.Contains(t, msg.Text, "5 questions")
			},
		},
		{
			name: "session creation fails",
			text: ButtonFlashcards,
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().NewHost().Return(nil, errors.New("empty deck"))
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, "Could not open the flashcards")
				assert.Nil(t, msg.ReplyMarkup)
			},
		},
		{
			name: "unknown text shows the menu",
			text: "konnichiwa",
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				_, ok = msg.ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
				assert.True(t, ok)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tg, mb := newTelegramMock(t, tt.f)
			tg.handleMessage(testMessage(tt.text))
			tt.assertFunc(t, mb)
		})
	}
}

func TestTelegramAPI_handleMessageWithoutSender(t *testing.T) {
	t.Parallel()

	tg, mb := newTelegramMock(t, nil)

	msg := testMessage(ButtonQuiz)
	msg.From = nil
	tg.handleMessage(msg)

	assert.Empty(t, mb.SentMessages)
}

func TestTelegramAPI_handleCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		command string
		f       func(*mock_bot.MockServiceI)
		want    string
		menu    bool
	}{
		{name: "start", command: "/start", want: "Konnichiwa", menu: true},
		{
			name:    "help",
			command: "/help",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Stats().Return(models.DeckStats{CardCount: 2, PuzzleCount: 1})
			},
			want: "2 cards",
		},
		{name: "unknown", command: "/settings", want: "Unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tg, mb := newTelegramMock(t, tt.f)

			msg := testMessage(tt.command)
			msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(tt.command)}}
			tg.handleUpdate(tgbotapi.Update{Message: msg})

			require.Len(t, mb.SentMessages, 1)
			sent, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
			require.True(t, ok)
			assert.Contains(t, sent.Text, tt.want)
			if tt.menu {
				_, ok := sent.ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
				assert.True(t, ok)
			}
		})
	}
}

func TestTelegramAPI_flashcardCallbacks(t *testing.T) {
	t.Parallel()

	tg, mb := newTelegramMock(t, withTestHost)

	tg.handleUpdate(tgbotapi.Update{CallbackQuery: testCallback(cbFlashNext)})
	require.Len(t, mb.Requests, 1)
	edit := lastEdit(t, mb)
	assert.Equal(t, 10, edit.MessageID)
	assert.Contains(t, edit.Text, "Card 2 of 2")
	assert.Contains(t, edit.Text, "犬 (いぬ)")
	assert.Equal(t, []string{cbFlashShuffle, cbFlashFlip, cbFlashPrev, cbFlashReset}, callbackData(edit.ReplyMarkup))

	tg.handleUpdate(tgbotapi.Update{CallbackQuery: testCallback(cbFlashFlip)})
	edit = lastEdit(t, mb)
	assert.Contains(t, edit.Text, "Dog")

	tg.handleUpdate(tgbotapi.Update{CallbackQuery: testCallback(cbFlashReset)})
	edit = lastEdit(t, mb)
	assert.Contains(t, edit.Text, "Card 1 of 2")
	// Navigation keeps the card turned over.
	assert.Contains(t, edit.Text, "Cat")

	tg.handleUpdate(tgbotapi.Update{CallbackQuery: testCallback(cbFlashShuffle)})
	edit = lastEdit(t, mb)
	assert.Contains(t, edit.Text, "Shuffle: On")
	assert.Contains(t, callbackData(edit.ReplyMarkup), cbFlashReshuffle)

	tg.handleUpdate(tgbotapi.Update{CallbackQuery: testCallback(cbFlashReshuffle)})
	edit = lastEdit(t, mb)
	assert.Contains(t, edit.Text, "Card 1 of 2")

	assert.Len(t, mb.Requests, 5)
	assert.Len(t, mb.SentMessages, 5)
}

func TestTelegramAPI_quizCallbacks(t *testing.T) {
	t.Parallel()

	tg, mb := newTelegramMock(t, withTestHost)

	tg.handleCallbackQuery(testCallback("qz_choice_0"))
	edit := lastEdit(t, mb)
	assert.Contains(t, edit.Text, "Incorrect: Fire")
	assert.Contains(t, edit.Text, "Mistakes to review: 1")
	assert.Equal(t, []string{cbQuizRetry, cbQuizReset, cbQuizReview}, callbackData(edit.ReplyMarkup))

	tg.handleCallbackQuery(testCallback(cbQuizRetry))
	edit = lastEdit(t, mb)
	assert.NotContains(t, edit.Text, "Incorrect")
	assert.Contains(t, callbackData(edit.ReplyMarkup), "qz_choice_1")

	tg.handleCallbackQuery(testCallback("qz_choice_1"))
	edit = lastEdit(t, mb)
	assert.Contains(t, edit.Text, "Correct! Water")
	assert.Contains(t, edit.Text, "All puzzles completed")
	assert.NotContains(t, edit.Text, "Mistakes to review")

	// Next on the last question starts a new game.
	tg.handleCallbackQuery(testCallback(cbQuizNext))
	edit = lastEdit(t, mb)
	assert.Contains(t, edit.Text, "Completed: 0/1")
	assert.Equal(t, []string{"qz_choice_0", "qz_choice_1"}, callbackData(edit.ReplyMarkup))
}

func TestTelegramAPI_quizReview(t *testing.T) {
	t.Parallel()

	tg, mb := newTelegramMock(t, withTestHost)

	tg.handleCallbackQuery(testCallback("qz_choice_0"))
	tg.handleCallbackQuery(testCallback(cbQuizReview))
	edit := lastEdit(t, mb)
	assert.Contains(t, edit.Text, "Review")
	assert.Contains(t, callbackData(edit.ReplyMarkup), cbQuizExitReview)

	tg.handleCallbackQuery(testCallback(cbQuizExitReview))
	edit = lastEdit(t, mb)
	assert.Contains(t, edit.Text, "Japanese Quiz")
	assert.NotContains(t, callbackData(edit.ReplyMarkup), cbQuizExitReview)
}

func TestTelegramAPI_unknownCallbacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		f        func(*mock_bot.MockServiceI)
		wantSent int
	}{
		{name: "unrouted prefix", data: "main_menu"},
		{name: "unknown flashcard action", data: "fc_spin", f: withTestHost, wantSent: 1},
		{name: "malformed choice", data: "qz_choice_x", f: withTestHost, wantSent: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tg, mb := newTelegramMock(t, tt.f)
			tg.handleCallbackQuery(testCallback(tt.data))

			assert.Len(t, mb.Requests, 1)
			require.Len(t, mb.SentMessages, tt.wantSent)
			_, edited := mock_bot.LastEdit(mb)
			assert.False(t, edited)
		})
	}
}

func TestTelegramAPI_sessionsArePerUser(t *testing.T) {
	t.Parallel()

	tg, mb := newTelegramMock(t, func(ms *mock_bot.MockServiceI) {
		ms.EXPECT().NewHost().DoAndReturn(newTestHost).Times(2)
	})

	tg.handleCallbackQuery(testCallback(cbFlashNext))

	other := testCallback(cbFlashFlip)
	other.From = &tgbotapi.User{ID: 789}
	tg.handleCallbackQuery(other)

	edit := lastEdit(t, mb)
	assert.Contains(t, edit.Text, "Card 1 of 2")
	assert.Equal(t, 2, tg.sessions.Len())
}

func TestApplyQuizAction(t *testing.T) {
	t.Parallel()

	h, err := newTestHost()
	require.NoError(t, err)
	engine := h.Quiz()

	assert.True(t, applyQuizAction(engine, "qz_choice_7"))
	assert.True(t, engine.Answered())
	last, ok := engine.LastResult()
	require.True(t, ok)
	assert.False(t, last)

	assert.False(t, applyQuizAction(engine, "qz_choice_"))
	assert.False(t, applyQuizAction(engine, "qz_unknown"))
}
