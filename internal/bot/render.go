package bot

import (
	"fmt"
	"strings"

	"github.com/DanRulev/kotoba.git/internal/flashcard"
	"github.com/DanRulev/kotoba.git/internal/quiz"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const progressWidth = 10

func progressBar(percent float64) string {
	filled := int(percent/100*progressWidth + 0.5)
	filled = max(0, min(progressWidth, filled))
	return strings.Repeat("▓", filled) + strings.Repeat("░", progressWidth-filled)
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}

func flashcardText(s flashcard.Snapshot) string {
	var sb strings.Builder

	sb.WriteString("🃏 Japanese Flashcards\n")
	fmt.Fprintf(&sb, "Shuffle: %s\n", onOff(s.Shuffle))
	fmt.Fprintf(&sb, "%s Card %d of %d\n\n", progressBar(s.Progress), s.Position+1, s.Total)

	if s.Flipped {
		fmt.Fprintf(&sb, "🔙 %s", s.Card.Back)
	} else {
		fmt.Fprintf(&sb, "🔜 %s", s.Card.Front)
	}

	sb.WriteString("\n\nTap 🔄 Flip to turn the card")
	return sb.String()
}

func flashcardKeyboard(s flashcard.Snapshot) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	top := []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("🔀 Shuffle: "+onOff(s.Shuffle), cbFlashShuffle),
	}
	if s.Shuffle {
		top = append(top, tgbotapi.NewInlineKeyboardButtonData("🎲 Reshuffle", cbFlashReshuffle))
	}
	rows = append(rows, top)

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔄 Flip", cbFlashFlip),
	))

	nav := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	if s.HasPrev {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("← Previous", cbFlashPrev))
	}
	if s.HasNext {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Next →", cbFlashNext))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	if s.IsLast {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Reset to First Card", cbFlashReset),
		))
	}

	return &tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func quizText(s quiz.Snapshot) string {
	var sb strings.Builder

	if s.ReviewMode {
		sb.WriteString("📝 Review\n")
	} else {
		sb.WriteString("🧠 Japanese Quiz\n")
	}
	fmt.Fprintf(&sb, "Question %d of %d\n", s.Progress.Position, s.Progress.Total)
	fmt.Fprintf(&sb, "%s Completed: %d/%d\n", progressBar(s.Progress.Percent), s.Progress.Current, s.Progress.Total)
	if s.IncorrectCount > 0 {
		fmt.Fprintf(&sb, "Mistakes to review: %d\n", s.IncorrectCount)
	}

	fmt.Fprintf(&sb, "\n❓ %s\n", s.Puzzle.Question)

	if s.Answered && s.Result != nil && s.SelectedChoice != nil {
		choice := "?"
		if c := *s.SelectedChoice; c >= 0 && c < len(s.Puzzle.Choices) {
			choice = s.Puzzle.Choices[c]
		}
		if *s.Result {
			fmt.Fprintf(&sb, "\n✅ Correct! %s", choice)
		} else {
			fmt.Fprintf(&sb, "\n❌ Incorrect: %s. Try again!", choice)
		}
	}

	if s.AllCompleted {
		sb.WriteString("\n\n🎉 All puzzles completed!")
	}

	return sb.String()
}

func quizKeyboard(s quiz.Snapshot) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	if !s.Answered {
		for i, choice := range s.Puzzle.Choices {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(choice, fmt.Sprintf("%s%d", cbQuizChoicePrefix, i)),
			))
		}
	}

	actions := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	if s.Answered && s.Result != nil && !*s.Result {
		actions = append(actions, tgbotapi.NewInlineKeyboardButtonData("🔁 Try again", cbQuizRetry))
	}
	if s.HasNext {
		actions = append(actions, tgbotapi.NewInlineKeyboardButtonData("Next ➡️", cbQuizNext))
	} else if s.Answered {
		actions = append(actions, tgbotapi.NewInlineKeyboardButtonData("🏁 Start over", cbQuizReset))
	}
	if len(actions) > 0 {
		rows = append(rows, actions)
	}

	switch {
	case s.ReviewMode:
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🚪 Exit review", cbQuizExitReview),
		))
	case s.IncorrectCount > 0:
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("📝 Review mistakes (%d)", s.IncorrectCount), cbQuizReview),
		))
	}

	return &tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}
