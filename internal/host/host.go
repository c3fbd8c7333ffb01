// Package host owns the two screens and the flag that selects between them.
package host

import (
	"fmt"

	"github.com/DanRulev/kotoba.git/internal/flashcard"
	"github.com/DanRulev/kotoba.git/internal/models"
	"github.com/DanRulev/kotoba.git/internal/quiz"
	"github.com/DanRulev/kotoba.git/internal/shuffle"
)

type Mode string

const (
	ModeFlashcards Mode = "flashcards"
	ModeQuiz       Mode = "quiz"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFlashcards, ModeQuiz:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

// Host keeps both screens alive while the other one is shown. Switching mode
// never touches screen state.
type Host struct {
	cards   []models.Card
	puzzles []models.Puzzle
	src     shuffle.Source

	mode       Mode
	flashcards *flashcard.Navigator
	quiz       *quiz.Engine
}

type Snapshot struct {
	Mode       Mode               `json:"mode"`
	Flashcards flashcard.Snapshot `json:"flashcards"`
	Quiz       quiz.Snapshot      `json:"quiz"`
}

func New(cards []models.Card, puzzles []models.Puzzle, src shuffle.Source) (*Host, error) {
	nav, err := flashcard.NewNavigator(cards, src)
	if err != nil {
		return nil, err
	}

	engine, err := quiz.NewEngine(puzzles, src)
	if err != nil {
		return nil, err
	}

	return &Host{
		cards:      cards,
		puzzles:    puzzles,
		src:        src,
		mode:       ModeFlashcards,
		flashcards: nav,
		quiz:       engine,
	}, nil
}

func (h *Host) SetMode(m Mode) {
	h.mode = m
}

func (h *Host) Mode() Mode {
	return h.mode
}

// Toggle flips between the two screens and returns the new mode.
func (h *Host) Toggle() Mode {
	if h.mode == ModeQuiz {
		h.mode = ModeFlashcards
	} else {
		h.mode = ModeQuiz
	}
	return h.mode
}

func (h *Host) Flashcards() *flashcard.Navigator {
	return h.flashcards
}

func (h *Host) Quiz() *quiz.Engine {
	return h.quiz
}

// Remount discards one screen and builds it again from scratch, as if it had
// been unmounted while inactive.
func (h *Host) Remount(m Mode) error {
	switch m {
	case ModeFlashcards:
		nav, err := flashcard.NewNavigator(h.cards, h.src)
		if err != nil {
			return err
		}
		h.flashcards = nav
	case ModeQuiz:
		engine, err := quiz.NewEngine(h.puzzles, h.src)
		if err != nil {
			return err
		}
		h.quiz = engine
	default:
		return fmt.Errorf("unknown mode %q", m)
	}
	return nil
}

func (h *Host) Snapshot() Snapshot {
	return Snapshot{
		Mode:       h.mode,
		Flashcards: h.flashcards.Snapshot(),
		Quiz:       h.quiz.Snapshot(),
	}
}
