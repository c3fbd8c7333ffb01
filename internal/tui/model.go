// Package tui is the terminal front-end. One Model drives one host inside
// bubbletea's update loop.
package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/DanRulev/kotoba.git/internal/host"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const frameInterval = time.Second / 60

type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type Model struct {
	host      *host.Host
	animating bool
	quitting  bool
	width     int
}

func New(h *host.Host) Model {
	return Model{host: h}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case frameMsg:
		if m.host.Flashcards().Spring().Step(frameInterval) {
			m.animating = false
			return m, nil
		}
		return m, frame()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		m.host.Toggle()
		return m, nil
	}

	if m.host.Mode() == host.ModeQuiz {
		m.handleQuizKey(key)
		return m, nil
	}
	return m.handleFlashcardKey(key)
}

func (m Model) handleFlashcardKey(key string) (tea.Model, tea.Cmd) {
	nav := m.host.Flashcards()

	switch key {
	case "left", "h":
		nav.Prev()
	case "right", "l":
		nav.Next()
	case " ", "f":
		nav.Flip()
		if !m.animating {
			m.animating = true
			return m, frame()
		}
	case "s":
		nav.ToggleShuffle()
	case "r":
		nav.Reshuffle()
	case "0":
		nav.Reset()
	}

	return m, nil
}

func (m Model) handleQuizKey(key string) {
	engine := m.host.Quiz()

	switch key {
	case "t":
		engine.TryAgain()
	case "n":
		if !engine.Advance() {
			engine.Reset()
		}
	case "R":
		engine.Reset()
	case "v":
		engine.EnterReview()
	case "x":
		engine.ExitReview()
	default:
		// Choices are numbered from 1 on screen.
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= 9 {
			engine.Choose(n - 1)
		}
	}
}

// Run blocks until the user quits or ctx is done.
func Run(ctx context.Context, h *host.Host, log *zap.Logger) error {
	p := tea.NewProgram(New(h), tea.WithAltScreen(), tea.WithContext(ctx))

	log.Debug("starting terminal ui", zap.String("mode", string(h.Mode())))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
