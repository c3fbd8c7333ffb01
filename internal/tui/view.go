package tui

import (
	"fmt"
	"strings"

	"github.com/DanRulev/kotoba.git/internal/flashcard"
	"github.com/DanRulev/kotoba.git/internal/host"
	"github.com/DanRulev/kotoba.git/internal/quiz"
	"github.com/charmbracelet/lipgloss"
)

const (
	cardWidth = 36
	barWidth  = 30
)

var (
	styleTitle     = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleTab       = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("8"))
	styleTabActive = lipgloss.NewStyle().Padding(0, 2).Bold(true).Underline(true).Foreground(lipgloss.Color("14"))
	styleCard      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Align(lipgloss.Center).Padding(2, 0)
	styleFront     = lipgloss.NewStyle().Bold(true)
	styleBack      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleCorrect   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleIncorrect = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleSubtle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleBarFull   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleBarEmpty  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (m Model) View() string {
	if m.quitting {
		return "さようなら!\n"
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	if m.host.Mode() == host.ModeQuiz {
		b.WriteString(m.viewQuiz())
	} else {
		b.WriteString(m.viewFlashcards())
	}

	return b.String()
}

func (m Model) viewTabs() string {
	cards, puzzles := styleTab, styleTab
	if m.host.Mode() == host.ModeQuiz {
		puzzles = styleTabActive
	} else {
		cards = styleTabActive
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		styleTitle.Render("言葉 kotoba"),
		cards.Render("Flashcards"),
		puzzles.Render("Quiz"),
	)
}

func renderBar(percent float64, width int) string {
	filled := int(percent/100*float64(width) + 0.5)
	filled = max(0, min(width, filled))
	return styleBarFull.Render(strings.Repeat("█", filled)) +
		styleBarEmpty.Render(strings.Repeat("░", width-filled))
}

func (m Model) viewFlashcards() string {
	nav := m.host.Flashcards()
	s := nav.Snapshot()
	spring := nav.Spring()

	var b strings.Builder

	shuffle := "off"
	if s.Shuffle {
		shuffle = "on"
	}
	fmt.Fprintf(&b, "Card %d of %d   shuffle: %s\n", s.Position+1, s.Total, shuffle)
	b.WriteString(renderBar(s.Progress, barWidth))
	b.WriteString("\n\n")

	b.WriteString(renderCard(s, m.cardWidth(), spring.FrontVisible(), spring.Scale()))
	b.WriteString("\n\n")

	hints := "←/→ move  space flip  s shuffle"
	if s.Shuffle {
		hints += "  r reshuffle"
	}
	if s.IsLast {
		hints += "  0 back to first"
	}
	hints += "  tab quiz  q quit"
	b.WriteString(styleSubtle.Render(hints))

	return b.String()
}

// cardWidth shrinks the card on narrow terminals.
func (m Model) cardWidth() int {
	if m.width > 0 && m.width-4 < cardWidth {
		return max(10, m.width-4)
	}
	return cardWidth
}

// renderCard draws the visible face squeezed horizontally by scale, which is
// how the flip reads in a terminal.
func renderCard(s flashcard.Snapshot, full int, front bool, scale float64) string {
	width := max(2, int(float64(full)*scale))

	text := styleFront.Render(s.Card.Front)
	if !front {
		text = styleBack.Render(s.Card.Back)
	}
	if width < lipgloss.Width(text)+2 {
		text = ""
	}

	return styleCard.Width(width).Render(text)
}

func (m Model) viewQuiz() string {
	s := m.host.Quiz().Snapshot()

	var b strings.Builder

	if s.ReviewMode {
		b.WriteString(styleBack.Render("Review mistakes"))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Question %d of %d   completed %d/%d\n",
		s.Progress.Position, s.Progress.Total, s.Progress.Current, s.Progress.Total)
	b.WriteString(renderBar(s.Progress.Percent, barWidth))
	b.WriteString("\n\n")

	b.WriteString(styleFront.Render(s.Puzzle.Question))
	b.WriteString("\n\n")

	for i, choice := range s.Puzzle.Choices {
		line := fmt.Sprintf("%d. %s", i+1, choice)
		if s.SelectedChoice != nil && *s.SelectedChoice == i && s.Result != nil {
			if *s.Result {
				line = styleCorrect.Render(line + "  ✓")
			} else {
				line = styleIncorrect.Render(line + "  ✗")
			}
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(quizFeedback(s))
	b.WriteString(styleSubtle.Render(quizHints(s)))

	return b.String()
}

func quizFeedback(s quiz.Snapshot) string {
	var b strings.Builder
	if s.Result != nil {
		if *s.Result {
			b.WriteString(styleCorrect.Render("Correct!"))
		} else {
			b.WriteString(styleIncorrect.Render("Incorrect. Try again!"))
		}
		b.WriteString("\n")
	}
	if s.AllCompleted {
		b.WriteString(styleCorrect.Render("All puzzles completed!"))
		b.WriteString("\n")
	}
	if s.IncorrectCount > 0 {
		fmt.Fprintf(&b, "Mistakes to review: %d\n", s.IncorrectCount)
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	return b.String()
}

func quizHints(s quiz.Snapshot) string {
	var hints []string
	if !s.Answered {
		hints = append(hints, fmt.Sprintf("1-%d choose", len(s.Puzzle.Choices)))
	}
	if s.Result != nil && !*s.Result {
		hints = append(hints, "t try again")
	}
	if s.HasNext {
		hints = append(hints, "n next")
	} else {
		hints = append(hints, "n start over")
	}
	if s.ReviewMode {
		hints = append(hints, "x exit review")
	} else if s.IncorrectCount > 0 {
		hints = append(hints, "v review")
	}
	hints = append(hints, "R reset", "tab flashcards", "q quit")
	return strings.Join(hints, "  ")
}
