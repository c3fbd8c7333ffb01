// Package quiz runs the multiple-choice puzzle screen: question order,
// answer checking, retries and the completed/incorrect bookkeeping.
package quiz

import (
	"errors"
	"fmt"
	"sort"

	"github.com/DanRulev/kotoba.git/internal/models"
	"github.com/DanRulev/kotoba.git/internal/shuffle"
)

var (
	ErrNoPuzzles     = errors.New("quiz: no puzzles")
	ErrInvalidPuzzle = errors.New("quiz: invalid puzzle")
)

type set map[int]struct{}

func (s set) has(i int) bool {
	_, ok := s[i]
	return ok
}

func (s set) sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

type Engine struct {
	puzzles []models.Puzzle
	src     shuffle.Source

	order    []int
	position int

	answered bool
	selected *int
	result   *bool

	completed set
	incorrect set

	review          bool
	reviewCompleted set
}

// Progress is what a quiz screen shows above the question.
type Progress struct {
	Current  int     `json:"current"`
	Total    int     `json:"total"`
	Position int     `json:"position"`
	Percent  float64 `json:"percent"`
}

type Snapshot struct {
	Puzzle         models.Puzzle `json:"puzzle"`
	PuzzleIndex    int           `json:"puzzle_index"`
	Answered       bool          `json:"answered"`
	SelectedChoice *int          `json:"selected_choice"`
	Result         *bool         `json:"result"`
	HasNext        bool          `json:"has_next"`
	IsLast         bool          `json:"is_last"`
	Progress       Progress      `json:"progress"`
	AllCompleted   bool          `json:"all_completed"`
	ReviewMode     bool          `json:"review_mode"`
	Completed      []int         `json:"completed"`
	Incorrect      []int         `json:"incorrect"`
	IncorrectCount int           `json:"incorrect_count"`
}

// NewEngine validates the puzzles and starts a shuffled run.
func NewEngine(puzzles []models.Puzzle, src shuffle.Source) (*Engine, error) {
	if len(puzzles) == 0 {
		return nil, ErrNoPuzzles
	}
	for i, p := range puzzles {
		if err := Validate(p); err != nil {
			return nil, fmt.Errorf("puzzle %d: %w", i, err)
		}
	}

	e := &Engine{
		puzzles: puzzles,
		src:     src,
	}
	e.Reset()

	return e, nil
}

// Validate checks the invariants a puzzle must hold to be playable.
func Validate(p models.Puzzle) error {
	if len(p.Choices) < 2 {
		return fmt.Errorf("%w: need at least 2 choices, got %d", ErrInvalidPuzzle, len(p.Choices))
	}
	if p.Answer < 0 || p.Answer >= len(p.Choices) {
		return fmt.Errorf("%w: answer %d out of range [0,%d)", ErrInvalidPuzzle, p.Answer, len(p.Choices))
	}
	return nil
}

// Choose submits an answer for the current puzzle. A second submission
// before TryAgain or Advance is ignored. It reports whether the choice was
// recorded.
func (e *Engine) Choose(choice int) bool {
	if e.answered {
		return false
	}

	idx := e.PuzzleIndex()
	correct := e.puzzles[idx].IsCorrect(choice)

	e.answered = true
	e.selected = &choice
	e.result = &correct

	if correct {
		e.completed[idx] = struct{}{}
		delete(e.incorrect, idx)
		if e.review {
			e.reviewCompleted[idx] = struct{}{}
		}
	} else {
		e.incorrect[idx] = struct{}{}
	}

	return true
}

// TryAgain clears a wrong answer so the same puzzle can be answered again.
func (e *Engine) TryAgain() bool {
	if !e.answered || e.result == nil || *e.result {
		return false
	}
	e.clearAnswer()
	return true
}

// Advance moves to the next puzzle. It reports false at the last one.
func (e *Engine) Advance() bool {
	if e.position >= len(e.order)-1 {
		return false
	}
	e.position++
	e.clearAnswer()
	return true
}

// Reset starts a fresh shuffled run over every puzzle.
func (e *Engine) Reset() {
	e.order = shuffle.Perm(e.src, len(e.puzzles))
	e.position = 0
	e.clearAnswer()
	e.completed = make(set)
	e.incorrect = make(set)
	e.review = false
	e.reviewCompleted = make(set)
}

// EnterReview starts a run over the puzzles currently marked incorrect. It
// reports false, changing nothing, when there is nothing to review.
func (e *Engine) EnterReview() bool {
	if len(e.incorrect) == 0 {
		return false
	}

	e.order = shuffle.Of(e.src, e.incorrect.sorted())
	e.position = 0
	e.clearAnswer()
	e.review = true
	e.reviewCompleted = make(set)

	return true
}

// ExitReview leaves review mode by starting a fresh full run.
func (e *Engine) ExitReview() {
	e.Reset()
}

func (e *Engine) clearAnswer() {
	e.answered = false
	e.selected = nil
	e.result = nil
}

func (e *Engine) PuzzleIndex() int {
	return e.order[e.position]
}

func (e *Engine) CurrentPuzzle() models.Puzzle {
	return e.puzzles[e.PuzzleIndex()]
}

func (e *Engine) Position() int {
	return e.position
}

func (e *Engine) Total() int {
	return len(e.puzzles)
}

func (e *Engine) Order() []int {
	return append([]int(nil), e.order...)
}

func (e *Engine) Answered() bool {
	return e.answered
}

// SelectedChoice returns the submitted choice, if any.
func (e *Engine) SelectedChoice() (int, bool) {
	if e.selected == nil {
		return 0, false
	}
	return *e.selected, true
}

// LastResult returns the verdict of the submitted choice, if any.
func (e *Engine) LastResult() (bool, bool) {
	if e.result == nil {
		return false, false
	}
	return *e.result, true
}

func (e *Engine) InReview() bool {
	return e.review
}

func (e *Engine) Completed() []int {
	return e.completed.sorted()
}

func (e *Engine) Incorrect() []int {
	return e.incorrect.sorted()
}

func (e *Engine) IsCompleted(idx int) bool {
	return e.completed.has(idx)
}

func (e *Engine) IsIncorrect(idx int) bool {
	return e.incorrect.has(idx)
}

// ProgressPercent is the share of puzzles answered correctly at least once.
// In review mode it is the share of the review run answered correctly.
func (e *Engine) ProgressPercent() float64 {
	done, total := e.progressCounts()
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total) * 100
}

func (e *Engine) progressCounts() (int, int) {
	if e.review {
		return len(e.reviewCompleted), len(e.order)
	}
	return len(e.completed), len(e.puzzles)
}

func (e *Engine) Snapshot() Snapshot {
	done, total := e.progressCounts()
	last := e.position == len(e.order)-1

	snap := Snapshot{
		Puzzle:         e.CurrentPuzzle(),
		PuzzleIndex:    e.PuzzleIndex(),
		Answered:       e.answered,
		HasNext:        !last,
		IsLast:         last,
		AllCompleted:   done == total,
		ReviewMode:     e.review,
		Completed:      e.Completed(),
		Incorrect:      e.Incorrect(),
		IncorrectCount: len(e.incorrect),
		Progress: Progress{
			Current:  done,
			Total:    total,
			Position: e.position + 1,
			Percent:  e.ProgressPercent(),
		},
	}
	if e.selected != nil {
		v := *e.selected
		snap.SelectedChoice = &v
	}
	if e.result != nil {
		v := *e.result
		snap.Result = &v
	}

	return snap
}
