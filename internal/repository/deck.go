package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanRulev/kotoba.git/internal/models"
)

// ErrChoicePosition means a puzzle's choice positions do not run 0..n-1, so
// its answer index cannot be trusted.
var ErrChoicePosition = errors.New("puzzle choice positions must run 0..n-1")

type DeckR struct {
	db QueryI
}

func NewDeckRepository(db QueryI) *DeckR {
	return &DeckR{db: db}
}

func (d *DeckR) Cards(ctx context.Context) ([]models.Card, error) {
	query := `SELECT front, back FROM flashcards ORDER BY position`

	cards := make([]models.Card, 0, 16)
	if err := d.db.SelectContext(ctx, &cards, query); err != nil {
		return nil, fmt.Errorf("failed to load flashcards: %w", err)
	}

	return cards, nil
}

func (d *DeckR) Puzzles(ctx context.Context) ([]models.Puzzle, error) {
	query := `SELECT id, question, answer FROM puzzles ORDER BY position`

	puzzles := make([]models.Puzzle, 0, 16)
	if err := d.db.SelectContext(ctx, &puzzles, query); err != nil {
		return nil, fmt.Errorf("failed to load puzzles: %w", err)
	}

	if len(puzzles) == 0 {
		return puzzles, nil
	}

	choicesQuery := `SELECT puzzle_id, position, text FROM puzzle_choices ORDER BY puzzle_id, position`

	var choices []models.PuzzleChoice
	if err := d.db.SelectContext(ctx, &choices, choicesQuery); err != nil {
		return nil, fmt.Errorf("failed to load puzzle choices: %w", err)
	}

	byPuzzle := make(map[int][]string, len(puzzles))
	for _, c := range choices {
		if want := len(byPuzzle[c.PuzzleID]); c.Position != want {
			return nil, fmt.Errorf("%w: puzzle %d has position %d where %d was expected",
				ErrChoicePosition, c.PuzzleID, c.Position, want)
		}
		byPuzzle[c.PuzzleID] = append(byPuzzle[c.PuzzleID], c.Text)
	}

	for i := range puzzles {
		puzzles[i].Choices = byPuzzle[puzzles[i].ID]
	}

	return puzzles, nil
}

func (d *DeckR) Stats(ctx context.Context) (models.DeckStats, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM flashcards) AS card_count,
		(SELECT COUNT(*) FROM puzzles) AS puzzle_count`

	var stats models.DeckStats
	if err := d.db.GetContext(ctx, &stats, query); err != nil {
		return models.DeckStats{}, fmt.Errorf("failed to get deck stats: %w", err)
	}

	return stats, nil
}
