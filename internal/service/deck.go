package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanRulev/kotoba.git/internal/dataset"
	"github.com/DanRulev/kotoba.git/internal/host"
	"github.com/DanRulev/kotoba.git/internal/models"
	"github.com/DanRulev/kotoba.git/internal/quiz"
	"github.com/DanRulev/kotoba.git/internal/shuffle"
	"github.com/DanRulev/kotoba.git/pkg/validator"
	"go.uber.org/zap"
)

var ErrEmptyDataset = errors.New("dataset has no flashcards or no puzzles")

// DeckS holds the immutable dataset and builds one host per player.
type DeckS struct {
	cards   []models.Card
	puzzles []models.Puzzle
	src     shuffle.Source
	log     *zap.Logger
}

func NewDeckService(ctx context.Context, repo DeckRepositoryI, log *zap.Logger) (*DeckS, error) {
	cards, puzzles, err := loadDeck(ctx, repo)
	if err != nil {
		log.Error("failed to load deck", zap.Error(err))
		return nil, err
	}

	if err := validateDeck(cards, puzzles); err != nil {
		log.Error("invalid deck", zap.Error(err))
		return nil, err
	}

	log.Info("deck loaded", zap.Int("cards", len(cards)), zap.Int("puzzles", len(puzzles)))

	return &DeckS{
		cards:   cards,
		puzzles: puzzles,
		src:     shuffle.NewCryptoSource(),
		log:     log,
	}, nil
}

func loadDeck(ctx context.Context, repo DeckRepositoryI) ([]models.Card, []models.Puzzle, error) {
	if repo == nil {
		return dataset.Cards(), dataset.Puzzles(), nil
	}

	cards, err := repo.Cards(ctx)
	if err != nil {
		return nil, nil, err
	}

	puzzles, err := repo.Puzzles(ctx)
	if err != nil {
		return nil, nil, err
	}

	return cards, puzzles, nil
}

func validateDeck(cards []models.Card, puzzles []models.Puzzle) error {
	if len(cards) == 0 || len(puzzles) == 0 {
		return fmt.Errorf("%w: %d cards, %d puzzles", ErrEmptyDataset, len(cards), len(puzzles))
	}

	if err := validator.ValidateSlice(cards); err != nil {
		return fmt.Errorf("flashcards: %w", err)
	}

	if err := validator.ValidateSlice(puzzles); err != nil {
		return fmt.Errorf("puzzles: %w", err)
	}

	for i, p := range puzzles {
		if err := quiz.Validate(p); err != nil {
			return fmt.Errorf("puzzle %d: %w", i, err)
		}
	}

	return nil
}

// WithSource swaps the randomness used by new sessions.
func (d *DeckS) WithSource(src shuffle.Source) *DeckS {
	d.src = src
	return d
}

// NewHost builds a fresh pair of screens over the loaded deck.
func (d *DeckS) NewHost() (*host.Host, error) {
	h, err := host.New(d.cards, d.puzzles, d.src)
	if err != nil {
		d.log.Warn("failed to create session", zap.Error(err))
		return nil, err
	}
	return h, nil
}

func (d *DeckS) Stats() models.DeckStats {
	return models.DeckStats{
		CardCount:   len(d.cards),
		PuzzleCount: len(d.puzzles),
	}
}
