package service

//go:generate mockgen -source=service.go -destination=mock/service_mock.go

import (
	"context"

	"github.com/DanRulev/kotoba.git/internal/models"
	"go.uber.org/zap"
)

type DeckRepositoryI interface {
	Cards(ctx context.Context) ([]models.Card, error)
	Puzzles(ctx context.Context) ([]models.Puzzle, error)
}

type Service struct {
	*DeckS
}

// InitServices loads the deck once. A nil repo selects the built-in deck.
func InitServices(ctx context.Context, repo DeckRepositoryI, log *zap.Logger) (*Service, error) {
	deck, err := NewDeckService(ctx, repo, log)
	if err != nil {
		return nil, err
	}

	return &Service{
		DeckS: deck,
	}, nil
}
