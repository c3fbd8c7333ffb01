package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DanRulev/kotoba.git/internal/dataset"
	"github.com/DanRulev/kotoba.git/internal/models"
	"github.com/DanRulev/kotoba.git/internal/quiz"
	mock_service "github.com/DanRulev/kotoba.git/internal/service/mock"
	"github.com/DanRulev/kotoba.git/internal/shuffle"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewDeckService_Builtin(t *testing.T) {
	t.Parallel()

	deck, err := NewDeckService(context.Background(), nil, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, models.DeckStats{CardCount: 10, PuzzleCount: 5}, deck.Stats())
}

func TestNewDeckService_Repository(t *testing.T) {
	t.Parallel()

	validPuzzle := models.Puzzle{ID: 1, Question: "水?", Choices: []string{"Fire", "Water"}, Answer: 1}

	tests := []struct {
		name    string
		f       func(*mock_service.MockDeckRepositoryI)
		want    models.DeckStats
		wantErr error
	}{
		{
			name: "success",
			f: func(m *mock_service.MockDeckRepositoryI) {
				m.EXPECT().Cards(gomock.Any()).Return([]models.Card{{Front: "猫", Back: "Cat"}}, nil)
				m.EXPECT().Puzzles(gomock.Any()).Return([]models.Puzzle{validPuzzle}, nil)
			},
			want: models.DeckStats{CardCount: 1, PuzzleCount: 1},
		},
		{
			name: "error: cards fail",
			f: func(m *mock_service.MockDeckRepositoryI) {
				m.EXPECT().Cards(gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
		{
			name: "error: puzzles fail",
			f: func(m *mock_service.MockDeckRepositoryI) {
				m.EXPECT().Cards(gomock.Any()).Return([]models.Card{{Front: "猫", Back: "Cat"}}, nil)
				m.EXPECT().Puzzles(gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
		{
			name: "error: empty dataset",
			f: func(m *mock_service.MockDeckRepositoryI) {
				m.EXPECT().Cards(gomock.Any()).Return([]models.Card{}, nil)
				m.EXPECT().Puzzles(gomock.Any()).Return([]models.Puzzle{validPuzzle}, nil)
			},
			wantErr: ErrEmptyDataset,
		},
		{
			name: "error: blank card",
			f: func(m *mock_service.MockDeckRepositoryI) {
				m.EXPECT().Cards(gomock.Any()).Return([]models.Card{{Front: "猫"}}, nil)
				m.EXPECT().Puzzles(gomock.Any()).Return([]models.Puzzle{validPuzzle}, nil)
			},
			wantErr: errors.New("flashcards"),
		},
		{
			name: "error: answer out of range",
			f: func(m *mock_service.MockDeckRepositoryI) {
				bad := validPuzzle
				bad.Answer = 5
				m.EXPECT().Cards(gomock.Any()).Return([]models.Card{{Front: "猫", Back: "Cat"}}, nil)
				m.EXPECT().Puzzles(gomock.Any()).Return([]models.Puzzle{bad}, nil)
			},
			wantErr: quiz.ErrInvalidPuzzle,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_service.NewMockDeckRepositoryI(ctrl)
			tt.f(repo)

			deck, err := NewDeckService(context.Background(), repo, zap.NewNop())
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, deck)
				if errors.Is(tt.wantErr, ErrEmptyDataset) || errors.Is(tt.wantErr, quiz.ErrInvalidPuzzle) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Contains(t, err.Error(), tt.wantErr.Error())
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, deck.Stats())
		})
	}
}

func TestDeckS_NewHostIsFreshEachTime(t *testing.T) {
	t.Parallel()

	svc, err := InitServices(context.Background(), nil, zap.NewNop())
	require.NoError(t, err)
	svc.WithSource(shuffle.NewSeededSource(4))

	a, err := svc.NewHost()
	require.NoError(t, err)
	b, err := svc.NewHost()
	require.NoError(t, err)

	a.Flashcards().Next()

	assert.Equal(t, 0, b.Flashcards().Position())
	assert.Equal(t, len(dataset.Cards()), b.Flashcards().Total())
}
