// Package flashcard holds the state of the flashcard screen: cursor,
// optional shuffle order and the flip flag of the card on display.
package flashcard

import (
	"errors"

	"github.com/DanRulev/kotoba.git/internal/animation"
	"github.com/DanRulev/kotoba.git/internal/models"
	"github.com/DanRulev/kotoba.git/internal/shuffle"
)

var ErrEmptyDeck = errors.New("flashcard: deck is empty")

type Navigator struct {
	cards []models.Card
	src   shuffle.Source

	shuffled bool
	order    []int
	position int

	flipped bool
	spring  *animation.Spring
}

// Snapshot is what a renderer needs to draw the screen.
type Snapshot struct {
	Card         models.Card `json:"card"`
	Position     int         `json:"position"`
	Total        int         `json:"total"`
	LogicalIndex int         `json:"logical_index"`
	Shuffle      bool        `json:"shuffle"`
	Order        []int       `json:"order,omitempty"`
	Flipped      bool        `json:"flipped"`
	Progress     float64     `json:"progress"`
	HasPrev      bool        `json:"has_prev"`
	HasNext      bool        `json:"has_next"`
	IsLast       bool        `json:"is_last"`
}

func NewNavigator(cards []models.Card, src shuffle.Source) (*Navigator, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyDeck
	}

	return &Navigator{
		cards:  cards,
		src:    src,
		spring: animation.NewSpring(),
	}, nil
}

// ToggleShuffle switches shuffle mode. Turning it on draws a new order,
// turning it off drops the order. Both rewind to the first position.
func (n *Navigator) ToggleShuffle() {
	if n.shuffled {
		n.shuffled = false
		n.order = nil
	} else {
		n.shuffled = true
		n.order = shuffle.Perm(n.src, len(n.cards))
	}
	n.position = 0
}

// Reshuffle draws a new order. It does nothing unless shuffle is on.
func (n *Navigator) Reshuffle() {
	if !n.shuffled {
		return
	}
	n.order = shuffle.Perm(n.src, len(n.cards))
	n.position = 0
}

func (n *Navigator) Prev() {
	n.position = max(0, n.position-1)
}

func (n *Navigator) Next() {
	n.position = min(len(n.cards)-1, n.position+1)
}

func (n *Navigator) Reset() {
	n.position = 0
}

// Flip turns the card over. The flag belongs to the navigator, not to a
// card, and no navigation call clears it.
func (n *Navigator) Flip() {
	n.flipped = !n.flipped
	if n.flipped {
		n.spring.SetTarget(1)
	} else {
		n.spring.SetTarget(0)
	}
}

func (n *Navigator) Flipped() bool {
	return n.flipped
}

// Spring exposes the flip transition to renderers that animate it.
func (n *Navigator) Spring() *animation.Spring {
	return n.spring
}

func (n *Navigator) Position() int {
	return n.position
}

func (n *Navigator) Total() int {
	return len(n.cards)
}

func (n *Navigator) Shuffled() bool {
	return n.shuffled
}

// Order returns a copy of the shuffle order, or nil when not shuffled.
func (n *Navigator) Order() []int {
	if n.order == nil {
		return nil
	}
	return append([]int(nil), n.order...)
}

func (n *Navigator) LogicalIndex() int {
	if n.shuffled {
		return n.order[n.position]
	}
	return n.position
}

func (n *Navigator) CurrentCard() models.Card {
	return n.cards[n.LogicalIndex()]
}

// ProgressPercent counts steps through this session's sequence, not distinct
// cards seen.
func (n *Navigator) ProgressPercent() float64 {
	return float64(n.position+1) / float64(len(n.cards)) * 100
}

func (n *Navigator) Snapshot() Snapshot {
	last := len(n.cards) - 1
	return Snapshot{
		Card:         n.CurrentCard(),
		Position:     n.position,
		Total:        len(n.cards),
		LogicalIndex: n.LogicalIndex(),
		Shuffle:      n.shuffled,
		Order:        n.Order(),
		Flipped:      n.flipped,
		Progress:     n.ProgressPercent(),
		HasPrev:      n.position > 0,
		HasNext:      n.position < last,
		IsLast:       n.position == last,
	}
}
