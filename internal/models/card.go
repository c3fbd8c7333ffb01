package models

// Card is a single flashcard. Its identity is its index in the deck.
type Card struct {
	Front string `db:"front" json:"front" validate:"required"`
	Back  string `db:"back" json:"back" validate:"required"`
}

type DeckStats struct {
	CardCount   int `db:"card_count" json:"card_count"`
	PuzzleCount int `db:"puzzle_count" json:"puzzle_count"`
}
