package models

// Puzzle is a multiple-choice question. Answer indexes into Choices.
type Puzzle struct {
	ID       int      `db:"id" json:"id"`
	Question string   `db:"question" json:"question" validate:"required"`
	Choices  []string `db:"-" json:"choices" validate:"min=2,dive,required"`
	Answer   int      `db:"answer" json:"answer" validate:"min=0"`
}

// PuzzleChoice is one row of the puzzle_choices table.
type PuzzleChoice struct {
	PuzzleID int    `db:"puzzle_id"`
	Position int    `db:"position"`
	Text     string `db:"text"`
}

// IsCorrect reports whether choice is the right answer. Out-of-range choices
// are never correct.
func (p Puzzle) IsCorrect(choice int) bool {
	if choice < 0 || choice >= len(p.Choices) {
		return false
	}
	return choice == p.Answer
}
