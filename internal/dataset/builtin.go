// Package dataset holds the compiled-in Japanese deck used when no database
// is configured.
package dataset

import "github.com/DanRulev/kotoba.git/internal/models"

var cards = []models.Card{
	{Front: "私 (わたし)", Back: "I/me"},
	{Front: "ありがとう", Back: "Thank you"},
	{Front: "猫 (ねこ)", Back: "Cat"},
	{Front: "おはよう", Back: "Good morning"},
	{Front: "水 (みず)", Back: "Water"},
	{Front: "犬 (いぬ)", Back: "Dog"},
	{Front: "本 (ほん)", Back: "Book"},
	{Front: "日本 (にほん)", Back: "Japan"},
	{Front: "食べる (たべる)", Back: "To eat"},
	{Front: "飲む (のむ)", Back: "To drink"},
}

var puzzles = []models.Puzzle{
	{
		ID:       1,
		Question: "What is the meaning of '水' (mizu)?",
		Choices:  []string{"Fire", "Water", "Tree", "Mountain"},
		Answer:   1,
	},
	{
		ID:       2,
		Question: "What is the hiragana for 'neko' (cat)?",
		Choices:  []string{"ねこ", "いぬ", "さる", "とり"},
		Answer:   0,
	},
	{
		ID:       3,
		Question: "Which kanji means 'tree'?",
		Choices:  []string{"山", "水", "木", "火"},
		Answer:   2,
	},
	{
		ID:       4,
		Question: "What is the romaji for 'ありがとう'?",
		Choices:  []string{"arigatou", "konnichiwa", "sayonara", "ohayou"},
		Answer:   0,
	},
	{
		ID:       5,
		Question: "What is the meaning of '火' (hi)?",
		Choices:  []string{"Water", "Tree", "Fire", "Earth"},
		Answer:   2,
	},
}

// Cards returns a copy of the built-in flashcards.
func Cards() []models.Card {
	return append([]models.Card(nil), cards...)
}

// Puzzles returns a deep copy of the built-in puzzles.
func Puzzles() []models.Puzzle {
	out := make([]models.Puzzle, len(puzzles))
	for i, p := range puzzles {
		p.Choices = append([]string(nil), p.Choices...)
		out[i] = p
	}
	return out
}
