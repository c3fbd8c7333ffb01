package models

type ModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=flashcards quiz"`
}

// ChooseRequest carries the tapped choice. A pointer so that choice 0 still
// counts as present.
type ChooseRequest struct {
	Choice *int `json:"choice" binding:"required"`
}
