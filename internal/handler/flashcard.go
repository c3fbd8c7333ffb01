package handler

import (
	"net/http"

	"github.com/DanRulev/kotoba.git/internal/flashcard"
	"github.com/DanRulev/kotoba.git/internal/host"
	"github.com/DanRulev/kotoba.git/internal/response"
	"github.com/gin-gonic/gin"
)

type FlashcardHandler struct{}

func NewFlashcardHandler() *FlashcardHandler {
	return &FlashcardHandler{}
}

// apply runs op on the caller's navigator and replies with the new snapshot.
// Any flashcard request also makes flashcards the active screen.
func (h *FlashcardHandler) apply(c *gin.Context, op func(n *flashcard.Navigator)) {
	var snap flashcard.Snapshot
	if !withHost(c, func(hs *host.Host) {
		hs.SetMode(host.ModeFlashcards)
		nav := hs.Flashcards()
		if op != nil {
			op(nav)
		}
		snap = nav.Snapshot()
	}) {
		return
	}
	response.Success(c, http.StatusOK, snap)
}

// GetFlashcards godoc
// GET /api/v1/flashcards
func (h *FlashcardHandler) GetFlashcards(c *gin.Context) {
	h.apply(c, nil)
}

// Next godoc
// POST /api/v1/flashcards/next
func (h *FlashcardHandler) Next(c *gin.Context) {
	h.apply(c, (*flashcard.Navigator).Next)
}

// Prev godoc
// POST /api/v1/flashcards/prev
func (h *FlashcardHandler) Prev(c *gin.Context) {
	h.apply(c, (*flashcard.Navigator).Prev)
}

// Reset godoc
// POST /api/v1/flashcards/reset
func (h *FlashcardHandler) Reset(c *gin.Context) {
	h.apply(c, (*flashcard.Navigator).Reset)
}

// Flip godoc
// POST /api/v1/flashcards/flip
func (h *FlashcardHandler) Flip(c *gin.Context) {
	h.apply(c, (*flashcard.Navigator).Flip)
}

// Shuffle godoc
// POST /api/v1/flashcards/shuffle
func (h *FlashcardHandler) Shuffle(c *gin.Context) {
	h.apply(c, (*flashcard.Navigator).ToggleShuffle)
}

// Reshuffle godoc
// POST /api/v1/flashcards/reshuffle
func (h *FlashcardHandler) Reshuffle(c *gin.Context) {
	h.apply(c, (*flashcard.Navigator).Reshuffle)
}
