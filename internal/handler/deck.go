package handler

import (
	"net/http"

	"github.com/DanRulev/kotoba.git/internal/response"
	"github.com/gin-gonic/gin"
)

type DeckHandler struct {
	service ServiceI
}

func NewDeckHandler(service ServiceI) *DeckHandler {
	return &DeckHandler{service: service}
}

// GetDeck godoc
// GET /api/v1/deck
func (h *DeckHandler) GetDeck(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Stats())
}
