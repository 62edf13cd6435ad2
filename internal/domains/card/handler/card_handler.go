package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/colpuxase-art/poketerps-sub000/internal/domains/card/model"
	"github.com/colpuxase-art/poketerps-sub000/internal/domains/card/service"
)

// CardHandler serves the mini-app API. The web client expects bare
// JSON (an array of cards, a card or null) rather than an envelope.
type CardHandler struct {
	service service.CardService
}

func NewCardHandler(s service.CardService) *CardHandler {
	return &CardHandler{service: s}
}

// ListCards GET /api/cards
func (h *CardHandler) ListCards(c *gin.Context) {
	cards, err := h.service.List(c.Request.Context(), nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cards"})
		return
	}
	c.JSON(http.StatusOK, model.NewCardResponseList(cards))
}

// GetFeatured GET /api/featured. The body is null when nothing is featured.
func (h *CardHandler) GetFeatured(c *gin.Context) {
	card, err := h.service.GetFeatured(c.Request.Context())
	if err != nil {
		if errors.Is(err, model.ErrNoFeatured) {
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load featured card"})
		return
	}
	resp := model.NewCardResponse(card)
	c.JSON(http.StatusOK, resp)
}
