package handlers

import (
	"net/http"
	"strings"

	"zero-actions/internal/cards"
	"zero-actions/internal/models"

	"github.com/labstack/echo/v4"
)

// IngestCardHandler handles raw email ingest requests
// @Summary Ingest a raw email
// @Description Parse an RFC 822 message into a triage card with suggested actions. Send the raw message as message/rfc822, or JSON {"raw": "..."}
// @Tags cards
// @Accept json
// @Produce json
// @Param request body models.IngestCardRequest true "Raw message"
// @Success 200 {object} models.EmailCard
// @Failure 400 {object} models.ErrorResponse
// @Router /api/cards/ingest [post]
func IngestCardHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		reader := c.Request().Body
		if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), "message/rfc822") {
			var req models.IngestCardRequest
			if err := c.Bind(&req); err != nil {
				return c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error: "Invalid request body",
				})
			}
			if strings.TrimSpace(req.Raw) == "" {
				return c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error: "raw message is required",
					Field: "raw",
				})
			}
			card, err := cards.FromEmail(strings.NewReader(req.Raw))
			if err != nil {
				return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
			}
			return c.JSON(http.StatusOK, card)
		}

		card, err := cards.FromEmail(reader)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, card)
	}
}

// EnrichCardHandler handles card enrichment requests
// @Summary Enrich a card
// @Description Extract facts from the card text and lay out its action chips at the reported container width
// @Tags cards
// @Accept json
// @Produce json
// @Param request body models.EnrichCardRequest true "Card and container geometry"
// @Success 200 {object} models.EnrichCardResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/cards/enrich [post]
func EnrichCardHandler(enricher *cards.Enricher) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.EnrichCardRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "Invalid request body",
			})
		}
		if strings.TrimSpace(req.Card.ID) == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "card id is required",
				Field: "card.id",
			})
		}

		enrichment := enricher.Enrich(&req.Card, req.ContainerWidth, req.CharWidth)

		chips := make([]models.ChipPlacement, 0, len(enrichment.Chips))
		for _, chip := range enrichment.Chips {
			chips = append(chips, models.ChipPlacement{
				ActionID: chip.ActionID,
				Label:    chip.Label,
				X:        chip.X,
				Y:        chip.Y,
				Width:    chip.Width,
				Height:   chip.Height,
				Row:      chip.Row,
			})
		}

		return c.JSON(http.StatusOK, models.EnrichCardResponse{
			Facts:  enrichment.Facts,
			Chips:  chips,
			Width:  enrichment.Width,
			Height: enrichment.Height,
			Cached: enrichment.Cached,
		})
	}
}
