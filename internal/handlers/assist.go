package handlers

import (
	"net/http"

	"zero-actions/internal/capability"
	"zero-actions/internal/models"

	"github.com/labstack/echo/v4"
)

// SummarizeHandler handles card summary requests
// @Summary Summarize a card
// @Description One or two sentence summary of the card; provider reports which assist arm answered
// @Tags assist
// @Accept json
// @Produce json
// @Param request body models.SummarizeRequest true "Card to summarize"
// @Success 200 {object} models.SummarizeResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/assist/summarize [post]
func SummarizeHandler(assist capability.Assist) echo.HandlerFunc {
	if assist == nil {
		assist = capability.CannedAssist{}
	}
	return func(c echo.Context) error {
		var req models.SummarizeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "Invalid request body",
			})
		}

		summary, err := assist.Summarize(c.Request().Context(), &req.Card)
		if err != nil {
			// The canned arm never errors
			summary, _ = capability.CannedAssist{}.Summarize(c.Request().Context(), &req.Card)
		}

		return c.JSON(http.StatusOK, models.SummarizeResponse{
			Summary:  summary,
			Provider: assist.Provider(),
		})
	}
}

// SuggestRepliesHandler handles reply suggestion requests
// @Summary Suggest replies
// @Description Three short reply suggestions in the requested tone
// @Tags assist
// @Accept json
// @Produce json
// @Param request body models.SuggestRepliesRequest true "Card and tone"
// @Success 200 {object} models.SuggestRepliesResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/assist/reply [post]
func SuggestRepliesHandler(assist capability.Assist) echo.HandlerFunc {
	if assist == nil {
		assist = capability.CannedAssist{}
	}
	return func(c echo.Context) error {
		var req models.SuggestRepliesRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "Invalid request body",
			})
		}

		suggestions, err := assist.SuggestReplies(c.Request().Context(), &req.Card, req.Tone)
		if err != nil {
			suggestions, _ = capability.CannedAssist{}.SuggestReplies(c.Request().Context(), &req.Card, req.Tone)
		}

		return c.JSON(http.StatusOK, models.SuggestRepliesResponse{
			Suggestions: suggestions,
			Provider:    assist.Provider(),
		})
	}
}
