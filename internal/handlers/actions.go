package handlers

import (
	"net/http"

	"zero-actions/internal/actions"
	"zero-actions/internal/models"

	"github.com/labstack/echo/v4"
)

// PreviewActionHandler handles action preview requests
// @Summary Preview an action
// @Description Build the modal view-model for an action without performing it
// @Tags actions
// @Accept json
// @Produce json
// @Param request body models.PreviewActionRequest true "Card, action and device"
// @Success 200 {object} models.PreviewActionResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/actions/preview [post]
func PreviewActionHandler(registry *actions.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.PreviewActionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "Invalid request body",
			})
		}

		resp, aerr := registry.Preview(c.Request().Context(), &req)
		if aerr != nil {
			status := http.StatusBadRequest
			if aerr.Retryable {
				status = http.StatusBadGateway
			}
			return c.JSON(status, models.ErrorResponse{
				Error: aerr.Message,
				Field: aerr.Field,
				Code:  string(aerr.Code),
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// ExecuteActionHandler handles action execution requests
// @Summary Execute an action
// @Description Perform an action's server effects and return the banner plus device directives
// @Tags actions
// @Accept json
// @Produce json
// @Param request body models.ExecuteActionRequest true "Card, action, user input and request id"
// @Success 200 {object} models.ExecuteActionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ExecuteActionResponse "Downstream failure; the banner is retryable"
// @Router /api/actions/execute [post]
func ExecuteActionHandler(registry *actions.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.ExecuteActionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "Invalid request body",
			})
		}

		resp, aerr := registry.Execute(c.Request().Context(), &req)
		if aerr == nil {
			return c.JSON(http.StatusOK, resp)
		}

		switch aerr.Code {
		case actions.CodeValidationFailed, actions.CodeMissingContext, actions.CodeUnsupportedAction:
			// Rejected before any effect ran
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: aerr.Message,
				Field: aerr.Field,
				Code:  string(aerr.Code),
			})
		case actions.CodeCapabilityUnavailable:
			// The modal renders the warning banner and keeps the card;
			// this is a degraded outcome, not a protocol failure
			return c.JSON(http.StatusOK, resp)
		default:
			if resp != nil {
				return c.JSON(http.StatusBadGateway, resp)
			}
			return c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error: aerr.Message,
				Code:  string(aerr.Code),
			})
		}
	}
}

// ActionTypesHandler lists the action types this deployment can execute
// @Summary List supported action types
// @Tags actions
// @Produce json
// @Success 200 {object} map[string][]models.ActionType
// @Router /api/actions/types [get]
func ActionTypesHandler(registry *actions.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string][]models.ActionType{
			"types": registry.Supported(),
		})
	}
}
