package handlers

import (
	"errors"
	"net/http"

	"zero-actions/internal/models"
	"zero-actions/internal/purchases"

	"github.com/labstack/echo/v4"
)

// SchedulePurchaseHandler handles purchase scheduling requests
// @Summary Schedule a purchase
// @Description Schedule a purchase for a future time; re-posting for the same user and email returns the existing record
// @Tags purchases
// @Accept json
// @Produce json
// @Param request body models.SchedulePurchaseRequest true "Purchase to schedule"
// @Success 200 {object} models.Purchase "An active purchase already exists for this user and email"
// @Success 201 {object} models.Purchase
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/purchases [post]
func SchedulePurchaseHandler(svc *purchases.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		if svc == nil {
			return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Error: "Purchase scheduling requires a database",
			})
		}

		var req models.SchedulePurchaseRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "Invalid request body",
			})
		}

		purchase, created, err := svc.Schedule(c.Request().Context(), req)
		if err != nil {
			var verr *purchases.ValidationError
			if errors.As(err, &verr) {
				return c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error: verr.Message,
					Field: verr.Field,
					Code:  "VALIDATION_FAILED",
				})
			}
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "Failed to schedule purchase",
			})
		}

		if !created {
			return c.JSON(http.StatusOK, purchase)
		}
		return c.JSON(http.StatusCreated, purchase)
	}
}

// ListPurchasesHandler handles requests for a user's purchases
// @Summary List a user's purchases
// @Description All scheduled, completed, failed and cancelled purchases for one user
// @Tags purchases
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} models.PurchaseListResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/purchases/user/{userId} [get]
func ListPurchasesHandler(svc *purchases.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		if svc == nil {
			return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Error: "Purchase scheduling requires a database",
			})
		}

		list, err := svc.ListByUser(c.Request().Context(), c.Param("userId"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "Failed to list purchases",
			})
		}
		return c.JSON(http.StatusOK, list)
	}
}

// CancelPurchaseHandler handles purchase cancellation requests
// @Summary Cancel a scheduled purchase
// @Description Cancel a purchase that has not started processing yet
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase id"
// @Success 204 "Cancelled"
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/purchases/{id}/cancel [post]
func CancelPurchaseHandler(svc *purchases.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		if svc == nil {
			return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Error: "Purchase scheduling requires a database",
			})
		}

		err := svc.Cancel(c.Request().Context(), c.Param("id"))
		switch {
		case err == nil:
			return c.NoContent(http.StatusNoContent)
		case errors.Is(err, purchases.ErrNotFound):
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Purchase not found",
			})
		case errors.Is(err, purchases.ErrNotCancellable):
			return c.JSON(http.StatusConflict, models.ErrorResponse{
				Error: "Purchase is no longer cancellable",
			})
		default:
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "Failed to cancel purchase",
			})
		}
	}
}
