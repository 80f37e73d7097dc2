package payment

import (
	"net/http"
	"strconv"

	"github.com/BryanJericho/courtly-web-sub000/internal/apperr"
	"github.com/BryanJericho/courtly-web-sub000/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service    Service
	production bool
}

func NewHandler(service Service, production bool) *Handler {
	return &Handler{service: service, production: production}
}

// Pay godoc
// @Summary      Start payment
// @Description  Creates a hosted-payment session for a booking and returns the snap token and redirect URL.
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  Session
// @Failure      404        {object}  api.ErrorResponse
// @Failure      422        {object}  api.ErrorResponse
// @Failure      502        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID}/pay [post]
func (h *Handler) Pay(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	session, err := h.service.CreateSession(c.Request.Context(), userID, bookingID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, session)
}

// Notification godoc
// @Summary      Payment provider webhook
// @Description  Receives asynchronous transaction-status notifications. A non-200 response makes the provider redeliver.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      Notification  true  "Provider notification"
// @Success      200      {object}  api.SuccessResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorDetailResponse
// @Router       /api/payments/notification [post]
func (h *Handler) Notification(c *gin.Context) {
	var n Notification
	if err := c.ShouldBindJSON(&n); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.HandleNotification(c.Request.Context(), n); err != nil {
		// The provider retries on 5xx; never acknowledge an update that
		// was not durably applied.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to process notification",
			"details": apperr.Message(err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SimulateApprove godoc
// @Summary      Simulate payment approval
// @Description  Sandbox-only shortcut that marks a booking paid without the real provider.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      SimulateApproveRequest  true  "Order to approve"
// @Success      200      {object}  api.SuccessResponse
// @Failure      403      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /api/payments/simulate-approve [post]
func (h *Handler) SimulateApprove(c *gin.Context) {
	if h.production {
		c.JSON(http.StatusForbidden, gin.H{"error": "simulation is disabled in production"})
		return
	}

	var req SimulateApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.SimulateApprove(c.Request.Context(), req.OrderID); err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
