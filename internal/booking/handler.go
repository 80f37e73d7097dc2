package booking

import (
	"context"
	"net/http"
	"strconv"

	"github.com/BryanJericho/courtly-web-sub000/internal/apperr"
	"github.com/BryanJericho/courtly-web-sub000/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CheckAvailability godoc
// @Summary      Check slot availability
// @Description  Reports whether a court slot is free on a given date.
// @Tags         bookings
// @Produce      json
// @Param        courtID   path      int     true  "Court ID"
// @Param        date      query     string  true  "Date (YYYY-MM-DD)"
// @Param        start_time query    string  true  "Start time (HH:MM)"
// @Param        duration  query     int     false "Duration in hours"  default(1)
// @Success      200       {object}  AvailabilityResponse
// @Failure      400       {object}  api.ErrorResponse
// @Failure      500       {object}  api.ErrorResponse
// @Router       /courts/{courtID}/availability [get]
func (h *Handler) CheckAvailability(c *gin.Context) {
	courtID, err := strconv.Atoi(c.Param("courtID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid court ID"})
		return
	}

	date := c.Query("date")
	startTime := c.Query("start_time")
	duration, err := strconv.Atoi(c.DefaultQuery("duration", "1"))
	if err != nil || duration < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be a positive integer"})
		return
	}

	conflict, endTime, err := h.service.HasConflict(c.Request.Context(), courtID, date, startTime, duration)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, AvailabilityResponse{
		Available: !conflict,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	})
}

// Create godoc
// @Summary      Create booking
// @Description  Reserves a slot on a court; booking and payment start pending.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBookingRequest  true  "Booking data"
// @Success      201      {object}  Booking
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) Create(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusCreated, b)
}

// Get godoc
// @Summary      Get booking
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  Booking
// @Failure      404        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID} [get]
func (h *Handler) Get(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	role, _ := auth.GetUserRole(c)

	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	b, err := h.service.Get(c.Request.Context(), userID, role, bookingID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, b)
}

// ListMine godoc
// @Summary      List my bookings
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Booking
// @Failure      500  {object}  api.ErrorResponse
// @Router       /bookings [get]
func (h *Handler) ListMine(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	bookings, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ListByVenue godoc
// @Summary      List venue bookings
// @Description  Lists all bookings against the venue's courts. Venue owner only.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        venueID  path      int  true  "Venue ID"
// @Success      200      {array}   Booking
// @Failure      422      {object}  api.ErrorResponse
// @Router       /venues/{venueID}/bookings [get]
func (h *Handler) ListByVenue(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	venueID, err := strconv.Atoi(c.Param("venueID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid venue ID"})
		return
	}

	bookings, err := h.service.ListByVenue(c.Request.Context(), userID, venueID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// Confirm godoc
// @Summary      Confirm booking
// @Description  Venue owner approves a pending booking.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  Booking
// @Failure      404        {object}  api.ErrorResponse
// @Failure      422        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID}/confirm [post]
func (h *Handler) Confirm(c *gin.Context) {
	h.runTransition(c, h.service.Confirm)
}

// Reject godoc
// @Summary      Reject booking
// @Description  Venue owner rejects a pending booking.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  Booking
// @Failure      404        {object}  api.ErrorResponse
// @Failure      422        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID}/reject [post]
func (h *Handler) Reject(c *gin.Context) {
	h.runTransition(c, h.service.Reject)
}

// Cancel godoc
// @Summary      Cancel booking
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  Booking
// @Failure      404        {object}  api.ErrorResponse
// @Failure      422        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	h.runTransition(c, h.service.Cancel)
}

// Complete godoc
// @Summary      Complete booking
// @Description  User marks a confirmed booking as played after its start time.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  Booking
// @Failure      404        {object}  api.ErrorResponse
// @Failure      422        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID}/complete [post]
func (h *Handler) Complete(c *gin.Context) {
	h.runTransition(c, h.service.Complete)
}

func (h *Handler) runTransition(c *gin.Context, fn func(ctx context.Context, actorID, bookingID int) (*Booking, error)) {
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

	b, err := fn(c.Request.Context(), userID, bookingID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, b)
}
