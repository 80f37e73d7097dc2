package venue

import (
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

// Create godoc
// @Summary      Create venue
// @Description  Registers a new venue, pending admin approval.
// @Tags         venues
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateVenueRequest  true  "Venue data"
// @Success      201      {object}  Venue
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /venues [post]
func (h *Handler) Create(c *gin.Context) {
	ownerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := h.service.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusCreated, v)
}

// ListActive godoc
// @Summary      List active venues
// @Tags         venues
// @Produce      json
// @Success      200  {array}   Venue
// @Failure      500  {object}  api.ErrorResponse
// @Router       /venues [get]
func (h *Handler) ListActive(c *gin.Context) {
	venues, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, venues)
}

// ListMine godoc
// @Summary      List my venues
// @Tags         venues
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Venue
// @Failure      500  {object}  api.ErrorResponse
// @Router       /my/venues [get]
func (h *Handler) ListMine(c *gin.Context) {
	ownerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	venues, err := h.service.ListMine(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, venues)
}

// Update godoc
// @Summary      Update venue
// @Tags         venues
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        venueID  path      int                 true  "Venue ID"
// @Param        request  body      UpdateVenueRequest  true  "Venue data"
// @Success      200      {object}  Venue
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      422      {object}  api.ErrorResponse
// @Router       /venues/{venueID} [put]
func (h *Handler) Update(c *gin.Context) {
	actorID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	venueID, err := strconv.Atoi(c.Param("venueID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid venue ID"})
		return
	}

	var req UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := h.service.Update(c.Request.Context(), actorID, venueID, req)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, v)
}

// Approve godoc
// @Summary      Approve venue
// @Description  Admin-only transition from pending_approval to active.
// @Tags         venues
// @Security     BearerAuth
// @Produce      json
// @Param        venueID  path      int  true  "Venue ID"
// @Success      200      {object}  Venue
// @Failure      404      {object}  api.ErrorResponse
// @Failure      422      {object}  api.ErrorResponse
// @Router       /admin/venues/{venueID}/approve [post]
func (h *Handler) Approve(c *gin.Context) {
	venueID, err := strconv.Atoi(c.Param("venueID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid venue ID"})
		return
	}

	v, err := h.service.Approve(c.Request.Context(), venueID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, v)
}

// Deactivate godoc
// @Summary      Deactivate venue
// @Tags         venues
// @Security     BearerAuth
// @Produce      json
// @Param        venueID  path      int  true  "Venue ID"
// @Success      200      {object}  Venue
// @Failure      404      {object}  api.ErrorResponse
// @Failure      422      {object}  api.ErrorResponse
// @Router       /admin/venues/{venueID}/deactivate [post]
func (h *Handler) Deactivate(c *gin.Context) {
	venueID, err := strconv.Atoi(c.Param("venueID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid venue ID"})
		return
	}

	v, err := h.service.Deactivate(c.Request.Context(), venueID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, v)
}
