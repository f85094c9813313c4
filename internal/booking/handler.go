package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/logger"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	People          int    `json:"people"`
	SpecialRequests string `json:"specialRequests"`
}

// --------------------------------------------------
// POST /api/bookings (public)
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	b, ferrs, err := h.service.Create(c.Request.Context(), CreateInput{
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		Date:            req.Date,
		Time:            req.Time,
		People:          req.People,
		SpecialRequests: req.SpecialRequests,
	})
	if ferrs.Any() {
		c.JSON(http.StatusBadRequest, gin.H{"error": ferrs.Error(), "fields": ferrs})
		return
	}
	if err != nil {
		logger.Log.Error("booking create failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, b)
}

// --------------------------------------------------
// GET /api/bookings (admin)
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		logger.Log.Error("booking list failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}
	if bookings == nil {
		bookings = []*Booking{}
	}

	c.JSON(http.StatusOK, bookings)
}

// --------------------------------------------------
// GET /api/bookings/:id (admin)
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err == ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
		return
	}

	c.JSON(http.StatusOK, b)
}

// --------------------------------------------------
// PUT/PATCH /api/bookings/:id (admin)
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var upd StatusUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	b, ferrs, err := h.service.Update(c.Request.Context(), c.Param("id"), &upd)
	if ferrs.Any() {
		c.JSON(http.StatusBadRequest, gin.H{"error": ferrs.Error(), "fields": ferrs})
		return
	}
	if err == ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	if err != nil {
		logger.Log.Error("booking update failed", "id", c.Param("id"), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking"})
		return
	}

	c.JSON(http.StatusOK, b)
}

// --------------------------------------------------
// DELETE /api/bookings/:id (admin)
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err == ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}
