package discount

import (
	"errors"
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

// --------------------------------------------------
// POST /api/send-discount (public)
// --------------------------------------------------
func (h *Handler) Send(c *gin.Context) {
	var req struct {
		Contact string `json:"contact"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	d, ferrs, err := h.service.Issue(c.Request.Context(), req.Contact)
	if ferrs.Any() {
		c.JSON(http.StatusBadRequest, gin.H{"error": ferrs.Error(), "fields": ferrs})
		return
	}
	if errors.Is(err, ErrAlreadyIssued) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		logger.Log.Error("discount issue failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send discount code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "discount code sent",
		"expiresAt": d.ExpiresAt,
	})
}

// --------------------------------------------------
// GET /api/discounts (admin)
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	discounts, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch discounts"})
		return
	}
	if discounts == nil {
		discounts = []*Discount{}
	}

	c.JSON(http.StatusOK, discounts)
}

// --------------------------------------------------
// PATCH /api/discounts/:id/use (admin)
// --------------------------------------------------
func (h *Handler) MarkUsed(c *gin.Context) {
	d, err := h.service.MarkUsed(c.Request.Context(), c.Param("id"))
	if err == ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "discount not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update discount"})
		return
	}

	c.JSON(http.StatusOK, d)
}
