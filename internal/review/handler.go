package review

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
// POST /api/reviews (public)
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rv, ferrs, err := h.service.Create(c.Request.Context(), in)
	if ferrs.Any() {
		c.JSON(http.StatusBadRequest, gin.H{"error": ferrs.Error(), "fields": ferrs})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, rv)
}

// --------------------------------------------------
// GET /api/reviews (public; verified only)
// --------------------------------------------------
func (h *Handler) ListPublic(c *gin.Context) {
	reviews, err := h.service.List(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reviews"})
		return
	}
	if reviews == nil {
		reviews = []*Review{}
	}

	c.JSON(http.StatusOK, reviews)
}

// --------------------------------------------------
// GET /api/reviews/summary (public)
// --------------------------------------------------
func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.service.Summarize(c.Request.Context())
	if errors.Is(err, ErrNoReviews) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		logger.Log.Error("review summary failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// --------------------------------------------------
// GET /api/admin/reviews (admin; includes unverified)
// --------------------------------------------------
func (h *Handler) ListAdmin(c *gin.Context) {
	reviews, err := h.service.List(c.Request.Context(), false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reviews"})
		return
	}
	if reviews == nil {
		reviews = []*Review{}
	}

	c.JSON(http.StatusOK, reviews)
}

// --------------------------------------------------
// PATCH /api/admin/reviews/:id (admin; verify/feature flags)
// --------------------------------------------------
func (h *Handler) SetFlags(c *gin.Context) {
	var req struct {
		IsVerified *bool `json:"isVerified"`
		IsFeatured *bool `json:"isFeatured"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rv, err := h.service.SetFlags(c.Request.Context(), c.Param("id"), req.IsVerified, req.IsFeatured)
	if err == ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update review"})
		return
	}

	c.JSON(http.StatusOK, rv)
}

// --------------------------------------------------
// DELETE /api/admin/reviews/:id (admin)
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err == ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}

// --------------------------------------------------
// POST /api/seed-reviews (demo data loader)
// --------------------------------------------------
func (h *Handler) Seed(c *gin.Context) {
	n, err := h.service.Seed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to seed reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"seeded": n})
}
