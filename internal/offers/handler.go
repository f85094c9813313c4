package offers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GET /api/offers (public; active offers within their window)
func (h *Handler) ListPublic(c *gin.Context) {
	offers, err := h.service.ListCurrent(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch offers"})
		return
	}
	if offers == nil {
		offers = []*Offer{}
	}

	c.JSON(http.StatusOK, offers)
}

// GET /api/admin/offers (admin)
func (h *Handler) ListAdmin(c *gin.Context) {
	offers, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch offers"})
		return
	}
	if offers == nil {
		offers = []*Offer{}
	}

	c.JSON(http.StatusOK, offers)
}

// POST /api/admin/offers (admin)
func (h *Handler) Create(c *gin.Context) {
	var in OfferInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	o, ferrs, err := h.service.Create(c.Request.Context(), in)
	if ferrs.Any() {
		c.JSON(http.StatusBadRequest, gin.H{"error": ferrs.Error(), "fields": ferrs})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create offer"})
		return
	}

	c.JSON(http.StatusCreated, o)
}

// PUT /api/admin/offers/:id (admin)
func (h *Handler) Update(c *gin.Context) {
	var in OfferInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	o, ferrs, err := h.service.Update(c.Request.Context(), c.Param("id"), in)
	if ferrs.Any() {
		c.JSON(http.StatusBadRequest, gin.H{"error": ferrs.Error(), "fields": ferrs})
		return
	}
	if err == ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "offer not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update offer"})
		return
	}

	c.JSON(http.StatusOK, o)
}

// DELETE /api/admin/offers/:id (admin)
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err == ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "offer not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete offer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "offer deleted"})
}
