package menu

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

// --------------------------------------------------
// GET /api/menu-items (public; only active items)
// --------------------------------------------------
func (h *Handler) ListPublic(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), Filter{
		Query:      c.Query("q"),
		Category:   c.Query("category"),
		ActiveOnly: true,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch menu"})
		return
	}
	if items == nil {
		items = []*MenuItem{}
	}

	c.JSON(http.StatusOK, items)
}

// --------------------------------------------------
// GET /api/popular-items (public)
// --------------------------------------------------
func (h *Handler) ListPopular(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), Filter{
		ActiveOnly:  true,
		PopularOnly: true,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch popular items"})
		return
	}
	if items == nil {
		items = []*MenuItem{}
	}

	c.JSON(http.StatusOK, items)
}

// --------------------------------------------------
// GET /api/admin/menu-items (admin; includes inactive)
// --------------------------------------------------
func (h *Handler) ListAdmin(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), Filter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch menu"})
		return
	}
	if items == nil {
		items = []*MenuItem{}
	}

	c.JSON(http.StatusOK, items)
}

// --------------------------------------------------
// POST /api/admin/menu-items (admin)
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var in ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, ferrs, err := h.service.Create(c.Request.Context(), in)
	if ferrs.Any() {
		c.JSON(http.StatusBadRequest, gin.H{"error": ferrs.Error(), "fields": ferrs})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create menu item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// --------------------------------------------------
// PUT /api/admin/menu-items/:id (admin)
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var in ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, ferrs, err := h.service.Update(c.Request.Context(), c.Param("id"), in)
	if ferrs.Any() {
		c.JSON(http.StatusBadRequest, gin.H{"error": ferrs.Error(), "fields": ferrs})
		return
	}
	if err == ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update menu item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// --------------------------------------------------
// DELETE /api/admin/menu-items/:id (admin)
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err == ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete menu item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
}
