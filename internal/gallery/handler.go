package gallery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/validate"
)

// Handler talks to the repository directly; gallery items have no
// business logic beyond field validation.
type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type itemInput struct {
	Title     string `json:"title"`
	Category  string `json:"category"`
	ImageURL  string `json:"imageUrl"`
	IsActive  bool   `json:"isActive"`
	SortOrder int    `json:"sortOrder"`
}

func (in itemInput) validate() validate.FieldErrors {
	errs := validate.FieldErrors{}
	errs.Require("title", in.Title)
	errs.Require("category", in.Category)
	errs.Require("imageUrl", in.ImageURL)
	return errs
}

// GET /api/gallery (public)
func (h *Handler) ListPublic(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch gallery"})
		return
	}
	if items == nil {
		items = []*GalleryItem{}
	}

	c.JSON(http.StatusOK, items)
}

// GET /api/admin/gallery (admin)
func (h *Handler) ListAdmin(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context(), false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch gallery"})
		return
	}
	if items == nil {
		items = []*GalleryItem{}
	}

	c.JSON(http.StatusOK, items)
}

// POST /api/admin/gallery (admin)
func (h *Handler) Create(c *gin.Context) {
	var in itemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if ferrs := in.validate(); ferrs.Any() {
		c.JSON(http.StatusBadRequest, gin.H{"error": ferrs.Error(), "fields": ferrs})
		return
	}

	item := &GalleryItem{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Category:  in.Category,
		ImageURL:  in.ImageURL,
		IsActive:  in.IsActive,
		SortOrder: in.SortOrder,
	}
	if err := h.repo.Create(c.Request.Context(), item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create gallery item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// PUT /api/admin/gallery/:id (admin)
func (h *Handler) Update(c *gin.Context) {
	var in itemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if ferrs := in.validate(); ferrs.Any() {
		c.JSON(http.StatusBadRequest, gin.H{"error": ferrs.Error(), "fields": ferrs})
		return
	}

	item, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err == ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "gallery item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update gallery item"})
		return
	}

	item.Title = in.Title
	item.Category = in.Category
	item.ImageURL = in.ImageURL
	item.IsActive = in.IsActive
	item.SortOrder = in.SortOrder

	if err := h.repo.Update(c.Request.Context(), item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update gallery item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// DELETE /api/admin/gallery/:id (admin)
func (h *Handler) Delete(c *gin.Context) {
	err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if err == ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "gallery item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete gallery item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "gallery item deleted"})
}
