package storage

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Uploader is what the handler needs from the hosting client.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

type Handler struct {
	uploader Uploader
}

func NewHandler(uploader Uploader) *Handler {
	return &Handler{uploader: uploader}
}

// --------------------------------------------------
// POST /api/upload (admin; multipart file -> hosted URL)
// --------------------------------------------------
func (h *Handler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type: " + ext})
		return
	}

	key := "uploads/" + uuid.New().String() + ext
	url, err := h.uploader.Upload(
		c.Request.Context(),
		key,
		header.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url, "key": key})
}
