package gallery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGalleryRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewHandler(NewInMemoryRepository())

	r := gin.New()
	r.GET("/api/gallery", h.ListPublic)
	r.GET("/api/admin/gallery", h.ListAdmin)
	r.POST("/api/gallery", h.Create)
	r.PUT("/api/gallery/:id", h.Update)
	r.DELETE("/api/gallery/:id", h.Delete)
	return r
}

func galleryRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGalleryCreateAndList(t *testing.T) {
	r := newGalleryRouter()

	w := galleryRequest(r, http.MethodPost, "/api/gallery",
		`{"title":"Tandoor at work","category":"kitchen","imageUrl":"https://cdn.example/tandoor.jpg","isActive":true,"sortOrder":1}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = galleryRequest(r, http.MethodPost, "/api/gallery",
		`{"title":"Old banner","category":"front","imageUrl":"https://cdn.example/banner.jpg","isActive":false}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// Public listing hides inactive items.
	w = galleryRequest(r, http.MethodGet, "/api/gallery", "")
	require.Equal(t, http.StatusOK, w.Code)

	var public []GalleryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &public))
	require.Len(t, public, 1)
	assert.Equal(t, "Tandoor at work", public[0].Title)

	w = galleryRequest(r, http.MethodGet, "/api/admin/gallery", "")
	require.Equal(t, http.StatusOK, w.Code)

	var all []GalleryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 2)
}

func TestGalleryCreateValidation(t *testing.T) {
	r := newGalleryRouter()

	w := galleryRequest(r, http.MethodPost, "/api/gallery", `{"title":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "imageUrl")
}

func TestGalleryUpdateAndDelete(t *testing.T) {
	r := newGalleryRouter()

	w := galleryRequest(r, http.MethodPost, "/api/gallery",
		`{"title":"Tandoor at work","category":"kitchen","imageUrl":"https://cdn.example/tandoor.jpg","isActive":true}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created GalleryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = galleryRequest(r, http.MethodPut, "/api/gallery/"+created.ID,
		`{"title":"Tandoor, renamed","category":"kitchen","imageUrl":"https://cdn.example/tandoor.jpg","isActive":true}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Tandoor, renamed")

	w = galleryRequest(r, http.MethodDelete, "/api/gallery/"+created.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = galleryRequest(r, http.MethodDelete, "/api/gallery/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
