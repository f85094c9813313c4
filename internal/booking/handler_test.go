package booking

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(repo *InMemoryRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewHandler(newTestService(repo))

	r := gin.New()
	r.POST("/api/bookings", h.Create)
	r.GET("/api/bookings", h.List)
	r.GET("/api/bookings/:id", h.Get)
	r.PATCH("/api/bookings/:id", h.Update)
	r.DELETE("/api/bookings/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingEndpoint(t *testing.T) {
	repo := NewInMemoryRepository()
	r := newTestRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"name":   "Ravi Kumar",
		"phone":  "9876543210",
		"email":  "ravi@example.com",
		"date":   "2025-06-10",
		"time":   "19:30",
		"people": 4,
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var got Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, StatusPending, got.Status)
	assert.NotEmpty(t, got.ID)
	assert.Nil(t, got.ConfirmedAt)
}

func TestCreateBookingEndpointBadPhone(t *testing.T) {
	repo := NewInMemoryRepository()
	r := newTestRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"name":   "Ravi Kumar",
		"phone":  "12345",
		"email":  "ravi@example.com",
		"date":   "2025-06-10",
		"time":   "19:30",
		"people": 4,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "phone"), w.Body.String())
	assert.Equal(t, 0, repo.Count())
}

func TestConfirmBookingEndpoint(t *testing.T) {
	repo := NewInMemoryRepository()
	r := newTestRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"name":   "Ravi Kumar",
		"phone":  "9876543210",
		"email":  "ravi@example.com",
		"date":   "2025-06-10",
		"time":   "19:30",
		"people": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPatch, "/api/bookings/"+created.ID, gin.H{
		"status":              "confirmed",
		"confirmationMessage": "Table reserved for 7:30 PM.",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, StatusConfirmed, updated.Status)
	assert.NotNil(t, updated.ConfirmedAt)
}

func TestBookingEndpointNotFound(t *testing.T) {
	repo := NewInMemoryRepository()
	r := newTestRouter(repo)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/bookings/missing", gin.H{"status": "cancelled"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/bookings/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListBookingsEndpoint(t *testing.T) {
	repo := NewInMemoryRepository()
	r := newTestRouter(repo)

	w := doJSON(t, r, http.MethodGet, "/api/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}
