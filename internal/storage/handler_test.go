package storage

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	lastKey string
	body    []byte
	err     error
}

func (f *fakeUploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastKey = key
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.body = data
	return "https://cdn.example/" + key, nil
}

func newUploadRouter(u Uploader) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/api/upload", NewHandler(u).Upload)
	return r
}

func multipartUpload(t *testing.T, r *gin.Engine, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadImage(t *testing.T) {
	uploader := &fakeUploader{}
	r := newUploadRouter(uploader)

	w := multipartUpload(t, r, "dish.jpg", []byte("jpeg-bytes"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	assert.True(t, strings.HasPrefix(uploader.lastKey, "uploads/"))
	assert.True(t, strings.HasSuffix(uploader.lastKey, ".jpg"))
	assert.Equal(t, []byte("jpeg-bytes"), uploader.body)
	assert.Contains(t, w.Body.String(), "https://cdn.example/uploads/")
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	r := newUploadRouter(&fakeUploader{})

	w := multipartUpload(t, r, "notes.pdf", []byte("%PDF"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported file type")
}

func TestUploadRequiresFile(t *testing.T) {
	r := newUploadRouter(&fakeUploader{})

	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(""))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
