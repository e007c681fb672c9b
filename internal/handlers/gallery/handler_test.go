package gallery_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"campushub/config"
	"campushub/infras/otel/mocks"
	galleryMocks "campushub/internal/domains/gallery/mocks"
	"campushub/internal/domains/gallery/model"
	"campushub/internal/handlers/gallery"
	"campushub/shared/constant"
	"campushub/shared/failure"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Gallery.MaxUploadMB = 5

	return cfg
}

func setupRouter(service *galleryMocks.MockGalleryService) *chi.Mux {
	handler := gallery.New(service, testConfig(), mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

// countingReader tracks how much of the request body the server consumed.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)

	return n, err
}

func multipartUpload(t *testing.T, title, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if title != "" {
		require.NoError(t, writer.WriteField(constant.FormFieldTitle, title))
	}

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="image"; filename="` + filename + `"`}
	header["Content-Type"] = []string{contentType}

	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write(content)
	require.NoError(t, err)

	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestHandler_GetItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := galleryMocks.NewMockGalleryService(ctrl)
	router := setupRouter(mockService)

	items := []model.GalleryItem{
		{ID: 1, Type: model.TypeImage, Title: "Commencement", Date: "May 10, 2024", Src: "https://images.example.com/1.jpg", Category: model.CategoryEvents},
	}

	mockService.EXPECT().
		List(gomock.Any()).
		Return(items, nil)

	req := httptest.NewRequest(http.MethodGet, "/gallery", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))

	// The body is a bare JSON array, no envelope.
	var got []model.GalleryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, items, got)
}

func TestHandler_UploadImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := galleryMocks.NewMockGalleryService(ctrl)
	router := setupRouter(mockService)

	t.Run("created returns the item", func(t *testing.T) {
		created := model.GalleryItem{
			ID:       1735000000001,
			Type:     model.TypeImage,
			Title:    "Campus Festival",
			Date:     "September 1, 2026",
			Src:      "/uploads/1735000000000-42.jpg",
			Category: constant.CategoryUserUploads,
			Filename: "1735000000000-42.jpg",
		}

		mockService.EXPECT().
			Upload(gomock.Any(), gomock.Any()).
			Return(created, nil)

		body, formContentType := multipartUpload(t, "Campus Festival", "festival.jpg", "image/jpeg", []byte("fake image bytes"))

		req := httptest.NewRequest(http.MethodPost, "/gallery/upload", body)
		req.Header.Set(constant.RequestHeaderContentType, formContentType)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var got model.GalleryItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, created, got)
	})

	t.Run("missing file returns bad request", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField(constant.FormFieldTitle, "No file"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/gallery/upload", body)
		req.Header.Set(constant.RequestHeaderContentType, writer.FormDataContentType())
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("oversized body is rejected while streaming", func(t *testing.T) {
		// No Upload expectation: the request must be refused before the
		// service ever sees it, without draining the whole body.
		body, formContentType := multipartUpload(t, "Huge", "huge.jpg", "image/jpeg", bytes.Repeat([]byte("x"), 8<<20))
		total := int64(body.Len())
		counter := &countingReader{r: body}

		req := httptest.NewRequest(http.MethodPost, "/gallery/upload", counter)
		req.Header.Set(constant.RequestHeaderContentType, formContentType)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"image exceeds the 5 MB upload limit"}`, rec.Body.String())
		assert.Less(t, counter.n, total, "body should be cut off at the limit, not read in full")
	})

	t.Run("service validation error is passed through", func(t *testing.T) {
		mockService.EXPECT().
			Upload(gomock.Any(), gomock.Any()).
			Return(model.GalleryItem{}, failure.BadRequestFromString("only image uploads are allowed"))

		body, formContentType := multipartUpload(t, "Notes", "notes.txt", "text/plain", []byte("not an image"))

		req := httptest.NewRequest(http.MethodPost, "/gallery/upload", body)
		req.Header.Set(constant.RequestHeaderContentType, formContentType)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"only image uploads are allowed"}`, rec.Body.String())
	})
}

func TestHandler_DeleteImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := galleryMocks.NewMockGalleryService(ctrl)
	router := setupRouter(mockService)

	t.Run("deleted", func(t *testing.T) {
		mockService.EXPECT().
			Delete(gomock.Any(), int64(42)).
			Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/gallery/42", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Image deleted successfully"}`, rec.Body.String())
	})

	t.Run("unknown id", func(t *testing.T) {
		mockService.EXPECT().
			Delete(gomock.Any(), int64(999)).
			Return(failure.NotFound("Image not found"))

		req := httptest.NewRequest(http.MethodDelete, "/gallery/999", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Image not found"}`, rec.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/gallery/not-a-number", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Image not found"}`, rec.Body.String())
	})
}
