package posts_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"campushub/config"
	"campushub/infras/otel/mocks"
	postsMocks "campushub/internal/domains/posts/mocks"
	"campushub/internal/domains/posts/model"
	"campushub/internal/domains/posts/model/dto"
	"campushub/internal/handlers/posts"
	"campushub/shared/constant"
	"campushub/shared/failure"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Gallery.MaxUploadMB = 5

	return cfg
}

func setupRouter(service *postsMocks.MockPostsService) *chi.Mux {
	handler := posts.New(service, testConfig(), mocks.NewOtel())

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

func TestHandler_GetPosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := postsMocks.NewMockPostsService(ctrl)
	router := setupRouter(mockService)

	wall := []model.Post{
		{ID: uuid.New(), Author: "Alice", Content: "hello", Attachments: []model.Attachment{}, CreatedAt: time.Now().UTC()},
	}

	mockService.EXPECT().
		List(gomock.Any()).
		Return(wall, nil)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []model.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, wall[0].ID, got[0].ID)
}

func TestHandler_CreatePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := postsMocks.NewMockPostsService(ctrl)
	router := setupRouter(mockService)

	t.Run("created with media", func(t *testing.T) {
		res := dto.CreatePostResponse{
			Post: model.Post{
				ID:      uuid.New(),
				Author:  "Bob",
				Content: "Match highlights",
				Attachments: []model.Attachment{
					{Type: constant.MediaTypeImage, Src: "/uploads/k1.jpg", Filename: "k1.jpg", ContentType: "image/jpeg"},
				},
			},
		}

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req dto.CreatePostRequest) (dto.CreatePostResponse, error) {
				assert.Equal(t, "Bob", req.Author)
				assert.Equal(t, "Match highlights", req.Content)
				require.Len(t, req.Media, 1)
				assert.Equal(t, "photo.jpg", req.Media[0].Filename)

				return res, nil
			})

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField(constant.FormFieldAuthor, "Bob"))
		require.NoError(t, writer.WriteField(constant.FormFieldContent, "Match highlights"))

		part, err := writer.CreateFormFile(constant.FormFieldMedia, "photo.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake jpeg"))
		require.NoError(t, err)

		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/posts", body)
		req.Header.Set(constant.RequestHeaderContentType, writer.FormDataContentType())
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var got dto.CreatePostResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, res.Post.ID, got.Post.ID)
		assert.Empty(t, got.Failed)
	})

	t.Run("oversized body is rejected while streaming", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField(constant.FormFieldAuthor, "Bob"))
		require.NoError(t, writer.WriteField(constant.FormFieldContent, "Full match recording"))

		part, err := writer.CreateFormFile(constant.FormFieldMedia, "recording.mp4")
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte("x"), 24<<20))
		require.NoError(t, err)

		require.NoError(t, writer.Close())

		total := int64(body.Len())
		counter := &countingReader{r: body}

		req := httptest.NewRequest(http.MethodPost, "/posts", counter)
		req.Header.Set(constant.RequestHeaderContentType, writer.FormDataContentType())
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"request exceeds the 21 MB upload limit"}`, rec.Body.String())
		assert.Less(t, counter.n, total, "body should be cut off at the limit, not read in full")
	})

	t.Run("validation error is passed through", func(t *testing.T) {
		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(dto.CreatePostResponse{}, failure.BadRequestFromString("content is required"))

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField(constant.FormFieldAuthor, "Bob"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/posts", body)
		req.Header.Set(constant.RequestHeaderContentType, writer.FormDataContentType())
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"content is required"}`, rec.Body.String())
	})
}

func TestHandler_DeletePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := postsMocks.NewMockPostsService(ctrl)
	router := setupRouter(mockService)

	t.Run("deleted", func(t *testing.T) {
		id := uuid.New()

		mockService.EXPECT().
			Delete(gomock.Any(), id).
			Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/posts/"+id.String(), nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Post deleted successfully"}`, rec.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/posts/not-a-uuid", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Post not found"}`, rec.Body.String())
	})
}
