package storage_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"campushub/config"
	"campushub/infras/otel/mocks"
	s3infra "campushub/infras/s3"
	s3Mocks "campushub/infras/s3/mocks"
	"campushub/internal/storage"
)

func s3TestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "campus-gallery"
	cfg.External.S3.PublicDomain = "https://cdn.example.com"

	return cfg
}

func TestS3Storage_Put(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockS3.EXPECT().
		UploadFileBytes(gomock.Any(), "campus-gallery", "gallery", gomock.Any(), "image/jpeg", []byte("jpeg bytes")).
		DoAndReturn(func(_ context.Context, _, directory, fileName, _ string, _ []byte) (string, error) {
			return "https://cdn.example.com/" + directory + "/" + fileName, nil
		})

	store := storage.NewS3(s3TestConfig(), mocks.NewOtel(), mockS3)

	res, err := store.Put(context.Background(), strings.NewReader("jpeg bytes"), "pic.jpg", "image/jpeg")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(res.Key, ".jpg"))
	assert.Equal(t, "https://cdn.example.com/gallery/"+res.Key, res.Src)
	assert.Equal(t, int64(len("jpeg bytes")), res.Size)
}

func TestS3Storage_PutFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockS3.EXPECT().
		UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("bucket quota exceeded"))

	store := storage.NewS3(s3TestConfig(), mocks.NewOtel(), mockS3)

	_, err := store.Put(context.Background(), strings.NewReader("x"), "pic.jpg", "image/jpeg")
	require.Error(t, err)
}

func TestS3Storage_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockS3.EXPECT().
		ListFiles(gomock.Any(), "campus-gallery", "gallery").
		Return([]s3infra.Object{
			{Key: "gallery/1710000000000-42.jpg", URL: "https://cdn.example.com/gallery/1710000000000-42.jpg", Size: 2048},
		}, nil)

	store := storage.NewS3(s3TestConfig(), mocks.NewOtel(), mockS3)

	blobs, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, blobs, 1)

	assert.Equal(t, "1710000000000-42.jpg", blobs[0].Key, "directory prefix should be stripped from the key")
	assert.Equal(t, "https://cdn.example.com/gallery/1710000000000-42.jpg", blobs[0].Src)
}

func TestS3Storage_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockS3.EXPECT().
		DeleteFile(gomock.Any(), "campus-gallery", "gallery", "1710000000000-42.jpg").
		Return(nil)

	store := storage.NewS3(s3TestConfig(), mocks.NewOtel(), mockS3)

	assert.NoError(t, store.Delete(context.Background(), "1710000000000-42.jpg"))
}

func TestS3Storage_DeleteLegacyURLKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	legacy := "https://cdn.example.com/campus-gallery/gallery/1710000000000-42.jpg"

	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockS3.EXPECT().
		GetObjectNameFromURL("campus-gallery", legacy).
		Return("gallery/1710000000000-42.jpg")
	mockS3.EXPECT().
		DeleteFile(gomock.Any(), "campus-gallery", "gallery", "1710000000000-42.jpg").
		Return(nil)

	store := storage.NewS3(s3TestConfig(), mocks.NewOtel(), mockS3)

	assert.NoError(t, store.Delete(context.Background(), legacy))
}
