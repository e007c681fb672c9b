package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"campushub/config"
	"campushub/infras/otel"
	"campushub/infras/s3"
)

// s3Directory is the object key prefix for gallery uploads within the bucket.
const s3Directory = "gallery"

// s3Storage is a thin pass-through to the object storage client. Keys are
// generated the same way as the disk variant; Src is the public URL.
type s3Storage struct {
	client s3.S3
	cfg    *config.Config
	otel   otel.Otel
}

func NewS3(cfg *config.Config, ot otel.Otel, client s3.S3) Storage {
	return &s3Storage{
		client: client,
		cfg:    cfg,
		otel:   ot,
	}
}

func (s *s3Storage) Put(ctx context.Context, r io.Reader, suggestedName, contentType string) (res PutResult, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return res, fmt.Errorf("failed to read upload: %w", err)
	}

	key := NewKey(suggestedName)

	url, err := s.client.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, s3Directory, key, contentType, data)
	if err != nil {
		return res, fmt.Errorf("failed to store upload: %w", err)
	}

	return PutResult{
		Key:         key,
		Src:         url,
		Size:        int64(len(data)),
		ContentType: contentType,
	}, nil
}

func (s *s3Storage) List(ctx context.Context) (blobs []PutResult, err error) {
	objects, err := s.client.ListFiles(ctx, s.cfg.External.S3.BucketName, s3Directory)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}

	for _, object := range objects {
		blobs = append(blobs, PutResult{
			Key:  strings.TrimPrefix(object.Key, s3Directory+"/"),
			Src:  object.URL,
			Size: object.Size,
		})
	}

	return blobs, nil
}

func (s *s3Storage) Delete(ctx context.Context, key string) error {
	// Older records stored the full public URL instead of the bare key.
	if strings.Contains(key, "://") {
		objectName := s.client.GetObjectNameFromURL(s.cfg.External.S3.BucketName, key)
		if objectName == "" {
			return nil
		}

		key = strings.TrimPrefix(objectName, s3Directory+"/")
	}

	// S3 deletes are idempotent already; a missing key still succeeds.
	if err := s.client.DeleteFile(ctx, s.cfg.External.S3.BucketName, s3Directory, key); err != nil {
		return fmt.Errorf("failed to delete upload: %w", err)
	}

	return nil
}

func (s *s3Storage) Capabilities() Capabilities {
	return Capabilities{List: true, Delete: true}
}
