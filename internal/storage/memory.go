package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"campushub/infras/otel"
	"campushub/shared/base64"
	"campushub/shared/constant"
)

// memoryStorage is the serverless/edge variant used when the filesystem is
// read only. Put base64-encodes the payload into a self contained data URI,
// so Src carries the entire payload with all the size inflation that implies.
// Nothing is durably tracked: List is unsupported and Delete is a no-op.
type memoryStorage struct {
	otel otel.Otel
}

func NewMemory(ot otel.Otel) Storage {
	return &memoryStorage{
		otel: ot,
	}
}

func (s *memoryStorage) Put(ctx context.Context, r io.Reader, suggestedName, contentType string) (res PutResult, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".memory.Put")
	defer scope.End()
	defer scope.TraceIfError(err)

	data, err := io.ReadAll(r)
	if err != nil {
		return res, fmt.Errorf("failed to read upload: %w", err)
	}

	return PutResult{
		Key:         fmt.Sprintf("memory-%d", time.Now().UnixMilli()),
		Src:         base64.DataURI(contentType, data),
		Size:        int64(len(data)),
		ContentType: contentType,
	}, nil
}

func (s *memoryStorage) List(ctx context.Context) ([]PutResult, error) {
	return nil, ErrUnsupported
}

func (s *memoryStorage) Delete(ctx context.Context, key string) error {
	return nil
}

func (s *memoryStorage) Capabilities() Capabilities {
	return Capabilities{}
}
