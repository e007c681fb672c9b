package storage

import (
	"context"
	"fmt"
	"io"
	"sync"

	"campushub/infras/otel"
	"campushub/shared/base64"
	"campushub/shared/constant"
)

// ephemeralStorage models the fully offline demo mode: blobs live only in
// process memory and vanish on restart. Unlike the memory variant it tracks
// what it stored, so List and Delete behave like a real backend for the
// duration of the process.
type ephemeralStorage struct {
	mu    sync.RWMutex
	blobs map[string]PutResult
	otel  otel.Otel
}

func NewEphemeral(ot otel.Otel) Storage {
	return &ephemeralStorage{
		blobs: make(map[string]PutResult),
		otel:  ot,
	}
}

func (s *ephemeralStorage) Put(ctx context.Context, r io.Reader, suggestedName, contentType string) (res PutResult, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".ephemeral.Put")
	defer scope.End()
	defer scope.TraceIfError(err)

	data, err := io.ReadAll(r)
	if err != nil {
		return res, fmt.Errorf("failed to read upload: %w", err)
	}

	res = PutResult{
		Key:         NewKey(suggestedName),
		Src:         base64.DataURI(contentType, data),
		Size:        int64(len(data)),
		ContentType: contentType,
	}

	s.mu.Lock()
	s.blobs[res.Key] = res
	s.mu.Unlock()

	return res, nil
}

func (s *ephemeralStorage) List(ctx context.Context) ([]PutResult, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".ephemeral.List")
	defer scope.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	blobs := make([]PutResult, 0, len(s.blobs))
	for _, blob := range s.blobs {
		blobs = append(blobs, blob)
	}

	return blobs, nil
}

func (s *ephemeralStorage) Delete(ctx context.Context, key string) error {
	_, scope := s.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".ephemeral.Delete")
	defer scope.End()

	s.mu.Lock()
	delete(s.blobs, key)
	s.mu.Unlock()

	return nil
}

func (s *ephemeralStorage) Capabilities() Capabilities {
	return Capabilities{List: true, Delete: true}
}
