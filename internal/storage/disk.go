package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"campushub/infras/otel"
	"campushub/shared/constant"
)

// diskStorage writes uploads under a fixed directory. Files are served back
// read-only via the /uploads static mapping, so Src is a relative path the
// client resolves against the server origin.
type diskStorage struct {
	dir  string
	otel otel.Otel
}

func NewDisk(dir string, ot otel.Otel) Storage {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", dir).Msg("Failed to create uploads directory")
	}

	return &diskStorage{
		dir:  dir,
		otel: ot,
	}
}

func (s *diskStorage) Put(ctx context.Context, r io.Reader, suggestedName, contentType string) (res PutResult, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".disk.Put")
	defer scope.End()
	defer scope.TraceIfError(err)

	key := NewKey(suggestedName)
	target := filepath.Join(s.dir, key)

	scope.SetAttribute("storage.key", key)

	dst, err := os.Create(target)
	if err != nil {
		return res, fmt.Errorf("failed to create upload file: %w", err)
	}

	size, err := io.Copy(dst, r)

	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		// Half written files must not linger; the caller gets a clean failure.
		_ = os.Remove(target)

		return res, fmt.Errorf("failed to write upload file: %w", err)
	}

	return PutResult{
		Key:         key,
		Src:         path.Join(constant.UploadsURLPrefix, key),
		Size:        size,
		ContentType: contentType,
	}, nil
}

func (s *diskStorage) List(ctx context.Context) (blobs []PutResult, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".disk.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploads directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, infoErr := entry.Info()
		if infoErr != nil {
			continue
		}

		blobs = append(blobs, PutResult{
			Key:  entry.Name(),
			Src:  path.Join(constant.UploadsURLPrefix, entry.Name()),
			Size: info.Size(),
		})
	}

	return blobs, nil
}

func (s *diskStorage) Delete(ctx context.Context, key string) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".disk.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("storage.key", key)

	// Keys never contain separators, but a crafted one must not escape the
	// uploads directory.
	target := filepath.Join(s.dir, filepath.Base(key))

	err = os.Remove(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("failed to delete upload file: %w", err)
	}

	return nil
}

func (s *diskStorage) Capabilities() Capabilities {
	return Capabilities{List: true, Delete: true}
}
