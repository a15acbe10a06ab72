package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/marcos-nsantos/thumbgate/internal/domain"
	"github.com/marcos-nsantos/thumbgate/internal/domain/valueobject"
)

// FileLoader reads images below a fixed root directory.
type FileLoader struct {
	root     string
	maxBytes int64
}

func NewFileLoader(root string, maxBytes int64) *FileLoader {
	return &FileLoader{root: root, maxBytes: maxBytes}
}

func (l *FileLoader) Load(ctx context.Context, p string) (valueobject.Image, error) {
	if err := ctx.Err(); err != nil {
		return valueobject.Image{}, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}

	// Cleaning against "/" first keeps ".." from walking out of root.
	full := filepath.Join(l.root, filepath.FromSlash(path.Clean("/"+p)))

	f, err := os.Open(full)
	if err != nil {
		return valueobject.Image{}, mapFSError(err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return valueobject.Image{}, mapFSError(err)
	}
	if info.IsDir() {
		return valueobject.Image{}, domain.ErrNotFound
	}
	if l.maxBytes > 0 && info.Size() > l.maxBytes {
		return valueobject.Image{}, fmt.Errorf("%w: file exceeds %d bytes", domain.ErrUpstreamFailure, l.maxBytes)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return valueobject.Image{}, fmt.Errorf("%w: reading file: %v", domain.ErrUpstreamFailure, err)
	}

	return valueobject.NewImage(data, detectContentType(data, "")), nil
}

func mapFSError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return domain.ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return domain.ErrUnauthorized
	default:
		return fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}
}
