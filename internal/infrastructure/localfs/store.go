// Package localfs persists images on the local filesystem, for
// deployments that serve uploads statically from the same process.
package localfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"citystore/internal/domain/entity"
	"citystore/pkg/apperr"
)

// Store keeps blobs under a serve directory. References are relative
// paths like "uploads/<name>"; public URLs are derived from the basename.
type Store struct {
	dir       string
	publicURL string
}

func New(cfg Config, publicURL string) (*Store, error) {
	if err := os.MkdirAll(cfg.Directory, 0o755); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "couldn't create uploads directory", err)
	}

	return &Store{
		dir:       cfg.Directory,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Directory returns the serve directory, for wiring the static route.
func (s *Store) Directory() string {
	return s.dir
}

func (s *Store) Save(_ context.Context, staged *entity.StagedFile) (string, error) {
	name := filepath.Base(staged.Path)
	dst := filepath.Join(s.dir, name)

	if err := moveFile(staged.Path, dst); err != nil {
		return "", apperr.Wrap(apperr.Storage, "couldn't move staged file", err)
	}

	return path.Join(filepath.Base(s.dir), name), nil
}

func (s *Store) Remove(_ context.Context, ref string) error {
	err := os.Remove(filepath.Join(s.dir, path.Base(ref)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return apperr.Wrap(apperr.Storage, "couldn't remove image", err)
	}

	return nil
}

func (s *Store) PublicURL(ref string) string {
	return fmt.Sprintf("%s/uploads/%s", s.publicURL, path.Base(ref))
}

// moveFile renames src to dst, falling back to copy+remove when the
// staging area and the serve directory live on different filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()

		return err
	}

	if err := out.Close(); err != nil {
		return err
	}

	return os.Remove(src)
}
