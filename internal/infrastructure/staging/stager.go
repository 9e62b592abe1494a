// Package staging receives multipart uploads and holds them in a
// temporary area until a blob store takes them over. Staged files never
// outlive the request that created them.
package staging

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"citystore/internal/domain/entity"
	"citystore/pkg/apperr"
	"citystore/pkg/logger"
)

// MaxUploadBytes caps accepted image uploads at 5 MiB.
const MaxUploadBytes = 5 << 20

// sniffLen matches the mimetype package's default detection window.
const sniffLen = 3072

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.]+`)

type Stager struct {
	dir string
}

func New(cfg Config) (*Stager, error) {
	if err := os.MkdirAll(cfg.Directory, 0o755); err != nil {
		return nil, fmt.Errorf("couldn't create staging directory: %w", err)
	}

	return &Stager{dir: cfg.Directory}, nil
}

// Stage validates and persists one uploaded file to the staging area.
// Non-image content is rejected with a Validation error, files over
// MaxUploadBytes with a TooLarge error.
func (s *Stager) Stage(fh *multipart.FileHeader) (*entity.StagedFile, error) {
	if fh.Size > MaxUploadBytes {
		return nil, apperr.Newf(apperr.TooLarge, "image exceeds the %d MiB limit", MaxUploadBytes>>20)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, apperr.Wrap(apperr.Validation, "couldn't read uploaded file", err)
	}
	defer src.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(src, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, apperr.Wrap(apperr.Validation, "couldn't read uploaded file", err)
	}
	head = head[:n]

	detected := mimetype.Detect(head)
	if !strings.HasPrefix(detected.String(), "image/") {
		return nil, apperr.Newf(apperr.Validation, "unsupported file type %s, only images are accepted", detected.String())
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeName(fh.Filename))
	dstPath := filepath.Join(s.dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "couldn't create staged file", err)
	}

	written, err := writeCapped(dst, head, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		if rmErr := os.Remove(dstPath); rmErr != nil {
			logger.Error("couldn't remove rejected staged file", "path", dstPath, "err", rmErr)
		}

		return nil, err
	}

	return &entity.StagedFile{
		Path:         dstPath,
		OriginalName: fh.Filename,
		Size:         written,
		MIME:         detected.String(),
	}, nil
}

// writeCapped writes head plus the rest of src to dst, enforcing the
// size cap on the actual byte count in case the declared size lies.
func writeCapped(dst io.Writer, head []byte, src io.Reader) (int64, error) {
	if _, err := dst.Write(head); err != nil {
		return 0, apperr.Wrap(apperr.Storage, "couldn't write staged file", err)
	}

	rest, err := io.Copy(dst, io.LimitReader(src, MaxUploadBytes-int64(len(head))+1))
	if err != nil {
		return 0, apperr.Wrap(apperr.Storage, "couldn't write staged file", err)
	}

	written := int64(len(head)) + rest
	if written > MaxUploadBytes {
		return 0, apperr.Newf(apperr.TooLarge, "image exceeds the %d MiB limit", MaxUploadBytes>>20)
	}

	return written, nil
}

// Discard removes a staged file. Files already taken over by a blob
// store are gone from the staging area, so absence is not an error.
func (s *Stager) Discard(staged *entity.StagedFile) {
	if staged == nil {
		return
	}

	err := os.Remove(staged.Path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Error("couldn't discard staged file", "path", staged.Path, "err", err)
	}
}

// Purge empties the staging area. Called on shutdown.
func (s *Stager) Purge() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return err
	}

	return os.MkdirAll(s.dir, 0o755)
}

func sanitizeName(name string) string {
	cleaned := unsafeChars.ReplaceAllString(name, "-")
	if cleaned == "" || cleaned == "." {
		cleaned = "upload"
	}

	return cleaned
}
