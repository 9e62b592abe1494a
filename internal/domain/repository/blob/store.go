package blob

import (
	"context"

	"citystore/internal/domain/entity"
)

// Store abstracts image persistence. The service layer depends only on
// this contract; the local-filesystem and object-storage implementations
// are swappable at startup.
type Store interface {
	// Save persists a staged file and returns its reference: a relative
	// path for the local variant, an absolute URL for the remote one.
	Save(ctx context.Context, staged *entity.StagedFile) (string, error)

	// Remove deletes the blob behind ref. A missing blob is not an error.
	Remove(ctx context.Context, ref string) error

	// PublicURL resolves ref to the URL clients can fetch the blob from.
	PublicURL(ref string) string
}
