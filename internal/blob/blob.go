// Package blob abstracts where uploaded file bytes live. The document
// catalog talks to a Backend and never knows which strategy is active.
package blob

import (
	"context"

	"github.com/rpillai/daytrack/pkg/entity"
)

type Backend interface {
	// Accepts raw bytes plus the declared MIME type and produces a stable
	// reference under the given folder namespace
	Store(ctx context.Context, data []byte, mimeType, folder string) (entity.BlobRef, error)
	// Releases whatever backs the reference. Must be issued before the
	// owning record disappears
	Destroy(ctx context.Context, ref entity.BlobRef) error
}
