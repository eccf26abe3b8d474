package blob

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/rpillai/daytrack/pkg/entity"
)

// InlineBackend encodes the bytes as base64 text carried inside the
// record itself. Deleting the record deletes the blob, so Destroy has
// nothing to clean up.
type InlineBackend struct {
}

func NewInlineBackend() *InlineBackend {
	return &InlineBackend{}
}

func (ib *InlineBackend) Store(_ context.Context, data []byte, _, _ string) (entity.BlobRef, error) {
	return entity.BlobRef{
		Data: base64.StdEncoding.EncodeToString(data),
	}, nil
}

func (ib *InlineBackend) Destroy(_ context.Context, _ entity.BlobRef) error {
	return nil
}

// Decode recovers the original bytes from an inline reference.
func Decode(ref entity.BlobRef) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(ref.Data)
	if err != nil {
		return nil, errors.New("decoding inline blob error: " + err.Error())
	}
	return data, nil
}
