package interfaces

import (
	"context"
	"io"
)

// IProofStorage abstracts object storage for payment proof images. Upload
// returns the public URL the client later submits with the order. There is no
// compensating delete: a proof whose order append fails stays orphaned.
type IProofStorage interface {
	Upload(ctx context.Context, fileName, contentType string, body io.Reader) (string, error)
}
