package nougat

import (
	"context"
	"io"
)

// Document describes an uploaded file. Open is only called by extractors that
// actually read the bytes.
type Document struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// Extractor turns a document into LaTeX source.
type Extractor interface {
	Extract(ctx context.Context, doc Document) (string, error)
}

// New returns the extractor for the given mode.
func New(mockMode bool) Extractor {
	if mockMode {
		return Mock{}
	}
	return Unimplemented{}
}
