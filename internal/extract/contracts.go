// Package extract turns photos and scans of the lessee's documents into the
// canonical contract record. The heavy lifting (reading the images) is done
// by an external AI provider behind the Extractor interface; this package
// owns the defensive normalization of whatever that provider returns.
package extract

import (
	"context"
	"fmt"

	"github.com/vmp-veiculos/contratos/internal/schema"
)

// Document is one uploaded file: an opaque payload with a declared media
// type. All documents of a submission travel to the provider in a single
// request so it can cross-reference fields between them (the license photo
// and the vehicle registration, for example).
type Document struct {
	Filename string
	MimeType string
	Data     []byte
}

// Extractor is the interface the workflow depends on.
type Extractor interface {
	Extract(ctx context.Context, docs []Document) (schema.ExtractedData, error)
}

// ExtractionError folds every way an extraction attempt can fail
// (transport, provider-reported failure, unparseable output) into one
// error the operator sees as a single message. There is no partial
// success: the caller offers manual entry as the fallback.
type ExtractionError struct {
	Stage string // "request", "provider", "decode", "normalize"
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed at %s: %v", e.Stage, e.Cause)
}

func (e *ExtractionError) Unwrap() error { return e.Cause }

// NewExtractionError wraps cause with the stage at which extraction died.
func NewExtractionError(stage string, cause error) *ExtractionError {
	return &ExtractionError{Stage: stage, Cause: cause}
}
