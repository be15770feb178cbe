// Package extract is the boundary to the external statement-extraction
// provider. It owns media-type validation, the Gemini call, and the tolerant
// decoding of the model's JSON into domain types. Everything downstream of
// this package treats the returned records as untrusted.
package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/dvloznov/bankvision/internal/domain"
)

// Document is one statement file to analyze: raw bytes plus the declared
// media type.
type Document struct {
	Data     []byte
	MIMEType string
	Filename string
}

// Provider analyzes a statement document and returns the structured result.
// One call yields exactly one success or one failure; there are no partial or
// streaming results.
type Provider interface {
	AnalyzeStatement(ctx context.Context, doc Document) (*domain.AnalysisResult, error)
}

// ErrUnsupportedMediaType rejects a document before any network call.
var ErrUnsupportedMediaType = errors.New("unsupported file type: upload a PDF or image (PNG, JPEG, WebP, HEIC)")

// ErrUnreadableStatement is the single user-facing failure for everything
// that goes wrong after validation: provider errors, empty responses, and
// malformed JSON. The underlying cause is logged, never shown.
var ErrUnreadableStatement = errors.New("failed to analyze the statement: ensure the document is clear and legible")

// acceptedMediaTypes is the set of document types the provider understands.
var acceptedMediaTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
	"image/webp":      true,
	"image/heic":      true,
}

// ValidateMediaType reports whether the declared media type is accepted.
// Called before any provider interaction so rejection is immediate.
func ValidateMediaType(mimeType string) error {
	if !acceptedMediaTypes[mimeType] {
		return fmt.Errorf("%w (got %q)", ErrUnsupportedMediaType, mimeType)
	}
	return nil
}
