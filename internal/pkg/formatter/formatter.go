package formatter

import (
	"fmt"

	"github.com/ouvrio/intake-backend/internal/entity"
)

// briefTitle heads every rendered document.
const briefTitle = "Demande de projet"

// Formatter renders the plain-text brief of a project request into one
// downloadable document format.
type Formatter interface {
	Format(plainText string) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the formatter for the requested format.
func (f *Factory) Create(format entity.ResultFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", entity.ErrInvalidParameter, format)
	}
}
