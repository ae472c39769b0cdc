package formatter

import (
	"bytes"
	"os"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfContentType   = "application/pdf"
	pdfFileExtension = ".pdf"

	pdfFontName = "DejaVuSans"
)

// Candidate locations of the UTF-8 capable TTF: next to the binary
// (container layout) or under the source tree (go run from repo root).
var pdfFontPaths = []string{
	"ttf/DejaVuSans.ttf",
	"internal/pkg/formatter/ttf/DejaVuSans.ttf",
}

type PDFFormatter struct{}

func NewPDFFormatter() *PDFFormatter {
	return &PDFFormatter{}
}

func (f *PDFFormatter) Format(text string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	fontName := f.registerFont(pdf)

	pdf.SetFont(fontName, "B", 20)
	pdf.Cell(0, 10, briefTitle)
	pdf.Ln(12)

	pdf.SetFont(fontName, "", 12)
	_, lineHeight := pdf.GetFontSize()
	pdf.MultiCell(0, lineHeight*1.5, text, "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// registerFont loads DejaVuSans when the TTF is shipped. French accents
// need it; Arial is the last-resort fallback.
func (f *PDFFormatter) registerFont(pdf *gofpdf.Fpdf) string {
	for _, path := range pdfFontPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		pdf.AddUTF8Font(pdfFontName, "", path)
		pdf.AddUTF8Font(pdfFontName, "B", path)
		return pdfFontName
	}
	return "Arial"
}

func (f *PDFFormatter) ContentType() string {
	return pdfContentType
}

func (f *PDFFormatter) FileExtension() string {
	return pdfFileExtension
}
