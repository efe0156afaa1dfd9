// Package gofpdf renders analysis reports as PDF documents using
// github.com/jung-kurt/gofpdf.
package gofpdf

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/readingassistant/digest"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	// DefaultFontSize is the body font size in points.
	DefaultFontSize = 11.0

	// DefaultMargin is the page margin on every side, in points.
	DefaultMargin = 50.0

	// lineSpacing is the leading as a multiple of the font size.
	lineSpacing = 1.2

	fontFamily = "Report"
)

// Ensure Renderer implements digest.PDFRenderer at compile time.
var _ digest.PDFRenderer = (*Renderer)(nil)

// Renderer lays out the plain-text report of an analysis on Letter pages.
//
// The report font is always embedded as UTF-8. FontPath selects a TrueType
// file; without one the Go Regular font is used, which covers Latin and
// Cyrillic.
type Renderer struct {
	FontPath string
	FontSize float64
	Margin   float64
}

// NewRenderer creates a Renderer with default layout. An empty fontPath
// selects the built-in Go Regular font.
func NewRenderer(fontPath string) *Renderer {
	return &Renderer{
		FontPath: fontPath,
		FontSize: DefaultFontSize,
		Margin:   DefaultMargin,
	}
}

// RenderPDF writes the report for a to w.
func (r *Renderer) RenderPDF(w io.Writer, a *digest.Analysis) error {
	fontSize := r.FontSize
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}
	margin := r.Margin
	if margin <= 0 {
		margin = DefaultMargin
	}

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)

	font := goregular.TTF
	if r.FontPath != "" {
		b, err := os.ReadFile(r.FontPath)
		if err != nil {
			return fmt.Errorf("failed to read font: %w", err)
		}
		font = b
	}
	pdf.AddUTF8FontFromBytes(fontFamily, "", font)
	pdf.SetFont(fontFamily, "", fontSize)
	pdf.AddPage()

	lineHeight := fontSize * lineSpacing
	for line := range strings.SplitSeq(digest.FormatPlainText(a), "\n") {
		if strings.TrimSpace(line) == "" {
			pdf.Ln(lineHeight)
			continue
		}
		pdf.MultiCell(0, lineHeight, line, "", "L", false)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return pdf.Output(w)
}
