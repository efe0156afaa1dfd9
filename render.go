package digest

import "io"

// PDFRenderer renders the plain-text report of an analysis as a PDF.
type PDFRenderer interface {
	RenderPDF(w io.Writer, a *Analysis) error
}
