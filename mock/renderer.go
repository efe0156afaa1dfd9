package mock

import (
	"io"

	"github.com/readingassistant/digest"
)

var _ digest.PDFRenderer = (*PDFRenderer)(nil)

// PDFRenderer is a mock implementation of digest.PDFRenderer.
type PDFRenderer struct {
	RenderPDFFn func(w io.Writer, a *digest.Analysis) error
}

func (r *PDFRenderer) RenderPDF(w io.Writer, a *digest.Analysis) error {
	return r.RenderPDFFn(w, a)
}
