// Package fs exports analysis reports to files on disk.
package fs

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/readingassistant/digest"
)

// Exporter writes the report of an analysis into Dir as
// <sanitized title>.txt and, when PDF is set, <sanitized title>.pdf.
//
// Each file is written to a temporary sibling first and renamed into
// place, so a failed export never leaves a truncated report behind.
type Exporter struct {
	Dir string
	PDF digest.PDFRenderer
}

// NewExporter creates an Exporter writing into dir. pdf may be nil.
func NewExporter(dir string, pdf digest.PDFRenderer) *Exporter {
	return &Exporter{Dir: dir, PDF: pdf}
}

// Export writes the report files for a and returns their paths.
func (e *Exporter) Export(a *digest.Analysis) ([]string, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	base := filepath.Join(e.Dir, digest.SanitizeFileName(a.Title))

	txtPath := base + ".txt"
	err := writeAtomic(txtPath, func(w io.Writer) error {
		_, err := io.WriteString(w, digest.FormatPlainText(a))
		return err
	})
	if err != nil {
		return nil, err
	}
	paths := []string{txtPath}

	if e.PDF == nil {
		return paths, nil
	}

	var buf bytes.Buffer
	if err := e.PDF.RenderPDF(&buf, a); err != nil {
		return paths, err
	}
	pdfPath := base + ".pdf"
	err = writeAtomic(pdfPath, func(w io.Writer) error {
		_, err := buf.WriteTo(w)
		return err
	})
	if err != nil {
		return paths, err
	}
	return append(paths, pdfPath), nil
}

// writeAtomic writes path through a temp file in the same directory.
func writeAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move %s into place: %w", filepath.Base(path), err)
	}
	return nil
}
