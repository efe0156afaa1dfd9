package chi

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/readingassistant/digest"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok\n")
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	a, err := s.analyzer.Analyze(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	a, err := s.analyzer.Analyze(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, digest.FormatPlainText(a))
}

func (s *Server) handleAnalyzePDF(w http.ResponseWriter, r *http.Request) {
	a, err := s.analyzer.Analyze(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		writeError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := s.pdf.RenderPDF(&buf, a); err != nil {
		s.logger.Error("render pdf", "url", a.URL, "err", err)
		writeError(w, err)
		return
	}

	name := digest.SanitizeFileName(a.Title) + ".pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	buf.WriteTo(w)
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	var filter digest.AnalysisFilter
	q := r.URL.Query()
	if u := q.Get("url"); u != "" {
		filter.URL = &u
	}

	var err error
	if filter.Limit, err = intParam(q.Get("limit")); err != nil {
		writeError(w, digest.Errorf(digest.EINVALID, "invalid limit %q", q.Get("limit")))
		return
	}
	if filter.Offset, err = intParam(q.Get("offset")); err != nil {
		writeError(w, digest.Errorf(digest.EINVALID, "invalid offset %q", q.Get("offset")))
		return
	}

	analyses, err := s.analyses.FindAnalyses(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analyses)
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	a, err := s.analyses.FindAnalysisByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	if err := s.analyses.DeleteAnalysis(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// intParam parses a non-negative query parameter. Blank means zero.
func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

// errorStatus maps application error codes to HTTP status codes.
var errorStatus = map[string]int{
	digest.EINVALID:  http.StatusBadRequest,
	digest.ENOTFOUND: http.StatusNotFound,
	digest.EINTERNAL: http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error.
func ErrorStatusCode(err error) int {
	if status, ok := errorStatus[digest.ErrorCode(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, ErrorStatusCode(err), map[string]string{"error": digest.ErrorMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
