package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/readingassistant/digest"
)

// Compile-time interface verification.
var _ digest.AnalysisService = (*AnalysisService)(nil)

// AnalysisService implements digest.AnalysisService using SQLite.
type AnalysisService struct {
	db *DB
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(db *DB) *AnalysisService {
	return &AnalysisService{db: db}
}

const analysisColumns = "id, url, title, text, summary, key_ideas, action_items, content_hash, created_at"

// CreateAnalysis stores a new analysis, assigning its ID and, when unset,
// its creation time.
func (s *AnalysisService) CreateAnalysis(ctx context.Context, a *digest.Analysis) error {
	if err := a.Validate(); err != nil {
		return err
	}

	summary, err := encodeList(a.Summary)
	if err != nil {
		return err
	}
	keyIdeas, err := encodeList(a.KeyIdeas)
	if err != nil {
		return err
	}
	actionItems, err := encodeList(a.ActionItems)
	if err != nil {
		return err
	}

	a.ID = uuid.New().String()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analyses (`+analysisColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, a.ID, a.URL, a.Title, a.Text, summary, keyIdeas, actionItems, a.ContentHash,
		a.CreatedAt.Format(time.RFC3339))

	return err
}

// FindAnalysisByID retrieves an analysis by ID.
func (s *AnalysisService) FindAnalysisByID(ctx context.Context, id string) (*digest.Analysis, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+analysisColumns+` FROM analyses WHERE id = ?`, id)

	a, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, digest.Errorf(digest.ENOTFOUND, "analysis not found")
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// FindAnalyses retrieves analyses matching the filter, newest first.
func (s *AnalysisService) FindAnalyses(ctx context.Context, filter digest.AnalysisFilter) ([]*digest.Analysis, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + analysisColumns + " FROM analyses WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	analyses := make([]*digest.Analysis, 0)
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}

	return analyses, rows.Err()
}

// DeleteAnalysis permanently removes an analysis.
func (s *AnalysisService) DeleteAnalysis(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM analyses WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return digest.Errorf(digest.ENOTFOUND, "analysis not found")
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row scanner) (*digest.Analysis, error) {
	var a digest.Analysis
	var summary, keyIdeas, actionItems, createdAt string

	if err := row.Scan(&a.ID, &a.URL, &a.Title, &a.Text, &summary, &keyIdeas, &actionItems,
		&a.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if a.Summary, err = decodeList(summary, "summary"); err != nil {
		return nil, err
	}
	if a.KeyIdeas, err = decodeList(keyIdeas, "key_ideas"); err != nil {
		return nil, err
	}
	if a.ActionItems, err = decodeList(actionItems, "action_items"); err != nil {
		return nil, err
	}
	if a.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &a, nil
}
