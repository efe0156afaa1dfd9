package mock

import (
	"context"

	"github.com/readingassistant/digest"
)

var _ digest.AnalysisService = (*AnalysisService)(nil)

// AnalysisService is a mock implementation of digest.AnalysisService.
type AnalysisService struct {
	CreateAnalysisFn   func(ctx context.Context, a *digest.Analysis) error
	FindAnalysisByIDFn func(ctx context.Context, id string) (*digest.Analysis, error)
	FindAnalysesFn     func(ctx context.Context, filter digest.AnalysisFilter) ([]*digest.Analysis, error)
	DeleteAnalysisFn   func(ctx context.Context, id string) error
}

func (s *AnalysisService) CreateAnalysis(ctx context.Context, a *digest.Analysis) error {
	return s.CreateAnalysisFn(ctx, a)
}

func (s *AnalysisService) FindAnalysisByID(ctx context.Context, id string) (*digest.Analysis, error) {
	return s.FindAnalysisByIDFn(ctx, id)
}

func (s *AnalysisService) FindAnalyses(ctx context.Context, filter digest.AnalysisFilter) ([]*digest.Analysis, error) {
	return s.FindAnalysesFn(ctx, filter)
}

func (s *AnalysisService) DeleteAnalysis(ctx context.Context, id string) error {
	return s.DeleteAnalysisFn(ctx, id)
}
