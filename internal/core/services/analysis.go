package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gutentopics/gutentopics/internal/core/domain"
	"github.com/gutentopics/gutentopics/internal/core/ports/driven"
	"github.com/gutentopics/gutentopics/internal/core/ports/driving"
	"github.com/gutentopics/gutentopics/internal/logger"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// AnalysisService runs one uploaded ebook through normalisation and topic
// attribution and stores the report.
type AnalysisService struct {
	normalizer driving.NormalizerService
	attributor driving.TopicAttributor
	corpus     driven.CorpusIndexStore
	analyses   driven.AnalysisStore
	recorder   driven.AnalysisRecorder
}

// NewAnalysisService creates a new analysis service.
// recorder may be nil.
func NewAnalysisService(
	normalizer driving.NormalizerService,
	attributor driving.TopicAttributor,
	corpus driven.CorpusIndexStore,
	analyses driven.AnalysisStore,
	recorder driven.AnalysisRecorder,
) *AnalysisService {
	return &AnalysisService{
		normalizer: normalizer,
		attributor: attributor,
		corpus:     corpus,
		analyses:   analyses,
		recorder:   recorder,
	}
}

// Analyze normalises content and attributes it to topics as a
// single-document batch. The upload's own topic is reported in
// Result.Assignments[0]; it is never added to the membership lists.
func (s *AnalysisService) Analyze(ctx context.Context, name string, content []byte) (*domain.Analysis, error) {
	doc, err := s.normalizer.Normalize(domain.RawDocument{Name: name, Content: content})
	if err != nil {
		s.record(domain.OutcomeOf(err), 0)
		return nil, fmt.Errorf("normalize %s: %w", name, err)
	}

	// The index is re-read for every analysis.
	index, err := s.corpus.Load(ctx)
	if err != nil {
		s.record(domain.OutcomeError, doc.Len())
		return nil, fmt.Errorf("load corpus index: %w", err)
	}

	result, err := s.attributor.AttributeTopics(ctx, []domain.NormalizedDocument{doc}, index)
	if err != nil {
		s.record(domain.OutcomeOf(err), doc.Len())
		return nil, fmt.Errorf("attribute %s: %w", name, err)
	}

	analysis := domain.Analysis{
		ID:         uuid.New().String(),
		Name:       name,
		TokenCount: doc.Len(),
		Result:     *result,
		CreatedAt:  time.Now(),
	}
	if err := s.analyses.Save(ctx, analysis); err != nil {
		s.record(domain.OutcomeError, doc.Len())
		return nil, fmt.Errorf("save analysis: %w", err)
	}

	outcome := domain.OutcomeOK
	if !result.HasTopics() {
		outcome = domain.OutcomeNoTopic
	}
	s.record(outcome, doc.Len())

	logger.Info("analysis complete",
		"id", analysis.ID, "name", name, "topic", analysis.Assignment().TopicID, "outcome", outcome)

	return &analysis, nil
}

// Get retrieves a stored analysis by ID.
func (s *AnalysisService) Get(ctx context.Context, id string) (*domain.Analysis, error) {
	return s.analyses.Get(ctx, id)
}

// List returns all stored analyses, newest first.
func (s *AnalysisService) List(ctx context.Context) ([]domain.Analysis, error) {
	return s.analyses.List(ctx)
}

func (s *AnalysisService) record(outcome domain.Outcome, tokens int) {
	if s.recorder != nil {
		s.recorder.RecordAnalysis(outcome, tokens)
	}
}
