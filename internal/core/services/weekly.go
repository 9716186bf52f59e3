package services

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/hanbit-labs/weekrep-cli/internal/core/domain"
	"github.com/hanbit-labs/weekrep-cli/internal/core/ports/driving"
	"github.com/hanbit-labs/weekrep-cli/internal/logger"
)

// Ensure WeeklyService implements the interface.
var _ driving.WeeklyService = (*WeeklyService)(nil)

// previewLimit bounds the per-bucket document preview.
const previewLimit = 3

// WeeklyService groups documents into week buckets. It owns the bucket
// mapping and the active policy selection exclusively; it is not safe
// for concurrent mutation from multiple callers.
type WeeklyService struct {
	policy  domain.WeekPolicy
	params  domain.WeekParams
	buckets map[int][]domain.Document
	lastRun string
}

// NewWeeklyService creates a weekly service with the given policy.
func NewWeeklyService(policy domain.WeekPolicy, params domain.WeekParams) (*WeeklyService, error) {
	s := &WeeklyService{buckets: make(map[int][]domain.Document)}
	if err := s.SetPolicy(policy, params); err != nil {
		return nil, err
	}
	return s, nil
}

// SetPolicy selects the active policy and parameters. Existing buckets
// are left untouched: switching the policy never reclassifies on its
// own, the caller must invoke Classify again.
func (s *WeeklyService) SetPolicy(policy domain.WeekPolicy, params domain.WeekParams) error {
	parsed, err := domain.ParseWeekPolicy(string(policy))
	if err != nil {
		return err
	}
	if parsed == domain.WeekPolicyProject && params.Anchor.IsZero() {
		return fmt.Errorf("%w: project policy requires an anchor date", domain.ErrInvalidInput)
	}

	s.policy = parsed
	s.params = params
	return nil
}

// Policy returns the active week-numbering policy.
func (s *WeeklyService) Policy() domain.WeekPolicy {
	return s.policy
}

// Params returns the active policy parameters.
func (s *WeeklyService) Params() domain.WeekParams {
	return s.params
}

// Classify rebuilds the week buckets from the given documents in one
// pass. The previous mapping is discarded entirely, never merged into.
// Documents without a usable date are excluded silently. Input order is
// preserved within each bucket, and each classified document gets its
// DateInfo attached.
func (s *WeeklyService) Classify(docs []domain.Document) (map[int][]domain.Document, error) {
	s.lastRun = uuid.New().String()
	s.buckets = make(map[int][]domain.Document)

	skipped := 0
	for _, doc := range docs {
		date, ok := doc.Date()
		if !ok {
			skipped++
			continue
		}

		week, err := domain.WeekNumber(date, s.policy, s.params)
		if err != nil {
			return nil, err
		}

		info := &domain.DateInfo{
			Date:      date,
			Formatted: domain.FormatDate(date),
			Week:      week,
		}
		if r, ok := domain.WeekRange(week, s.policy, s.params); ok {
			info.Range = &r
		}
		doc.DateInfo = info

		s.buckets[week] = append(s.buckets[week], doc)
	}

	logger.Debug("classification run %s: %d documents into %d weeks under %s policy (%d without date)",
		s.lastRun, len(docs)-skipped, len(s.buckets), s.policy, skipped)
	return s.buckets, nil
}

// LastRunID returns the id of the most recent classification run,
// or empty if Classify has not been called. Used for log correlation.
func (s *WeeklyService) LastRunID() string {
	return s.lastRun
}

// Weeks returns the populated week numbers in ascending order.
func (s *WeeklyService) Weeks() []int {
	weeks := make([]int, 0, len(s.buckets))
	for week := range s.buckets {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)
	return weeks
}

// Bucket returns the documents of one week in insertion order.
func (s *WeeklyService) Bucket(week int) ([]domain.Document, error) {
	docs, ok := s.buckets[week]
	if !ok {
		return nil, fmt.Errorf("week %d: %w", week, domain.ErrWeekNotFound)
	}
	return docs, nil
}

// Preview returns the first documents of one week plus a count of the rest.
func (s *WeeklyService) Preview(week int) (*driving.BucketPreview, error) {
	docs, err := s.Bucket(week)
	if err != nil {
		return nil, err
	}

	n := len(docs)
	if n > previewLimit {
		n = previewLimit
	}

	preview := &driving.BucketPreview{
		Week:      week,
		Total:     len(docs),
		Documents: docs[:n],
		More:      len(docs) - n,
	}
	if r, ok := domain.WeekRange(week, s.policy, s.params); ok {
		preview.Range = &r
	}
	return preview, nil
}
