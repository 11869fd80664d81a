// Package session runs a single assessment: it accumulates question
// impacts into a score map, persists the result and records consented
// interaction telemetry.
package session

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/vijay-prabhu/disha/internal/assessment"
	"github.com/vijay-prabhu/disha/internal/logging"
	"github.com/vijay-prabhu/disha/internal/store"
)

// ErrFinished is returned when a finished session is modified
var ErrFinished = errors.New("session already finished")

// TeamPoints is recorded under Team when a sports user prefers team play
const TeamPoints = 10

// Impact is the effect of one answer on one category
type Impact struct {
	Category string `json:"category"`
	Value    int    `json:"value"`
}

// Options configure a session. Both fields come from the caller; the
// session never reads consent from global state.
type Options struct {
	ID      string // generated when empty
	Consent bool
	Logger  *logging.Logger
}

// AssessmentSession accumulates the answers of one assessment.
// It is not safe for concurrent use.
type AssessmentSession struct {
	id       string
	kind     assessment.Kind
	consent  bool
	scores   assessment.RawScoreMap
	answered int
	finished bool
	logger   *logging.Logger
}

// New starts a session of the given kind
func New(kind assessment.Kind, opts Options) *AssessmentSession {
	id := opts.ID
	if id == "" {
		id = uuid.New().String()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	return &AssessmentSession{
		id:      id,
		kind:    kind,
		consent: opts.Consent,
		scores:  assessment.RawScoreMap{},
		logger:  logger.With("session_id", id, "kind", string(kind)),
	}
}

func (s *AssessmentSession) ID() string            { return s.id }
func (s *AssessmentSession) Kind() assessment.Kind { return s.kind }
func (s *AssessmentSession) Consent() bool         { return s.consent }
func (s *AssessmentSession) Answered() int         { return s.answered }

// Scores returns a copy of the accumulated map
func (s *AssessmentSession) Scores() assessment.RawScoreMap {
	return s.scores.Clone()
}

// Context attaches the session id to ctx for logging
func (s *AssessmentSession) Context(ctx context.Context) context.Context {
	return logging.WithSessionID(ctx, s.id)
}

// Answer applies the impacts of one answer. Every category is checked
// against the kind's closed set before anything is added.
func (s *AssessmentSession) Answer(impacts ...Impact) error {
	if s.finished {
		return ErrFinished
	}
	var errs []error
	for _, im := range impacts {
		if !assessment.ValidCategory(s.kind, im.Category) {
			errs = append(errs, fmt.Errorf("unknown %s category %q", s.kind, im.Category))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	for _, im := range impacts {
		s.scores.Add(im.Category, im.Value)
	}
	s.answered++
	s.logger.Debug("answer recorded", "impacts", len(impacts))
	return nil
}

// SetTeamPreference records the team-versus-solo question of a sports session
func (s *AssessmentSession) SetTeamPreference(team bool) error {
	if s.finished {
		return ErrFinished
	}
	if s.kind != assessment.KindSports {
		return fmt.Errorf("team preference applies to sports sessions, not %s", s.kind)
	}
	if team {
		s.scores[assessment.Team] = TeamPoints
	} else {
		s.scores[assessment.Team] = 0
	}
	return nil
}

// RecordCategoryScore stores a per-field result of a creative session.
// percent is clamped to [0,100] and replaces any earlier value.
func (s *AssessmentSession) RecordCategoryScore(category string, percent int) error {
	if s.finished {
		return ErrFinished
	}
	if s.kind != assessment.KindCreative {
		return fmt.Errorf("category scores apply to creative sessions, not %s", s.kind)
	}
	if !assessment.ValidCategory(s.kind, category) {
		return fmt.Errorf("unknown creative field %q", category)
	}
	s.scores[category] = int(math.Max(0, math.Min(100, float64(percent))))
	return nil
}

// Finish persists the session's map under its kind's key and returns what
// was stored. Creative results merge into the stored creative map because
// each field is assessed separately; other kinds replace their map.
func (s *AssessmentSession) Finish(ctx context.Context, st store.ScoreStore) (assessment.RawScoreMap, error) {
	if s.finished {
		return nil, ErrFinished
	}

	key := s.kind.StoreKey()
	result := s.scores.Clone()

	if s.kind == assessment.KindCreative {
		existing, err := st.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", key, err)
		}
		merged := existing.Clone()
		for k, v := range result {
			merged[k] = v
		}
		result = merged
	}

	if err := st.Put(ctx, key, result); err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", key, err)
	}

	s.finished = true
	s.logger.FromContext(ctx).Info("session finished", "answers", s.answered, "categories", len(result))
	return result, nil
}
