package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vijay-prabhu/disha/internal/assessment"
	"github.com/vijay-prabhu/disha/internal/holistic"
	"github.com/vijay-prabhu/disha/internal/scholarship"
	"github.com/vijay-prabhu/disha/internal/scoring"
	"github.com/vijay-prabhu/disha/internal/session"
)

const defaultScholarshipLimit = 20

func (s *Server) registerHandlers() {
	s.handlers["rank_sports"] = s.handleRankSports
	s.handlers["get_holistic_profile"] = s.handleGetHolisticProfile
	s.handlers["scholarship_status"] = s.handleScholarshipStatus
	s.handlers["list_scholarships"] = s.handleListScholarships
}

func decodeParams(params json.RawMessage, v any) error {
	if len(params) == 0 || string(params) == "null" {
		return nil
	}
	if err := json.Unmarshal(params, v); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}

type rankSportsParams struct {
	Limit int `json:"limit"`
}

func (s *Server) handleRankSports(ctx context.Context, params json.RawMessage) (any, error) {
	var p rankSportsParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}

	stats := assessment.DefaultPhysicalStats()
	stored, err := s.db.GetPhysicalStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if stored != nil {
		stats = *stored
	}

	scores, err := s.db.Get(ctx, assessment.KindSports.StoreKey())
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	v := scoring.BuildUserVector(stats, scores, s.config.Scoring.CategoryMax)
	results := s.scorer.Rank(v, stats, s.catalog)
	if p.Limit > 0 && p.Limit < len(results) {
		results = results[:p.Limit]
	}
	return results, nil
}

func (s *Server) handleGetHolisticProfile(ctx context.Context, params json.RawMessage) (any, error) {
	profile, err := s.profile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return "No assessments completed yet.", nil
	}
	return profile, nil
}

// profile builds the holistic profile and records the view when consented
func (s *Server) profile(ctx context.Context) (*holistic.Profile, error) {
	profile, err := s.aggregator.FromStore(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if profile == nil {
		return nil, nil
	}

	consent, err := s.db.Consent(ctx)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	tel := session.NewTelemetry(s.db, session.TelemetryOptions{
		Consent: consent,
		MaxLogs: s.config.Telemetry.MaxLogs,
		Logger:  s.logger,
		Now:     s.now,
	})
	if _, err := tel.Log(ctx, session.ActionViewResults, "holistic_profile", map[string]any{"via": "mcp"}); err != nil {
		s.logger.FromContext(ctx).Warn("failed to record interaction", "error", err)
	}
	return profile, nil
}

type scholarshipStatusParams struct {
	ID string `json:"id"`
}

func (s *Server) handleScholarshipStatus(ctx context.Context, params json.RawMessage) (any, error) {
	var p scholarshipStatusParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, fmt.Errorf("id is required")
	}

	r, err := s.db.GetScholarship(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if r == nil {
		return nil, fmt.Errorf("scholarship not found: %s", p.ID)
	}

	return scholarship.Entry{Record: *r, Status: s.engine.Analyze(*r, s.now())}, nil
}

type listScholarshipsParams struct {
	scholarship.Criteria
	Income   string `json:"income"`
	OpenOnly bool   `json:"open_only"`
	Limit    int    `json:"limit"`
}

func (s *Server) handleListScholarships(ctx context.Context, params json.RawMessage) (any, error) {
	var p listScholarshipsParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}

	income, err := scholarship.ParseIncomeBracket(p.Income)
	if err != nil {
		return nil, err
	}
	criteria := p.Criteria
	criteria.Income = income

	entries, err := s.scholarships(ctx, criteria, p.OpenOnly)
	if err != nil {
		return nil, err
	}

	limit := p.Limit
	if limit <= 0 {
		limit = defaultScholarshipLimit
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *Server) scholarships(ctx context.Context, criteria scholarship.Criteria, openOnly bool) ([]scholarship.Entry, error) {
	records, err := s.db.ListScholarships(ctx)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	records = scholarship.Filter(records, criteria)

	if openOnly {
		return s.engine.Open(records, s.now()), nil
	}
	return s.engine.Annotate(records, s.now()), nil
}

// Resource handlers

func (s *Server) handleReadResource(ctx context.Context, uri string) (string, error) {
	switch uri {
	case "disha://profile":
		return s.getResourceProfile(ctx)
	case "disha://scholarships/open":
		return s.getResourceOpenScholarships(ctx)
	default:
		return "", fmt.Errorf("unknown resource: %s", uri)
	}
}

func (s *Server) getResourceProfile(ctx context.Context) (string, error) {
	p, err := s.profile(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Holistic Profile\n================\n\n")

	if p == nil {
		b.WriteString("No assessments completed yet. Run 'disha scores set' to record one.\n")
		return b.String(), nil
	}

	fmt.Fprintf(&b, "Cognitive index:   %d\n", p.Indices.Cognitive)
	fmt.Fprintf(&b, "Personality type:  %s\n", p.Indices.PersonalityType)
	fmt.Fprintf(&b, "Sports aptitude:   %d\n", p.Indices.SportsAptitude)
	fmt.Fprintf(&b, "Creative index:    %d\n\n", p.Indices.CreativeIndex)

	b.WriteString("ACADEMIC STREAMS:\n")
	for _, st := range p.Academic {
		fmt.Fprintf(&b, "  - %s (%.1f): %s\n", st.Stream, st.Score, st.Reason)
	}

	b.WriteString("\nCAREER DOMAINS:\n")
	for _, c := range p.Careers {
		fmt.Fprintf(&b, "  - %s (%.1f): %s\n", c.Domain, c.Score, strings.Join(c.Steps, ", "))
	}

	if len(p.Sports) > 0 {
		b.WriteString("\nSPORTS CLUSTERS:\n")
		for _, r := range p.Sports {
			fmt.Fprintf(&b, "  - %s (%.0f)\n", r.Name, r.Score)
		}
	}
	if len(p.Creative) > 0 {
		b.WriteString("\nCREATIVE FIELDS:\n")
		for _, r := range p.Creative {
			fmt.Fprintf(&b, "  - %s (%.0f)\n", r.Name, r.Score)
		}
	}

	return b.String(), nil
}

func (s *Server) getResourceOpenScholarships(ctx context.Context) (string, error) {
	entries, err := s.scholarships(ctx, scholarship.Criteria{}, true)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Open Scholarships\n=================\n\n")

	if len(entries) == 0 {
		b.WriteString("No open scholarships. Add one with 'disha scholarship add'.\n")
		return b.String(), nil
	}

	for _, e := range entries {
		renewed := ""
		if e.Status.IsAutoRenewed {
			renewed = " (renewed)"
		}
		fmt.Fprintf(&b, "- %s | %s | %s%s\n", e.Record.Name, e.Record.Provider, e.Status.Label, renewed)
	}
	return b.String(), nil
}
