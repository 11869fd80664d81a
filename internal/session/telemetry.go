package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vijay-prabhu/disha/internal/logging"
)

// Action is a tracked user interaction
type Action string

const (
	ActionViewResults      Action = "VIEW_RESULTS"
	ActionClickCareer      Action = "CLICK_CAREER"
	ActionThumbsUp         Action = "FEEDBACK_THUMBS_UP"
	ActionThumbsDown       Action = "FEEDBACK_THUMBS_DOWN"
	ActionDownloadReport   Action = "DOWNLOAD_REPORT"
	ActionTimeOnPage       Action = "TIME_ON_PAGE"
	ActionSubmitProfession Action = "SUBMIT_PROFESSIONAL_DATA"
)

var actions = []Action{
	ActionViewResults, ActionClickCareer, ActionThumbsUp, ActionThumbsDown,
	ActionDownloadReport, ActionTimeOnPage, ActionSubmitProfession,
}

// ParseAction parses an action name case-insensitively
func ParseAction(s string) (Action, error) {
	for _, a := range actions {
		if strings.EqualFold(s, string(a)) {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown action %q", s)
}

// DefaultMaxLogs is how many interactions are retained
const DefaultMaxLogs = 50

// Interaction is one logged event
type Interaction struct {
	ID        string         `json:"id"`
	SessionID string         `json:"session_id"`
	Action    Action         `json:"action"`
	TargetID  string         `json:"target_id,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// LogSink stores interactions
type LogSink interface {
	AppendInteraction(ctx context.Context, in Interaction) error
	// TrimInteractions deletes all but the newest keep interactions
	TrimInteractions(ctx context.Context, keep int) error
}

// TelemetryOptions configure a Telemetry
type TelemetryOptions struct {
	SessionID string
	Consent   bool
	MaxLogs   int
	Logger    *logging.Logger
	Now       func() time.Time
}

// Telemetry records interactions only when the user consented
type Telemetry struct {
	sessionID string
	consent   bool
	maxLogs   int
	sink      LogSink
	logger    *logging.Logger
	now       func() time.Time
}

// NewTelemetry creates a Telemetry writing to sink
func NewTelemetry(sink LogSink, opts TelemetryOptions) *Telemetry {
	if opts.SessionID == "" {
		opts.SessionID = uuid.New().String()
	}
	if opts.MaxLogs <= 0 {
		opts.MaxLogs = DefaultMaxLogs
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Telemetry{
		sessionID: opts.SessionID,
		consent:   opts.Consent,
		maxLogs:   opts.MaxLogs,
		sink:      sink,
		logger:    opts.Logger,
		now:       opts.Now,
	}
}

// Telemetry returns a Telemetry bound to the session's id and consent
func (s *AssessmentSession) Telemetry(sink LogSink, maxLogs int) *Telemetry {
	return NewTelemetry(sink, TelemetryOptions{
		SessionID: s.id,
		Consent:   s.consent,
		MaxLogs:   maxLogs,
		Logger:    s.logger,
	})
}

// Enabled reports whether events will be recorded
func (t *Telemetry) Enabled() bool {
	return t.consent
}

// Log records an interaction. Without consent it is a no-op that
// returns false.
func (t *Telemetry) Log(ctx context.Context, action Action, targetID string, metadata map[string]any) (bool, error) {
	if !t.consent {
		return false, nil
	}

	in := Interaction{
		ID:        uuid.New().String(),
		SessionID: t.sessionID,
		Action:    action,
		TargetID:  targetID,
		Metadata:  metadata,
		Timestamp: t.now(),
	}
	if err := t.sink.AppendInteraction(ctx, in); err != nil {
		return false, fmt.Errorf("failed to record interaction: %w", err)
	}
	if err := t.sink.TrimInteractions(ctx, t.maxLogs); err != nil {
		return true, fmt.Errorf("failed to trim interactions: %w", err)
	}

	t.logger.FromContext(ctx).Debug("interaction recorded", "action", string(action), "target", targetID)
	return true, nil
}

// MemorySink keeps interactions in memory
type MemorySink struct {
	mu   sync.Mutex
	logs []Interaction
}

func (m *MemorySink) AppendInteraction(_ context.Context, in Interaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, in)
	return nil
}

func (m *MemorySink) TrimInteractions(_ context.Context, keep int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.logs) > keep {
		m.logs = append([]Interaction(nil), m.logs[len(m.logs)-keep:]...)
	}
	return nil
}

// Interactions returns a copy of the stored interactions, oldest first
func (m *MemorySink) Interactions() []Interaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Interaction(nil), m.logs...)
}
