package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Action classifies funding events by what happened on (or against) the
// ledger. Sinks can route or filter on these without parsing messages.
type Action string

const (
	// ActionAccountExists signals that the target account was already on
	// the ledger and was returned unchanged.
	ActionAccountExists Action = "account_exists"

	// ActionAccountCreated signals a successful create-account submission.
	ActionAccountCreated Action = "account_created"

	// ActionSponsorBootstrapped signals that a missing sponsor was brought
	// into existence through friendbot before the funding pass.
	ActionSponsorBootstrapped Action = "sponsor_bootstrapped"

	// ActionFriendbotFunded signals that the target itself was funded
	// directly by friendbot.
	ActionFriendbotFunded Action = "friendbot_funded"

	// ActionViewOnlyIdentity is the advisory emitted when a credential
	// resolves to a public account ID only: funds sent there may be
	// uncontrollable without the matching secret.
	ActionViewOnlyIdentity Action = "view_only_identity"
)

// Event is emitted from funding logic to capture key actions. Keep it
// transport-agnostic so sinks can fan out.
type Event struct {
	ID      uuid.UUID
	Time    time.Time
	Action  Action
	Account string
	Detail  string
}

// Sink receives funding events. Implementations must be safe for
// concurrent use; the core never blocks on a sink error.
type Sink interface {
	Emit(ctx context.Context, ev Event)
}

// Emit fills in ID and timestamp and forwards to sink. A nil sink is a
// no-op so callers never need to guard.
func Emit(ctx context.Context, sink Sink, action Action, account, detail string) {
	if sink == nil {
		return
	}
	sink.Emit(ctx, Event{
		ID:      uuid.New(),
		Time:    time.Now(),
		Action:  action,
		Account: account,
		Detail:  detail,
	})
}

// SlogSink writes events to a structured logger.
type SlogSink struct {
	logger *slog.Logger
}

func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{logger: logger}
}

func (s *SlogSink) Emit(ctx context.Context, ev Event) {
	if s.logger == nil {
		return
	}
	s.logger.InfoContext(ctx, string(ev.Action),
		"event_id", ev.ID.String(),
		"account", ev.Account,
		"detail", ev.Detail,
	)
}

// Memory records events in order for tests.
type Memory struct {
	mu     sync.Mutex
	events []Event
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Emit(_ context.Context, ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
}

// Events returns a copy of everything recorded so far.
func (m *Memory) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// Actions returns just the recorded action sequence.
func (m *Memory) Actions() []Action {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Action, 0, len(m.events))
	for _, ev := range m.events {
		out = append(out, ev.Action)
	}
	return out
}
