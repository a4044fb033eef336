package funding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"lumenfund/internal/events"
	"lumenfund/internal/funding/ports"
	"lumenfund/internal/identity"
	"lumenfund/internal/networks"
	"lumenfund/internal/platform/metrics"
	"lumenfund/pkg/platform/sentinel"
)

// state enumerates the funding state machine. Transitions are driven by
// Fund; keeping them explicit makes the bootstrap/re-run behavior
// auditable and independently testable. Request validation happens before
// the machine starts, so configuration failures never touch the ledger.
type state int

const (
	stateCheckExisting state = iota
	stateLookupSponsor
	stateBuildAndSubmit
	stateBootstrap
)

// maxPasses bounds the bootstrap re-run: after a successful grant the
// sponsor exists, so the bootstrap branch cannot be re-entered.
const maxPasses = 2

// Service guarantees that a target account exists on the ledger with the
// requested starting balance, picking whichever funding path applies: an
// existing sponsor, a freshly bootstrapped sponsor, or friendbot directly.
// Stateless between calls; safe for concurrent use across targets.
type Service struct {
	ledger    ports.LedgerPort
	profile   networks.Profile
	assembler *Assembler
	logger    *slog.Logger
	sink      events.Sink
	metrics   *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithEvents(sink events.Sink) Option {
	return func(s *Service) {
		s.sink = sink
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service. The core is silent and unobserved by default;
// wire a logger, event sink, or metrics through options.
func New(ledger ports.LedgerPort, profile networks.Profile, opts ...Option) *Service {
	s := &Service{
		ledger:    ledger,
		profile:   profile,
		assembler: NewAssembler(profile),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fund runs the funding state machine for one request and returns the
// resulting account snapshot.
//
// An already-existing target is returned unchanged regardless of its
// balance, which makes the whole operation idempotent. A sponsor that does
// not yet exist is bootstrapped through friendbot and the machine re-runs
// once with the sponsor marked anonymous; when the sponsor IS the target,
// friendbot funds it directly and no transaction is submitted.
func (s *Service) Fund(ctx context.Context, req Request) (*ports.AccountSnapshot, error) {
	stroops, err := req.balanceStroops()
	if err != nil {
		return nil, s.fail(newError(CategoryConfiguration, req.Target.Address(),
			"invalid desired balance", err))
	}

	sponsor := req.Sponsor
	if sponsor.IsZero() {
		sponsor, err = identity.Ephemeral()
		if err != nil {
			return nil, s.fail(newError(CategoryConfiguration, req.Target.Address(),
				"generate ephemeral sponsor", err))
		}
	}

	// Both checks are pure; an invalid request never reaches the ledger.
	if !sponsor.CanSign() {
		return nil, s.fail(newError(CategoryConfiguration, req.Target.Address(),
			"sponsor cannot sign: a sponsor must authorize the creation transaction", nil))
	}
	if stroops == 0 && !req.Target.CanSign() {
		return nil, s.fail(newError(CategoryConfiguration, req.Target.Address(),
			"a zero-balance account is self-sponsored and requires the target's own signature", nil))
	}

	desired := req.DesiredBalance
	if desired == "" {
		desired = DefaultDesiredBalance
	}

	var (
		sponsorAcct  *ports.AccountSnapshot
		bootstrapped bool
		anonymous    = req.AnonymousSponsor
	)

	st := stateCheckExisting
	for pass := 0; pass < maxPasses; {
		switch st {
		case stateCheckExisting:
			snap, err := s.ledger.LoadAccount(ctx, req.Target.Address())
			if err == nil {
				s.logDebug(ctx, "target already exists", "account", snap.ID)
				events.Emit(ctx, s.sink, events.ActionAccountExists, snap.ID, snap.NativeBalance)
				s.observe(metrics.PathExisting)
				return snap, nil
			}
			if !errors.Is(err, sentinel.ErrNotFound) {
				return nil, s.fail(newError(CategoryLedger, req.Target.Address(),
					"load target account", err))
			}
			st = stateLookupSponsor

		case stateLookupSponsor:
			acct, err := s.ledger.LoadAccount(ctx, sponsor.Address())
			switch {
			case err == nil:
				sponsorAcct = acct
				st = stateBuildAndSubmit
			case errors.Is(err, sentinel.ErrNotFound):
				st = stateBootstrap
			default:
				return nil, s.fail(newError(CategoryLedger, sponsor.Address(),
					"load sponsor account", err))
			}

		case stateBuildAndSubmit:
			tx, err := s.assembler.Assemble(req.Target, sponsor, sponsorAcct, desired, anonymous)
			if err != nil {
				return nil, s.fail(newError(CategorySubmission, req.Target.Address(),
					"assemble transaction", err))
			}
			if err := s.ledger.SubmitTransaction(ctx, tx); err != nil {
				return nil, s.fail(newError(CategorySubmission, req.Target.Address(),
					"ledger rejected transaction", err))
			}
			snap, err := s.ledger.LoadAccount(ctx, req.Target.Address())
			if err != nil {
				return nil, s.fail(newError(CategoryLedger, req.Target.Address(),
					"reload created account", err))
			}
			s.logDebug(ctx, "account created", "account", snap.ID,
				"balance", snap.NativeBalance, "sponsor", sponsor.Address())
			events.Emit(ctx, s.sink, events.ActionAccountCreated, snap.ID, snap.NativeBalance)
			if bootstrapped {
				s.observe(metrics.PathFriendbotBootstrap)
			} else {
				s.observe(metrics.PathSponsored)
			}
			return snap, nil

		case stateBootstrap:
			if sponsor.Address() == req.Target.Address() {
				// The target is funding itself: hand it straight to
				// friendbot, no creation transaction.
				if err := s.ledger.Friendbot(ctx, req.Target.Address()); err != nil {
					return nil, s.fail(newError(CategoryFriendbot, req.Target.Address(),
						"friendbot grant failed", err))
				}
				snap, err := s.ledger.LoadAccount(ctx, req.Target.Address())
				if err != nil {
					return nil, s.fail(newError(CategoryLedger, req.Target.Address(),
						"reload friendbot-funded account", err))
				}
				events.Emit(ctx, s.sink, events.ActionFriendbotFunded, snap.ID, snap.NativeBalance)
				s.observe(metrics.PathFriendbotDirect)
				return snap, nil
			}

			// Bring the sponsor into existence, then re-run the machine.
			// The bootstrapped sponsor's credential is ephemeral, so the
			// re-run must inject the target's key as a signer.
			if err := s.ledger.Friendbot(ctx, sponsor.Address()); err != nil {
				return nil, s.fail(newError(CategoryFriendbot, sponsor.Address(),
					"friendbot grant for sponsor failed", err))
			}
			s.logDebug(ctx, "sponsor bootstrapped", "sponsor", sponsor.Address())
			events.Emit(ctx, s.sink, events.ActionSponsorBootstrapped, sponsor.Address(), "")
			anonymous = true
			bootstrapped = true
			pass++
			st = stateCheckExisting
		}
	}

	return nil, s.fail(newError(CategoryLedger, req.Target.Address(),
		fmt.Sprintf("funding did not settle within %d passes", maxPasses), nil))
}

// Balance returns the native balance of an existing account.
func (s *Service) Balance(ctx context.Context, accountID string) (string, error) {
	snap, err := s.ledger.LoadAccount(ctx, accountID)
	if err != nil {
		return "", fmt.Errorf("load account %s: %w", accountID, err)
	}
	return snap.NativeBalance, nil
}

// Teardown will eventually merge the target account back into its sponsor.
// Declared as part of the contract; always fails with ErrNotImplemented
// until a future version defines merge semantics.
func (s *Service) Teardown(ctx context.Context, target identity.Identity) error {
	_ = ctx
	_ = target
	return ErrNotImplemented
}

func (s *Service) fail(err *Error) error {
	if s.metrics != nil {
		s.metrics.ObserveFailure(string(err.Category))
	}
	if s.logger != nil {
		s.logger.Error("funding failed",
			"account", err.AccountID,
			"category", string(err.Category),
			"error", err)
	}
	return err
}

func (s *Service) observe(path string) {
	if s.metrics != nil {
		s.metrics.ObserveOutcome(path)
	}
}

func (s *Service) logDebug(ctx context.Context, msg string, args ...any) {
	if s.logger != nil {
		s.logger.DebugContext(ctx, msg, args...)
	}
}
