package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/stellar/go/keypair"
	"github.com/stellar/go/strkey"

	"lumenfund/internal/events"
)

// ErrInvalidIdentity is returned when a credential string matches neither
// an ed25519 secret seed nor a public account ID.
var ErrInvalidIdentity = errors.New("credential matches neither a secret seed nor a public account ID")

// Identity is an account identity on the ledger with an optional signing
// capability. Immutable once created; construct through Resolver.Resolve,
// Ephemeral, or FromKeypair.
type Identity struct {
	address string
	full    *keypair.Full
}

// Address returns the public account ID.
func (i Identity) Address() string {
	return i.address
}

// CanSign reports whether this identity holds the secret seed and can
// therefore authorize transactions.
func (i Identity) CanSign() bool {
	return i.full != nil
}

// Keypair returns the full signing keypair, or nil for a view-only
// identity. Callers must check CanSign first when a signature is required.
func (i Identity) Keypair() *keypair.Full {
	return i.full
}

// IsZero reports whether the identity is the zero value.
func (i Identity) IsZero() bool {
	return i.address == ""
}

// FromKeypair wraps an existing full keypair as a signing identity.
func FromKeypair(full *keypair.Full) Identity {
	return Identity{address: full.Address(), full: full}
}

// Ephemeral generates a fresh random signing identity. Used as the default
// sponsor when the caller supplies none; its seed is never persisted.
func Ephemeral() (Identity, error) {
	full, err := keypair.Random()
	if err != nil {
		return Identity{}, fmt.Errorf("generate ephemeral keypair: %w", err)
	}
	return FromKeypair(full), nil
}

// Resolver classifies credential strings into identities.
type Resolver struct {
	logger *slog.Logger
	sink   events.Sink
}

type Option func(r *Resolver)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

func WithEvents(sink events.Sink) Option {
	return func(r *Resolver) {
		r.sink = sink
	}
}

func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve classifies a credential string explicitly: a valid secret seed
// yields a signing identity, a valid public account ID yields a view-only
// identity, anything else fails with ErrInvalidIdentity. A view-only
// result additionally emits an advisory event, since funds sent to such an
// identity may be uncontrollable without the matching secret.
func (r *Resolver) Resolve(ctx context.Context, credential string) (Identity, error) {
	switch {
	case strkey.IsValidEd25519SecretSeed(credential):
		full, err := keypair.ParseFull(credential)
		if err != nil {
			return Identity{}, fmt.Errorf("parse secret seed: %w", err)
		}
		return FromKeypair(full), nil

	case strkey.IsValidEd25519PublicKey(credential):
		if r.logger != nil {
			r.logger.WarnContext(ctx, "credential is view-only",
				"account", credential)
		}
		events.Emit(ctx, r.sink, events.ActionViewOnlyIdentity, credential,
			"no secret seed supplied; the created account cannot be controlled through this process")
		return Identity{address: credential}, nil

	default:
		return Identity{}, ErrInvalidIdentity
	}
}
