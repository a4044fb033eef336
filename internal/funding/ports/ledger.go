package ports

//go:generate mockgen -source=ledger.go -destination=../mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/stellar/go/txnbuild"
)

// LedgerPort is the contract the funding service consumes. It lets the
// orchestration run against Horizon, a fake ledger, or a mock without
// depending on HTTP or a specific client implementation.
//
// All three calls are single-shot: no implicit retry happens below this
// interface. LoadAccount signals a missing account by wrapping
// sentinel.ErrNotFound.
type LedgerPort interface {
	// LoadAccount fetches the current snapshot of an account.
	LoadAccount(ctx context.Context, accountID string) (*AccountSnapshot, error)

	// SubmitTransaction submits a signed transaction. A ledger-side
	// rejection is returned verbatim in the error detail.
	SubmitTransaction(ctx context.Context, tx *txnbuild.Transaction) error

	// Friendbot asks the network's bootstrap service to deposit starter
	// funds into the given account. Non-production networks only.
	Friendbot(ctx context.Context, accountID string) error
}

// AccountSnapshot is a read-only view of a ledger account. The funding
// service never mutates one.
type AccountSnapshot struct {
	ID            string
	NativeBalance string
	Sequence      int64
}
