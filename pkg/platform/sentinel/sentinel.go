package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Ledger adapters return these
// (optionally wrapped) so the funding service can translate them into
// domain outcomes.
//
// These represent factual states about remote resources, not validation
// failures:
// - ErrNotFound: account does not exist on the ledger
// - ErrUnavailable: ledger endpoint temporarily unreachable
//
// For validation errors (bad credential, bad amount), packages own their
// sentinels directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
