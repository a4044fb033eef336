package funding

import (
	"errors"
	"fmt"
)

// Category defines the normalized failure taxonomy for funding attempts.
type Category string

const (
	// CategoryConfiguration indicates the request was invalid before any
	// ledger call: a sponsor that cannot sign, or a zero-balance request
	// for a target that cannot co-sign its own creation.
	CategoryConfiguration Category = "configuration"

	// CategorySubmission indicates the ledger rejected the assembled
	// transaction. The remote rejection detail is carried verbatim.
	CategorySubmission Category = "submission"

	// CategoryFriendbot indicates the bootstrap grant failed (already
	// funded, rate-limited, unreachable). Ends the fallback chain.
	CategoryFriendbot Category = "friendbot"

	// CategoryLedger indicates an account lookup failed for a reason other
	// than the account not existing.
	CategoryLedger Category = "ledger"
)

// ErrNotImplemented is returned by Teardown until account merge support
// lands. Part of the documented contract, not a bug.
var ErrNotImplemented = errors.New("teardown is not implemented")

// Error wraps funding failures with normalized categorization.
type Error struct {
	Category   Category
	AccountID  string
	Message    string
	Underlying error
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("funding %s [%s]: %s: %v", e.AccountID, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("funding %s [%s]: %s", e.AccountID, e.Category, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

func newError(category Category, accountID, message string, underlying error) *Error {
	return &Error{
		Category:   category,
		AccountID:  accountID,
		Message:    message,
		Underlying: underlying,
	}
}

// CategoryOf extracts the error category from an error, or empty when the
// error did not originate here.
func CategoryOf(err error) Category {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Category
	}
	return ""
}
