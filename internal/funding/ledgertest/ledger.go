package ledgertest

import (
	"context"
	"fmt"
	"sync"

	"github.com/stellar/go/amount"
	"github.com/stellar/go/txnbuild"

	"lumenfund/internal/funding/ports"
	"lumenfund/pkg/platform/sentinel"
)

// friendbotGrant mirrors the 10,000 XLM starter grant of the public
// testnet friendbot.
const friendbotGrant = "10000"

type account struct {
	balance  int64 // stroops
	sequence int64
	signers  []string
}

// Error Contract:
// All methods follow the ports.LedgerPort pattern:
// - LoadAccount wraps sentinel.ErrNotFound for missing accounts
// - SubmitTransaction returns the ledger-style rejection code verbatim
// - nil for successful operations
//
// Ledger is an in-memory LedgerPort for tests. It applies create-account
// operations from submitted transactions, enforces the ledger's
// account-uniqueness constraint, and counts calls per kind so tests can
// assert exactly how many network round trips an orchestration made.
type Ledger struct {
	mu       sync.Mutex
	accounts map[string]*account

	loadCalls      int
	submitCalls    int
	friendbotCalls map[string]int

	submitErr    error
	friendbotErr error
}

// New constructs an empty fake ledger.
func New() *Ledger {
	return &Ledger{
		accounts:       make(map[string]*account),
		friendbotCalls: make(map[string]int),
	}
}

// Put seeds an account with a native balance, bypassing the port.
func (l *Ledger) Put(accountID, nativeBalance string) {
	stroops, err := amount.ParseInt64(nativeBalance)
	if err != nil {
		panic(fmt.Sprintf("ledgertest: bad seed balance %q: %v", nativeBalance, err))
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.accounts[accountID] = &account{balance: stroops}
}

// FailSubmissions makes every subsequent SubmitTransaction return err.
func (l *Ledger) FailSubmissions(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.submitErr = err
}

// FailFriendbot makes every subsequent Friendbot call return err.
func (l *Ledger) FailFriendbot(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.friendbotErr = err
}

func (l *Ledger) LoadAccount(_ context.Context, accountID string) (*ports.AccountSnapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loadCalls++
	acct, ok := l.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", accountID, sentinel.ErrNotFound)
	}
	return &ports.AccountSnapshot{
		ID:            accountID,
		NativeBalance: amount.StringFromInt64(acct.balance),
		Sequence:      acct.sequence,
	}, nil
}

func (l *Ledger) SubmitTransaction(_ context.Context, tx *txnbuild.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.submitCalls++
	if l.submitErr != nil {
		return l.submitErr
	}

	src := tx.SourceAccount()
	source, ok := l.accounts[src.AccountID]
	if !ok {
		return fmt.Errorf("tx_failed (tx_no_source_account): %s", src.AccountID)
	}
	if len(tx.Signatures()) == 0 {
		return fmt.Errorf("tx_failed (tx_bad_auth): no signatures")
	}

	for _, op := range tx.Operations() {
		switch op := op.(type) {
		case *txnbuild.CreateAccount:
			if _, exists := l.accounts[op.Destination]; exists {
				return fmt.Errorf("tx_failed (op_already_exists): %s", op.Destination)
			}
			stroops, err := amount.ParseInt64(op.Amount)
			if err != nil {
				return fmt.Errorf("tx_failed (op_malformed): %v", err)
			}
			if source.balance < stroops {
				return fmt.Errorf("tx_failed (op_underfunded): %s", src.AccountID)
			}
			source.balance -= stroops
			l.accounts[op.Destination] = &account{balance: stroops}

		case *txnbuild.SetOptions:
			if op.Signer != nil {
				source.signers = append(source.signers, op.Signer.Address)
			}

		case *txnbuild.BeginSponsoringFutureReserves,
			*txnbuild.EndSponsoringFutureReserves:
			// Reserve accounting is not modeled here.

		default:
			return fmt.Errorf("tx_failed (op_not_supported): %T", op)
		}
	}

	source.sequence++
	return nil
}

func (l *Ledger) Friendbot(_ context.Context, accountID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.friendbotCalls[accountID]++
	if l.friendbotErr != nil {
		return l.friendbotErr
	}
	if _, exists := l.accounts[accountID]; exists {
		return fmt.Errorf("account %s is already funded", accountID)
	}
	stroops, _ := amount.ParseInt64(friendbotGrant)
	l.accounts[accountID] = &account{balance: stroops}
	return nil
}

// LoadCalls returns how many account lookups were made.
func (l *Ledger) LoadCalls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadCalls
}

// SubmitCalls returns how many transactions were submitted.
func (l *Ledger) SubmitCalls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.submitCalls
}

// FriendbotCalls returns how many grants were requested in total.
func (l *Ledger) FriendbotCalls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	total := 0
	for _, n := range l.friendbotCalls {
		total += n
	}
	return total
}

// FriendbotCallsFor returns how many grants were requested for one account.
func (l *Ledger) FriendbotCallsFor(accountID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.friendbotCalls[accountID]
}

// Signers returns the extra signers recorded on an account.
func (l *Ledger) Signers(accountID string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	acct, ok := l.accounts[accountID]
	if !ok {
		return nil
	}
	out := make([]string, len(acct.signers))
	copy(out, acct.signers)
	return out
}
