package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/txnbuild"

	"lumenfund/internal/funding/ports"
	"lumenfund/internal/networks"
	"lumenfund/pkg/platform/sentinel"
)

// HorizonLedger implements ports.LedgerPort against a Horizon instance.
//
// horizonclient does not plumb context through its calls, so ctx is only
// honored as a pre-call cancellation check here.
type HorizonLedger struct {
	client horizonclient.ClientInterface
	logger *slog.Logger
}

type Option func(h *HorizonLedger)

func WithLogger(logger *slog.Logger) Option {
	return func(h *HorizonLedger) {
		h.logger = logger
	}
}

// WithClient swaps the underlying Horizon client, mainly for tests.
func WithClient(client horizonclient.ClientInterface) Option {
	return func(h *HorizonLedger) {
		h.client = client
	}
}

// NewHorizonLedger builds a ledger port for the given network profile.
// horizonURL overrides the profile endpoint when non-empty.
func NewHorizonLedger(profile networks.Profile, horizonURL string, opts ...Option) *HorizonLedger {
	url := profile.HorizonURL
	if horizonURL != "" {
		url = horizonURL
	}
	h := &HorizonLedger{
		client: &horizonclient.Client{
			HorizonURL: url,
			HTTP:       http.DefaultClient,
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *HorizonLedger) LoadAccount(ctx context.Context, accountID string) (*ports.AccountSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	acct, err := h.client.AccountDetail(horizonclient.AccountRequest{AccountID: accountID})
	if err != nil {
		if horizonclient.IsNotFoundError(err) {
			return nil, fmt.Errorf("account %s: %w", accountID, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("load account %s: %w", accountID, err)
	}
	native, err := acct.GetNativeBalance()
	if err != nil {
		return nil, fmt.Errorf("native balance of %s: %w", accountID, err)
	}
	seq, err := acct.GetSequenceNumber()
	if err != nil {
		return nil, fmt.Errorf("sequence number of %s: %w", accountID, err)
	}
	return &ports.AccountSnapshot{
		ID:            acct.AccountID,
		NativeBalance: native,
		Sequence:      seq,
	}, nil
}

func (h *HorizonLedger) SubmitTransaction(ctx context.Context, tx *txnbuild.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := h.client.SubmitTransaction(tx)
	if err != nil {
		detail := resultDetail(err)
		if h.logger != nil {
			h.logger.ErrorContext(ctx, "transaction rejected", "detail", detail)
		}
		return fmt.Errorf("%s: %w", detail, err)
	}
	return nil
}

func (h *HorizonLedger) Friendbot(ctx context.Context, accountID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := h.client.Fund(accountID); err != nil {
		return fmt.Errorf("friendbot grant for %s: %w", accountID, err)
	}
	return nil
}

// resultDetail pulls the transaction and operation result codes out of a
// Horizon problem response so rejections surface verbatim.
func resultDetail(err error) string {
	herr := horizonclient.GetError(err)
	if herr == nil {
		return "submission failed"
	}
	codes, cerr := herr.ResultCodes()
	if cerr != nil || codes == nil {
		return herr.Problem.Title
	}
	if len(codes.OperationCodes) == 0 {
		return codes.TransactionCode
	}
	return fmt.Sprintf("%s (%s)", codes.TransactionCode, strings.Join(codes.OperationCodes, ", "))
}
