package funding

import (
	"fmt"

	"github.com/stellar/go/amount"

	"lumenfund/internal/identity"
)

// DefaultDesiredBalance is the documented default: a self-sponsored
// zero-reserve account. A zero amount requires the target's own signature.
const DefaultDesiredBalance = "0"

// Request describes one funding attempt. Unset fields take the documented
// defaults; there is no loose options bag.
type Request struct {
	// Target is the account to provision.
	Target identity.Identity

	// DesiredBalance is the native-asset starting balance as a decimal
	// string, non-negative, at most seven decimal places. Empty means
	// DefaultDesiredBalance.
	DesiredBalance string

	// Sponsor pays the creation fee and reserve. Must be able to sign
	// when supplied. Zero value means a fresh ephemeral signing identity
	// is generated for this request.
	Sponsor identity.Identity

	// AnonymousSponsor marks the sponsor's credential as undisclosed, so
	// the assembled transaction injects the target's own key as a signer
	// on the sponsoring account.
	AnonymousSponsor bool
}

// balanceStroops validates DesiredBalance and returns it in stroops.
func (r Request) balanceStroops() (int64, error) {
	desired := r.DesiredBalance
	if desired == "" {
		desired = DefaultDesiredBalance
	}
	stroops, err := amount.ParseInt64(desired)
	if err != nil {
		return 0, fmt.Errorf("desired balance %q: %w", desired, err)
	}
	if stroops < 0 {
		return 0, fmt.Errorf("desired balance %q is negative", desired)
	}
	return stroops, nil
}
