package funding

import (
	"fmt"

	"github.com/stellar/go/keypair"
	"github.com/stellar/go/txnbuild"

	"lumenfund/internal/funding/ports"
	"lumenfund/internal/identity"
	"lumenfund/internal/networks"
)

// memoText tags every transaction assembled here.
const memoText = "lumenfund"

// Assembler builds and signs the create-account transaction for one
// funding attempt. The operation list and signer set depend on which
// parties can sign:
//
//  1. target can sign: the target's future reserves are sponsored, so a
//     begin/end sponsorship pair brackets the creation and the target
//     co-signs.
//  2. always: a create-account operation carrying the desired balance.
//  3. anonymous sponsor: the target's own key is added as a weight-1
//     signer on the sponsoring account, so the caller keeps control of
//     whatever the undisclosed ephemeral sponsor still holds.
//
// The transaction carries a fixed memo and never expires on the ledger;
// fee and passphrase come from the network profile.
type Assembler struct {
	profile networks.Profile
}

func NewAssembler(profile networks.Profile) *Assembler {
	return &Assembler{profile: profile}
}

// Assemble returns the signed transaction. sponsor must be able to sign;
// sponsorAcct supplies the sequence number. The target co-signs iff it
// holds its secret seed.
func (a *Assembler) Assemble(
	target identity.Identity,
	sponsor identity.Identity,
	sponsorAcct *ports.AccountSnapshot,
	desiredBalance string,
	anonymousSponsor bool,
) (*txnbuild.Transaction, error) {
	ops := make([]txnbuild.Operation, 0, 4)

	if target.CanSign() {
		ops = append(ops, &txnbuild.BeginSponsoringFutureReserves{
			SponsoredID: target.Address(),
		})
	}

	ops = append(ops, &txnbuild.CreateAccount{
		Destination: target.Address(),
		Amount:      desiredBalance,
	})

	if anonymousSponsor {
		ops = append(ops, &txnbuild.SetOptions{
			Signer: &txnbuild.Signer{
				Address: target.Address(),
				Weight:  txnbuild.Threshold(1),
			},
		})
	}

	if target.CanSign() {
		ops = append(ops, &txnbuild.EndSponsoringFutureReserves{
			SourceAccount: target.Address(),
		})
	}

	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount: &txnbuild.SimpleAccount{
			AccountID: sponsorAcct.ID,
			Sequence:  sponsorAcct.Sequence,
		},
		IncrementSequenceNum: true,
		Operations:           ops,
		BaseFee:              a.profile.BaseFee,
		Memo:                 txnbuild.MemoText(memoText),
		Preconditions: txnbuild.Preconditions{
			TimeBounds: txnbuild.NewInfiniteTimeout(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("build transaction: %w", err)
	}

	signers := []*keypair.Full{sponsor.Keypair()}
	if target.CanSign() {
		signers = append(signers, target.Keypair())
	}
	tx, err = tx.Sign(a.profile.Passphrase, signers...)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}
	return tx, nil
}
