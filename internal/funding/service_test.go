package funding

import (
	"context"
	"errors"
	"testing"

	"github.com/stellar/go/keypair"
	"github.com/stretchr/testify/suite"

	"lumenfund/internal/events"
	"lumenfund/internal/funding/ledgertest"
	"lumenfund/internal/identity"
	"lumenfund/internal/networks"
)

type FundingSuite struct {
	suite.Suite
	ledger *ledgertest.Ledger
	sink   *events.Memory
	svc    *Service
	ctx    context.Context
}

func (s *FundingSuite) SetupTest() {
	s.ledger = ledgertest.New()
	s.sink = events.NewMemory()
	s.svc = New(s.ledger, networks.Default(), WithEvents(s.sink))
	s.ctx = context.Background()
}

func TestFundingSuite(t *testing.T) {
	suite.Run(t, new(FundingSuite))
}

func (s *FundingSuite) signing() identity.Identity {
	return identity.FromKeypair(keypair.MustRandom())
}

func (s *FundingSuite) viewOnly() identity.Identity {
	id, err := identity.NewResolver().Resolve(s.ctx, keypair.MustRandom().Address())
	s.Require().NoError(err)
	return id
}

// TestExistingAccountIsNeverToppedUp verifies idempotence: an account that
// already exists is returned unchanged no matter what balance is asked for.
func (s *FundingSuite) TestExistingAccountIsNeverToppedUp() {
	target := s.signing()
	s.ledger.Put(target.Address(), "25")

	snap, err := s.svc.Fund(s.ctx, Request{Target: target, DesiredBalance: "100"})
	s.Require().NoError(err)

	s.Equal(target.Address(), snap.ID)
	s.Equal("25.0000000", snap.NativeBalance)
	s.Zero(s.ledger.SubmitCalls())
	s.Zero(s.ledger.FriendbotCalls())
	s.Equal([]events.Action{events.ActionAccountExists}, s.sink.Actions())
}

func (s *FundingSuite) TestDirectFundingFromExistingSponsor() {
	target := s.signing()
	sponsor := s.signing()
	s.ledger.Put(sponsor.Address(), "10000")

	snap, err := s.svc.Fund(s.ctx, Request{
		Target:         target,
		DesiredBalance: "50",
		Sponsor:        sponsor,
	})
	s.Require().NoError(err)

	s.Equal("50.0000000", snap.NativeBalance)
	s.Equal(1, s.ledger.SubmitCalls())
	s.Zero(s.ledger.FriendbotCalls())

	// The sponsor paid for the creation.
	left, err := s.svc.Balance(s.ctx, sponsor.Address())
	s.Require().NoError(err)
	s.Equal("9950.0000000", left)
}

func (s *FundingSuite) TestViewOnlyTargetWithSponsor() {
	target := s.viewOnly()
	sponsor := s.signing()
	s.ledger.Put(sponsor.Address(), "100")

	snap, err := s.svc.Fund(s.ctx, Request{
		Target:         target,
		DesiredBalance: "5",
		Sponsor:        sponsor,
	})
	s.Require().NoError(err)
	s.Equal("5.0000000", snap.NativeBalance)
}

// TestConfigurationGuards verifies invalid requests fail before any ledger
// call is made.
func (s *FundingSuite) TestConfigurationGuards() {
	s.Run("sponsor without signing capability", func() {
		_, err := s.svc.Fund(s.ctx, Request{
			Target:         s.signing(),
			DesiredBalance: "10",
			Sponsor:        s.viewOnly(),
		})
		s.Require().Error(err)
		s.Equal(CategoryConfiguration, CategoryOf(err))
		s.Zero(s.ledger.LoadCalls())
		s.Zero(s.ledger.SubmitCalls())
		s.Zero(s.ledger.FriendbotCalls())
	})

	s.Run("zero balance with view-only target", func() {
		_, err := s.svc.Fund(s.ctx, Request{
			Target:         s.viewOnly(),
			DesiredBalance: "0",
			Sponsor:        s.signing(),
		})
		s.Require().Error(err)
		s.Equal(CategoryConfiguration, CategoryOf(err))
		s.Zero(s.ledger.LoadCalls())
	})

	s.Run("negative balance", func() {
		_, err := s.svc.Fund(s.ctx, Request{
			Target:         s.signing(),
			DesiredBalance: "-5",
		})
		s.Require().Error(err)
		s.Equal(CategoryConfiguration, CategoryOf(err))
		s.Zero(s.ledger.LoadCalls())
	})
}

// TestIndirectBootstrap covers the default path: no sponsor supplied, so an
// ephemeral sponsor is bootstrapped through friendbot and the machine
// re-runs exactly once.
func (s *FundingSuite) TestIndirectBootstrap() {
	target := s.signing()

	snap, err := s.svc.Fund(s.ctx, Request{Target: target, DesiredBalance: "120"})
	s.Require().NoError(err)

	s.Equal("120.0000000", snap.NativeBalance)
	s.Equal(1, s.ledger.FriendbotCalls(), "exactly one grant, for the sponsor")
	s.Zero(s.ledger.FriendbotCallsFor(target.Address()))
	s.Equal(1, s.ledger.SubmitCalls(), "exactly one create-account submission")

	s.Require().Equal(
		[]events.Action{events.ActionSponsorBootstrapped, events.ActionAccountCreated},
		s.sink.Actions())

	// The bootstrapped sponsor's seed is discarded, so the target's own
	// key must have been injected as a signer on the sponsor account.
	sponsorAddr := s.sink.Events()[0].Account
	s.Equal([]string{target.Address()}, s.ledger.Signers(sponsorAddr))
}

// TestDirectBootstrap covers sponsor == target: friendbot funds the target
// itself and no create-account transaction is ever submitted.
func (s *FundingSuite) TestDirectBootstrap() {
	target := s.signing()

	snap, err := s.svc.Fund(s.ctx, Request{
		Target:  target,
		Sponsor: target,
	})
	s.Require().NoError(err)

	s.Equal(1, s.ledger.FriendbotCallsFor(target.Address()))
	s.Equal(1, s.ledger.FriendbotCalls())
	s.Zero(s.ledger.SubmitCalls())
	s.Equal("10000.0000000", snap.NativeBalance)
	s.Equal([]events.Action{events.ActionFriendbotFunded}, s.sink.Actions())
}

func (s *FundingSuite) TestSubmissionFailurePropagates() {
	target := s.signing()
	sponsor := s.signing()
	s.ledger.Put(sponsor.Address(), "10000")
	s.ledger.FailSubmissions(errors.New("tx_failed (op_underfunded)"))

	_, err := s.svc.Fund(s.ctx, Request{
		Target:         target,
		DesiredBalance: "50",
		Sponsor:        sponsor,
	})
	s.Require().Error(err)
	s.Equal(CategorySubmission, CategoryOf(err))
	s.Contains(err.Error(), "op_underfunded")
}

func (s *FundingSuite) TestFriendbotFailureEndsFallback() {
	s.ledger.FailFriendbot(errors.New("rate limited"))

	_, err := s.svc.Fund(s.ctx, Request{Target: s.signing(), DesiredBalance: "1"})
	s.Require().Error(err)
	s.Equal(CategoryFriendbot, CategoryOf(err))
	s.Equal(1, s.ledger.FriendbotCalls(), "no retry after a failed grant")
	s.Zero(s.ledger.SubmitCalls())
}

// TestFundTwiceScenario runs the documented end-to-end scenario: fund a new
// account with 1, then ask for 10 and get the unchanged 1 back.
func (s *FundingSuite) TestFundTwiceScenario() {
	target := s.signing()

	first, err := s.svc.Fund(s.ctx, Request{Target: target, DesiredBalance: "1"})
	s.Require().NoError(err)
	s.Equal("1.0000000", first.NativeBalance)

	second, err := s.svc.Fund(s.ctx, Request{Target: target, DesiredBalance: "10"})
	s.Require().NoError(err)
	s.Equal(first.ID, second.ID)
	s.Equal("1.0000000", second.NativeBalance)
	s.Equal(1, s.ledger.SubmitCalls(), "second call never submits")
}

func (s *FundingSuite) TestZeroBalanceSelfSponsored() {
	target := s.signing()
	sponsor := s.signing()
	s.ledger.Put(sponsor.Address(), "100")

	snap, err := s.svc.Fund(s.ctx, Request{Target: target, Sponsor: sponsor})
	s.Require().NoError(err)
	s.Equal("0.0000000", snap.NativeBalance)
}

func (s *FundingSuite) TestTeardownIsNotImplemented() {
	err := s.svc.Teardown(s.ctx, s.signing())
	s.Require().ErrorIs(err, ErrNotImplemented)
}
