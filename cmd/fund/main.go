package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"lumenfund/internal/events"
	"lumenfund/internal/funding"
	"lumenfund/internal/funding/adapters"
	"lumenfund/internal/identity"
	"lumenfund/internal/networks"
	"lumenfund/internal/platform/config"
	"lumenfund/internal/platform/logger"
	"lumenfund/internal/platform/metrics"
)

// main wires the resolver, ledger adapter, and funding service, then funds
// each target credential given as an argument. Targets are independent, so
// they run concurrently. Business logic lives in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	networkName := flag.String("network", cfg.Network, "ledger network: testnet or livenet")
	horizonURL := flag.String("horizon-url", cfg.HorizonURL, "override the Horizon endpoint")
	desired := flag.String("amount", funding.DefaultDesiredBalance, "starting native balance for each new account")
	sponsorCred := flag.String("sponsor", "", "sponsor credential (secret seed); omit for an ephemeral sponsor")
	anonymous := flag.Bool("anonymous-sponsor", false, "treat the sponsor credential as undisclosed")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: fund [flags] CREDENTIAL...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	profile, err := networks.Lookup(*networkName)
	if err != nil {
		log.Error("invalid network", "error", err)
		os.Exit(1)
	}

	resolver := identity.NewResolver(
		identity.WithLogger(log),
		identity.WithEvents(events.NewSlogSink(log)),
	)
	ctx := context.Background()

	var sponsor identity.Identity
	if *sponsorCred != "" {
		sponsor, err = resolver.Resolve(ctx, *sponsorCred)
		if err != nil {
			log.Error("invalid sponsor credential", "error", err)
			os.Exit(1)
		}
	}

	ledger := adapters.NewHorizonLedger(profile, *horizonURL, adapters.WithLogger(log))
	service := funding.New(ledger, profile,
		funding.WithLogger(log),
		funding.WithEvents(events.NewSlogSink(log)),
		funding.WithMetrics(metrics.New()),
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, cred := range flag.Args() {
		g.Go(func() error {
			target, err := resolver.Resolve(gctx, cred)
			if err != nil {
				return fmt.Errorf("target %q: %w", cred, err)
			}
			snap, err := service.Fund(gctx, funding.Request{
				Target:           target,
				DesiredBalance:   *desired,
				Sponsor:          sponsor,
				AnonymousSponsor: *anonymous,
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%s\n", snap.ID, snap.NativeBalance)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("funding failed", "error", err)
		os.Exit(1)
	}
}
