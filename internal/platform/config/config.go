package config

import "os"

// Config captures process-level settings for the CLI harness.
type Config struct {
	// Network selects the ledger network profile ("testnet" or "livenet").
	Network string

	// HorizonURL overrides the profile's Horizon endpoint when set.
	HorizonURL string
}

// FromEnv builds a Config from environment variables so main stays lean.
// Flags layered on top take precedence.
func FromEnv() Config {
	network := os.Getenv("LUMENFUND_NETWORK")
	if network == "" {
		network = "testnet"
	}
	return Config{
		Network:    network,
		HorizonURL: os.Getenv("LUMENFUND_HORIZON_URL"),
	}
}
