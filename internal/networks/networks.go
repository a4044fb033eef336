package networks

import (
	"errors"
	"fmt"

	"github.com/stellar/go/network"
	"github.com/stellar/go/txnbuild"
)

// ErrUnknownNetwork is returned for a network name outside the supported set.
var ErrUnknownNetwork = errors.New("unknown network")

// Supported network names.
const (
	Testnet = "testnet"
	Livenet = "livenet"
)

// Profile bundles the connection, fee, and passphrase facts for one
// network. Profiles are process-wide, read-only values.
type Profile struct {
	Name       string
	HorizonURL string
	Passphrase string
	BaseFee    int64
}

var profiles = map[string]Profile{
	Testnet: {
		Name:       Testnet,
		HorizonURL: "https://horizon-testnet.stellar.org",
		Passphrase: network.TestNetworkPassphrase,
		BaseFee:    txnbuild.MinBaseFee,
	},
	Livenet: {
		Name:       Livenet,
		HorizonURL: "https://horizon.stellar.org",
		Passphrase: network.PublicNetworkPassphrase,
		BaseFee:    txnbuild.MinBaseFee,
	},
}

// Default returns the testnet profile.
func Default() Profile {
	return profiles[Testnet]
}

// Lookup resolves a network name to its profile. An empty name defaults to
// testnet; anything outside the supported set fails with ErrUnknownNetwork.
// Pure lookup, no network access.
func Lookup(name string) (Profile, error) {
	if name == "" {
		return Default(), nil
	}
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
	}
	return p, nil
}
