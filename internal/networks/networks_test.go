package networks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupDefaultsToTestnet(t *testing.T) {
	p, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, Testnet, p.Name)
	assert.Equal(t, Default(), p)
}

func TestLookupSupportedNetworks(t *testing.T) {
	for _, name := range []string{Testnet, Livenet} {
		p, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.Name)
		assert.NotEmpty(t, p.HorizonURL)
		assert.NotEmpty(t, p.Passphrase)
		assert.Positive(t, p.BaseFee)
	}
}

func TestLookupRejectsUnknownNetwork(t *testing.T) {
	_, err := Lookup("futurenet")
	assert.ErrorIs(t, err, ErrUnknownNetwork)
}

func TestProfilesAreDistinct(t *testing.T) {
	test, _ := Lookup(Testnet)
	live, _ := Lookup(Livenet)
	assert.NotEqual(t, test.Passphrase, live.Passphrase)
	assert.NotEqual(t, test.HorizonURL, live.HorizonURL)
}
