package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitFillsIDAndTime(t *testing.T) {
	sink := NewMemory()

	Emit(context.Background(), sink, ActionAccountCreated, "GABC", "10.0000000")

	recorded := sink.Events()
	require.Len(t, recorded, 1)
	assert.NotEqual(t, recorded[0].ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.False(t, recorded[0].Time.IsZero())
	assert.Equal(t, ActionAccountCreated, recorded[0].Action)
	assert.Equal(t, "GABC", recorded[0].Account)
}

func TestEmitNilSinkIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		Emit(context.Background(), nil, ActionAccountExists, "GABC", "")
	})
}

func TestMemoryActions(t *testing.T) {
	sink := NewMemory()
	Emit(context.Background(), sink, ActionSponsorBootstrapped, "GSPONSOR", "")
	Emit(context.Background(), sink, ActionAccountCreated, "GTARGET", "1.0000000")

	assert.Equal(t, []Action{ActionSponsorBootstrapped, ActionAccountCreated}, sink.Actions())
}
