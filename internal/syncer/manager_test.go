package syncer_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/lifetrack-api/internal/mocks"
	"github.com/phrazzld/lifetrack-api/internal/store"
	"github.com/phrazzld/lifetrack-api/internal/syncer"
)

func TestManagerForOwnerLoadsOnce(t *testing.T) {
	t.Parallel()

	remote := mocks.NewRemoteStore()
	remote.Seed(store.Record{
		Domain:  store.Finances,
		OwnerID: "alice",
		Data:    json.RawMessage(`{"savings":"12"}`),
	})

	m := syncer.NewManager(remote, testLogger())
	t.Cleanup(m.Close)

	first := m.ForOwner(context.Background(), "alice")
	assert.Equal(t, "12", first.Finance().Savings)

	again := m.ForOwner(context.Background(), "alice")
	assert.Same(t, first, again, "repeat requests must reuse the live engine")
}

func TestManagerIsolatesOwners(t *testing.T) {
	t.Parallel()

	remote := mocks.NewRemoteStore()
	remote.Seed(store.Record{
		Domain:  store.Finances,
		OwnerID: "alice",
		Data:    json.RawMessage(`{"savings":"12"}`),
	})

	m := syncer.NewManager(remote, testLogger())
	t.Cleanup(m.Close)

	alice := m.ForOwner(context.Background(), "alice")
	bob := m.ForOwner(context.Background(), "bob")

	require.NotSame(t, alice, bob)
	assert.Equal(t, "12", alice.Finance().Savings)
	assert.Equal(t, "", bob.Finance().Savings)
}

func TestManagerReleaseForgetsEngine(t *testing.T) {
	t.Parallel()

	remote := mocks.NewRemoteStore()
	m := syncer.NewManager(remote, testLogger())
	t.Cleanup(m.Close)

	first := m.ForOwner(context.Background(), "alice")
	m.Release("alice")

	second := m.ForOwner(context.Background(), "alice")
	assert.NotSame(t, first, second)
}
