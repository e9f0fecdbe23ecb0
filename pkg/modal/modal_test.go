package modal_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-dev/lattice/pkg/domain"
	"github.com/lattice-dev/lattice/pkg/modal"
)

type promptState struct {
	Message string
}

func waitCurrent(t *testing.T, c *modal.Controller, name string) {
	t.Helper()
	require.Eventually(t, func() bool {
		return c.Current() == name
	}, time.Second, time.Millisecond, "modal %q never became current", name)
}

func TestOpenCloseResolvesWithPayload(t *testing.T) {
	c := modal.NewController()
	m := modal.Register[promptState, string](c, "rename", "dismissed")

	done := make(chan struct{})
	var got string
	var err error
	go func() {
		defer close(done)
		got, err = m.Open(context.Background(), promptState{Message: "new name?"})
	}()

	waitCurrent(t, c, "rename")
	assert.True(t, m.IsCurrent())
	assert.Equal(t, "new name?", m.State().Message)

	require.True(t, m.Close("index.ts"))
	<-done

	require.NoError(t, err)
	assert.Equal(t, "index.ts", got)
	assert.Equal(t, "", c.Current(), "closing must clear the current slot")
}

func TestCloseDefaultDeliversDeclaredDefault(t *testing.T) {
	c := modal.NewController()
	m := modal.Register[promptState, string](c, "confirm", "cancel")

	done := make(chan string, 1)
	go func() {
		got, err := m.Open(context.Background(), promptState{})
		assert.NoError(t, err)
		done <- got
	}()

	waitCurrent(t, c, "confirm")
	require.True(t, m.CloseDefault())
	assert.Equal(t, "cancel", <-done)
}

func TestSecondOpenSupersedesFirst(t *testing.T) {
	c := modal.NewController()
	a := modal.Register[promptState, string](c, "a", "")
	b := modal.Register[promptState, string](c, "b", "")

	aErr := make(chan error, 1)
	go func() {
		_, err := a.Open(context.Background(), promptState{})
		aErr <- err
	}()
	waitCurrent(t, c, "a")

	bDone := make(chan string, 1)
	go func() {
		got, err := b.Open(context.Background(), promptState{})
		assert.NoError(t, err)
		bDone <- got
	}()
	waitCurrent(t, c, "b")

	// The first modal's pending open is completed, not abandoned.
	require.ErrorIs(t, <-aErr, domain.ErrSuperseded)
	assert.False(t, a.IsCurrent())
	assert.True(t, b.IsCurrent())

	require.True(t, b.Close("done"))
	assert.Equal(t, "done", <-bDone)
}

func TestReopenSameModalSupersedesPrevious(t *testing.T) {
	c := modal.NewController()
	m := modal.Register[promptState, string](c, "share", "")

	firstErr := make(chan error, 1)
	go func() {
		_, err := m.Open(context.Background(), promptState{Message: "first"})
		firstErr <- err
	}()
	waitCurrent(t, c, "share")

	secondDone := make(chan string, 1)
	go func() {
		got, err := m.Open(context.Background(), promptState{Message: "second"})
		assert.NoError(t, err)
		secondDone <- got
	}()

	require.ErrorIs(t, <-firstErr, domain.ErrSuperseded)
	require.Eventually(t, func() bool {
		return m.State().Message == "second"
	}, time.Second, time.Millisecond)

	require.True(t, m.Close("ok"))
	assert.Equal(t, "ok", <-secondDone)
}

func TestCloseWithoutOpenIsNoop(t *testing.T) {
	c := modal.NewController()
	m := modal.Register[promptState, string](c, "lonely", "")

	assert.False(t, m.Close("ignored"))
	assert.Equal(t, "", c.Current())
}

func TestOpenHonorsContextCancellation(t *testing.T) {
	c := modal.NewController()
	m := modal.Register[promptState, string](c, "slow", "")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := m.Open(ctx, promptState{})
		done <- err
	}()
	waitCurrent(t, c, "slow")

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
	assert.Equal(t, "", c.Current(), "cancelled open must release the current slot")
	assert.False(t, m.Close("late"), "nothing should be pending after cancellation")
}

func TestSnapshotListsPendingModals(t *testing.T) {
	c := modal.NewController()
	m := modal.Register[promptState, string](c, "deploy", "")

	go func() {
		_, _ = m.Open(context.Background(), promptState{})
	}()
	waitCurrent(t, c, "deploy")

	snap := c.Snapshot()
	assert.Equal(t, "deploy", snap.Current)
	assert.Equal(t, []string{"deploy"}, snap.Pending)

	m.CloseDefault()
}
