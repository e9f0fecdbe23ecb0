package modal

import (
	"context"
	"sync"
)

// Modal is a typed modal definition registered on a Controller.
// S is the state shape shown to the user, R the result type delivered to the
// suspended opener.
type Modal[S, R any] struct {
	name          string
	c             *Controller
	defaultResult R

	mu    sync.Mutex
	state S
}

// Register adds a modal definition to the controller. defaultResult is the
// value delivered when Close is called without a payload. Registering the
// same name twice replaces the previous definition.
func Register[S, R any](c *Controller, name string, defaultResult R) *Modal[S, R] {
	return &Modal[S, R]{
		name:          name,
		c:             c,
		defaultResult: defaultResult,
	}
}

// Name returns the modal's registered name.
func (m *Modal[S, R]) Name() string {
	return m.name
}

// IsCurrent reports whether this modal holds the global current slot.
func (m *Modal[S, R]) IsCurrent() bool {
	return m.c.Current() == m.name
}

// State returns the state passed to the most recent Open.
func (m *Modal[S, R]) State() S {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Open makes this modal current and suspends the caller until Close resolves
// it. The suspension is bounded only by user interaction; pass a cancellable
// context to impose a deadline. If another modal (or a second open of this
// one) takes over the current slot first, Open returns domain.ErrSuperseded.
func (m *Modal[S, R]) Open(ctx context.Context, state S) (R, error) {
	m.mu.Lock()
	m.state = state
	m.mu.Unlock()

	h := m.c.takeOver(m.name)
	m.c.notifyOpened(m.name)

	select {
	case o := <-h.ch:
		return m.resultOf(o)
	case <-ctx.Done():
		m.c.abandon(m.name, h)
		// Close may have won the race; prefer its result.
		select {
		case o := <-h.ch:
			return m.resultOf(o)
		default:
		}
		var zero R
		return zero, ctx.Err()
	}
}

// Close resolves the pending Open with payload and clears the current slot if
// this modal holds it. Returns false when no open is pending.
func (m *Modal[S, R]) Close(payload R) bool {
	h := m.c.settle(m.name)
	if h == nil {
		return false
	}
	h.ch <- outcome{payload: payload}
	m.c.notifyClosed(m.name)
	return true
}

// CloseDefault resolves the pending Open with the declared default result.
func (m *Modal[S, R]) CloseDefault() bool {
	return m.Close(m.defaultResult)
}

func (m *Modal[S, R]) resultOf(o outcome) (R, error) {
	if o.err != nil {
		var zero R
		return zero, o.err
	}
	r, ok := o.payload.(R)
	if !ok {
		return m.defaultResult, nil
	}
	return r, nil
}
