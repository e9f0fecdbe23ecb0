package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/lattice-dev/lattice/internal/adapters/http"
	"github.com/lattice-dev/lattice/pkg/domain"
	"github.com/lattice-dev/lattice/pkg/modal"
	"github.com/lattice-dev/lattice/pkg/state"
)

func newDebugServer(t *testing.T) (*state.Container, *modal.Controller, *httptest.Server) {
	t.Helper()
	container := state.New()
	controller := modal.NewController()
	handler := httpadapter.NewHandler(container, controller, prometheus.NewRegistry())
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return container, controller, srv
}

func TestHealthz(t *testing.T) {
	_, _, srv := newDebugServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDebugSession(t *testing.T) {
	container, _, srv := newDebugServer(t)
	container.SetHasLogIn(true)
	container.SetContributors([]string{"ada"})

	resp, err := http.Get(srv.URL + "/debug/session")
	require.NoError(t, err)
	defer resp.Body.Close()

	var session domain.Session
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
	assert.True(t, session.HasLogIn)
	assert.Equal(t, []string{"ada"}, session.Contributors)
}

func TestDebugSandboxNotFound(t *testing.T) {
	_, _, srv := newDebugServer(t)
	resp, err := http.Get(srv.URL + "/debug/sandbox")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDebugModalSnapshot(t *testing.T) {
	_, controller, srv := newDebugServer(t)
	m := modal.Register[struct{}, string](controller, "preferences", "")
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() {
		_, _ = m.Open(ctx, struct{}{})
	}()
	require.Eventually(t, func() bool {
		return controller.Current() == "preferences"
	}, time.Second, time.Millisecond)

	resp, err := http.Get(srv.URL + "/debug/modal")
	require.NoError(t, err)
	defer resp.Body.Close()

	var snap modal.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, "preferences", snap.Current)

	m.CloseDefault()
}

func TestMetricsEndpoint(t *testing.T) {
	_, _, srv := newDebugServer(t)
	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
