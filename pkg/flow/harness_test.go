package flow_test

import (
	"context"
	"sync"

	"github.com/lattice-dev/lattice/internal/adapters/memory"
	"github.com/lattice-dev/lattice/pkg/domain"
	"github.com/lattice-dev/lattice/pkg/flow"
	"github.com/lattice-dev/lattice/pkg/modal"
	"github.com/lattice-dev/lattice/pkg/state"
)

// Hand-written fakes for the effect ports. Each records its calls so tests
// can assert which side effects ran.

type fakeAuth struct {
	mu      sync.Mutex
	user    *domain.User
	err     error
	signIns int
	fetches int
}

func (f *fakeAuth) CurrentUser(ctx context.Context) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.err != nil {
		return nil, f.err
	}
	u := *f.user
	return &u, nil
}

func (f *fakeAuth) SignIn(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signIns++
	return nil
}

type fakeAnalytics struct {
	mu          sync.Mutex
	identified  []string
	anonymousID string
	events      []string
}

func (f *fakeAnalytics) Identify(id string, traits map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.identified = append(f.identified, id)
}

func (f *fakeAnalytics) SetAnonymousID(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.anonymousID = id
}

func (f *fakeAnalytics) Track(event string, props map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

func (f *fakeAnalytics) AnonymousID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.anonymousID
}

type fakeNotifier struct {
	mu    sync.Mutex
	notes []domain.Notification
}

func (f *fakeNotifier) Notify(n domain.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes = append(f.notes, n)
}

type fakeReporter struct {
	mu   sync.Mutex
	msgs []string
	errs []error
}

func (f *fakeReporter) Report(msg string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, msg)
	f.errs = append(f.errs, err)
}

type fakeConnection struct {
	mu        sync.Mutex
	listeners []func(bool)
}

func (f *fakeConnection) AddListener(fn func(connected bool)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, fn)
}

func (f *fakeConnection) fire(connected bool) {
	f.mu.Lock()
	listeners := append(make([]func(bool), 0, len(f.listeners)), f.listeners...)
	f.mu.Unlock()
	for _, fn := range listeners {
		fn(connected)
	}
}

type fakeLive struct {
	mu         sync.Mutex
	connectErr error
	connects   int
	listeners  int
}

func (f *fakeLive) Connect(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connects++
	return f.connectErr
}

func (f *fakeLive) Listen(fn func(event string, data []byte)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners++
}

func (f *fakeLive) listenerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listeners
}

// blockingSettings parks Load until released, so tests can hold a dispatch
// inside the bootstrap window.
type blockingSettings struct {
	entered chan struct{}
	release chan struct{}
}

func newBlockingSettings() *blockingSettings {
	return &blockingSettings{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (b *blockingSettings) Load(ctx context.Context) (domain.EditorSettings, error) {
	close(b.entered)
	<-b.release
	return domain.EditorSettings{}, nil
}

type fakeContributors struct {
	names []string
	err   error
}

func (f *fakeContributors) Fetch(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.names, nil
}

type fakeSettings struct {
	settings domain.EditorSettings
	err      error
}

func (f *fakeSettings) Load(ctx context.Context) (domain.EditorSettings, error) {
	return f.settings, f.err
}

type fakeSurvey struct {
	mu      sync.Mutex
	prompts int
	err     error
}

func (f *fakeSurvey) Prompt(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts++
	return f.err
}

type fakeTemplates struct {
	prefetches int
	err        error
}

func (f *fakeTemplates) Prefetch(ctx context.Context) error {
	f.prefetches++
	return f.err
}

type fakeNotificationState struct {
	inits int
	err   error
}

func (f *fakeNotificationState) Initialize(ctx context.Context, user *domain.User) error {
	f.inits++
	return f.err
}

type fakeForker struct {
	mu    sync.Mutex
	fork  *domain.Sandbox
	err   error
	calls int
}

func (f *fakeForker) Fork(ctx context.Context, sandboxID string) (*domain.Sandbox, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	fork := *f.fork
	return &fork, nil
}

func (f *fakeForker) forkCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// newApp builds an App with a fresh container, registered modals and the
// given effects.
func newApp(effects flow.Effects) *flow.App {
	return &flow.App{
		State:   state.New(),
		Effects: effects,
		Modals:  flow.NewModals(modal.NewController()),
	}
}

// newStore is a convenience for a seeded in-memory key-value store.
func newStore(seed map[string]string) *memory.Store {
	return memory.NewStore(seed)
}
