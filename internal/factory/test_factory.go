package factory

import (
	"time"

	"github.com/noirbureau/swanhunt/internal/dependencies/mocks"
	"github.com/noirbureau/swanhunt/internal/services/auth"
	"github.com/noirbureau/swanhunt/internal/storage"
	"github.com/noirbureau/swanhunt/internal/storage/memory"
	"github.com/noirbureau/swanhunt/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Backends for direct inspection
	Remote storage.Store
	LocalT storage.Store

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing: in-memory backends, a
// configured (eligible) remote and a mocked clock
func NewTestApp() *TestApp {
	return newTestApp(memory.New(), true)
}

// NewLocalOnlyTestApp creates a test App with no usable remote
func NewLocalOnlyTestApp() *TestApp {
	return newTestApp(nil, false)
}

func newTestApp(remote storage.Store, remoteConfigured bool) *TestApp {
	localStore := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(remote, localStore, remoteConfigured, mockClock, auth.DefaultConfig(), time.Hour, testutil.NopLogger())

	return &TestApp{
		App:       app,
		Remote:    remote,
		LocalT:    localStore,
		MockClock: mockClock,
	}
}
