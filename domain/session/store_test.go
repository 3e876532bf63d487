package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tarush10000/Sooru-Demo/domain/navigation"
	"github.com/tarush10000/Sooru-Demo/domain/scheduler"
	"github.com/tarush10000/Sooru-Demo/internal/config"
	"github.com/tarush10000/Sooru-Demo/pkg/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestStore(ttl time.Duration) (*Store, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	return NewStore(ttl, logger.Discard(), WithClock(clock.Now)), clock
}

func TestCreateStartsOnLanding(t *testing.T) {
	store, _ := newTestStore(time.Minute)
	sess := store.Create()

	require.NotEmpty(t, sess.ID)
	sess.View(func(sh *navigation.Shell) {
		assert.Equal(t, navigation.ScreenLanding, sh.Current())
		assert.False(t, sh.HasWizard())
	})
	assert.Equal(t, 1, store.Len())
}

func TestGetUnknownOrMalformed(t *testing.T) {
	store, _ := newTestStore(time.Minute)
	_, ok := store.Get("not-a-uuid")
	assert.False(t, ok)
	_, ok = store.Get("6f1c1d2e-8a37-4a43-9b37-1f2b3c4d5e6f")
	assert.False(t, ok)
}

func TestGetRefreshesIdleTimer(t *testing.T) {
	store, clock := newTestStore(time.Minute)
	sess := store.Create()

	clock.Advance(50 * time.Second)
	_, ok := store.Get(sess.ID)
	require.True(t, ok)

	clock.Advance(50 * time.Second)
	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)
}

func TestExpiredSessionIsMissing(t *testing.T) {
	store, clock := newTestStore(time.Minute)
	sess := store.Create()

	clock.Advance(2 * time.Minute)
	_, ok := store.Get(sess.ID)
	assert.False(t, ok)

	fresh, created := store.GetOrCreate(sess.ID)
	assert.True(t, created)
	assert.NotEqual(t, sess.ID, fresh.ID)
}

func TestSweepRemovesOnlyExpired(t *testing.T) {
	store, clock := newTestStore(time.Minute)
	old := store.Create()
	clock.Advance(45 * time.Second)
	young := store.Create()
	clock.Advance(30 * time.Second)

	removed := store.Sweep(clock.Now())
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())

	_, ok := store.Get(old.ID)
	assert.False(t, ok)
	_, ok = store.Get(young.ID)
	assert.True(t, ok)
}

func TestStateSurvivesBetweenRequests(t *testing.T) {
	store, _ := newTestStore(time.Minute)
	sess := store.Create()

	sess.Update(func(sh *navigation.Shell) {
		sh.Advance()
		sh.Advance()
		sh.Advance()
		sh.Wizard().Next()
	})

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	got.View(func(sh *navigation.Shell) {
		assert.Equal(t, navigation.ScreenDemo, sh.Current())
		assert.EqualValues(t, 2, sh.Wizard().Step())
	})
}

func TestConcurrentAccess(t *testing.T) {
	store, _ := newTestStore(time.Minute)
	sess := store.Create()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, _ := store.GetOrCreate(sess.ID)
			s.Update(func(sh *navigation.Shell) { sh.Advance() })
			store.Create()
		}()
	}
	wg.Wait()

	assert.Equal(t, 21, store.Len())
	sess.View(func(sh *navigation.Shell) {
		assert.Equal(t, navigation.ScreenDemo, sh.Current())
	})
}

func TestDelete(t *testing.T) {
	store, _ := newTestStore(time.Minute)
	sess := store.Create()
	store.Delete(sess.ID)
	assert.Zero(t, store.Len())
}

func TestRegisterSweep(t *testing.T) {
	sched := scheduler.NewScheduler(logger.Discard())
	store, _ := newTestStore(time.Minute)
	cfg := &config.Config{Session: config.SessionConfig{SweepInterval: time.Minute}}

	require.NoError(t, RegisterSweep(sched, store, cfg))
	assert.Equal(t, []string{SweepTaskName}, sched.ListTasks())
}

func TestGetAndSweepAgree(t *testing.T) {
	for i := 0; i < 200; i++ {
		store, clock := newTestStore(time.Minute)
		sess := store.Create()
		clock.Advance(59 * time.Second)
		sweepAt := clock.Now().Add(2 * time.Second)

		var (
			wg  sync.WaitGroup
			got bool
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, got = store.Get(sess.ID)
		}()
		go func() {
			defer wg.Done()
			store.Sweep(sweepAt)
		}()
		wg.Wait()

		// a session handed out by Get must still be held by the store
		require.Equal(t, got, store.Len() == 1, "iteration %d", i)
	}
}
