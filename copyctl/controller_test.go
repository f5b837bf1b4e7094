package copyctl

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/tokenpage/internal/clock"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

const testCA = "So1idCAxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxpump"

type recorder struct {
	mu     sync.Mutex
	copied []string
	err    error
}

func (r *recorder) Copy(_ context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.copied = append(r.copied, text)
	return nil
}

func (r *recorder) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.copied...)
}

var errDenied = errors.New("permission denied")

func failing() Strategy {
	return StrategyFunc(func(context.Context, string) error { return errDenied })
}

// fakeDocument stands in for a page that accepts temporary off-screen
// elements for the selection-based fallback.
type fakeDocument struct {
	mu       sync.Mutex
	attached int
	peak     int
	failCopy bool
	copied   []string
}

func (d *fakeDocument) strategy() Strategy {
	return StrategyFunc(func(_ context.Context, text string) error {
		d.mu.Lock()
		d.attached++
		if d.attached > d.peak {
			d.peak = d.attached
		}
		d.mu.Unlock()
		defer func() {
			d.mu.Lock()
			d.attached--
			d.mu.Unlock()
		}()
		if d.failCopy {
			return errors.New("execCommand copy rejected")
		}
		d.mu.Lock()
		d.copied = append(d.copied, text)
		d.mu.Unlock()
		return nil
	})
}

func TestNewStartsUnacknowledged(t *testing.T) {
	ctl := New(testCA, Chain{&recorder{}}, WithClock(clock.Fake(epoch)))
	assert.False(t, ctl.Acknowledged())
	assert.Equal(t, testCA, ctl.Source())
}

func TestRequestCopyAcknowledgesThenReverts(t *testing.T) {
	fc := clock.Fake(epoch)
	rec := &recorder{}
	ctl := New(testCA, Chain{rec}, WithClock(fc))

	require.True(t, ctl.RequestCopy(context.Background()))
	assert.True(t, ctl.Acknowledged(), "acknowledged right after write resolves")
	assert.Equal(t, []string{testCA}, rec.calls(), "full value is the payload")

	fc.Advance(AckWindow - time.Millisecond)
	assert.True(t, ctl.Acknowledged(), "still acknowledged inside the window")

	fc.Advance(time.Millisecond)
	assert.False(t, ctl.Acknowledged(), "reverted after the window")
}

func TestRapidRequestsRestartWindow(t *testing.T) {
	fc := clock.Fake(epoch)
	var transitions []bool
	ctl := New(testCA, Chain{&recorder{}}, WithClock(fc), WithOnChange(func(v bool) {
		transitions = append(transitions, v)
	}))

	ctl.RequestCopy(context.Background())
	fc.Advance(800 * time.Millisecond)
	ctl.RequestCopy(context.Background())

	// The first window would have ended here.
	fc.Advance(500 * time.Millisecond)
	assert.True(t, ctl.Acknowledged(), "superseded timer must not revert early")

	fc.Advance(700 * time.Millisecond)
	assert.False(t, ctl.Acknowledged())
	assert.Equal(t, []bool{true, false}, transitions, "exactly one revert")
	assert.Zero(t, fc.PendingCount())
}

func TestFailedPrimaryFallsBack(t *testing.T) {
	fc := clock.Fake(epoch)
	doc := &fakeDocument{}
	ctl := New(testCA, Chain{failing(), doc.strategy()}, WithClock(fc))

	require.True(t, ctl.RequestCopy(context.Background()))
	assert.True(t, ctl.Acknowledged())
	assert.Equal(t, []string{testCA}, doc.copied)
	assert.Zero(t, doc.attached, "no temporary element left attached")
}

func TestAllStrategiesFailIsSilent(t *testing.T) {
	fc := clock.Fake(epoch)
	doc := &fakeDocument{failCopy: true}
	ctl := New(testCA, Chain{failing(), doc.strategy()}, WithClock(fc))

	assert.False(t, ctl.RequestCopy(context.Background()))
	assert.False(t, ctl.Acknowledged())
	assert.Zero(t, doc.attached)
	assert.Zero(t, fc.PendingCount(), "no revert scheduled on failure")
}

func TestFailureDoesNotClearExistingAcknowledgment(t *testing.T) {
	fc := clock.Fake(epoch)
	var fail atomic.Bool
	s := StrategyFunc(func(context.Context, string) error {
		if fail.Load() {
			return errDenied
		}
		return nil
	})
	ctl := New(testCA, Chain{s}, WithClock(fc))

	ctl.RequestCopy(context.Background())
	fail.Store(true)
	ctl.RequestCopy(context.Background())
	assert.True(t, ctl.Acknowledged(), "state unchanged on soft failure")

	fc.Advance(AckWindow)
	assert.False(t, ctl.Acknowledged())
}

func TestCloseCancelsPendingRevert(t *testing.T) {
	fc := clock.Fake(epoch)
	changes := 0
	ctl := New(testCA, Chain{&recorder{}}, WithClock(fc), WithOnChange(func(bool) { changes++ }))

	ctl.RequestCopy(context.Background())
	require.Equal(t, 1, fc.PendingCount())

	assert.NotPanics(t, ctl.Close)
	assert.NotPanics(t, ctl.Close, "Close is idempotent")
	assert.Zero(t, fc.PendingCount())

	fc.Advance(time.Minute)
	assert.Equal(t, 1, changes, "no transition after teardown")
	assert.True(t, ctl.Acknowledged(), "state frozen at teardown")

	assert.False(t, ctl.RequestCopy(context.Background()))
}

func TestInFlightCopyAfterCloseDoesNotMutate(t *testing.T) {
	fc := clock.Fake(epoch)
	release := make(chan struct{})
	started := make(chan struct{})
	slow := StrategyFunc(func(context.Context, string) error {
		close(started)
		<-release
		return nil
	})
	ctl := New(testCA, Chain{slow}, WithClock(fc))

	done := make(chan bool)
	go func() { done <- ctl.RequestCopy(context.Background()) }()
	<-started
	ctl.Close()
	close(release)

	assert.False(t, <-done)
	assert.False(t, ctl.Acknowledged())
	assert.Zero(t, fc.PendingCount())
}

func TestConcurrentRequestsKeepSingleTimer(t *testing.T) {
	fc := clock.Fake(epoch)
	doc := &fakeDocument{}
	ctl := New(testCA, Chain{failing(), doc.strategy()}, WithClock(fc))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctl.RequestCopy(context.Background())
		}()
	}
	wg.Wait()

	assert.True(t, ctl.Acknowledged())
	assert.Equal(t, 1, fc.PendingCount(), "superseded timers are cancelled")
	assert.Zero(t, doc.attached)

	fc.Advance(AckWindow)
	assert.False(t, ctl.Acknowledged(), "never stuck acknowledged")
}

func TestControllersAreIndependent(t *testing.T) {
	fc := clock.Fake(epoch)
	a := New("AAAA", Chain{&recorder{}}, WithClock(fc))
	b := New("BBBB", Chain{&recorder{}}, WithClock(fc))

	a.RequestCopy(context.Background())
	assert.True(t, a.Acknowledged())
	assert.False(t, b.Acknowledged())
}

func TestChainOrder(t *testing.T) {
	first := &recorder{}
	second := &recorder{}

	idx, err := Chain{first, second}.Copy(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Empty(t, second.calls(), "later strategies untouched after success")

	idx, err = Chain{failing(), second}.Copy(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	idx, err = Chain{failing(), failing()}.Copy(context.Background(), "x")
	assert.Equal(t, -1, idx)
	assert.ErrorIs(t, err, errDenied)

	_, err = Chain{}.Copy(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNoStrategy)
}

func TestChainStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := &recorder{}

	idx, err := Chain{rec}.Copy(ctx, "x")
	assert.Equal(t, -1, idx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.calls())
}

func TestSuspendKeepsControllerUsable(t *testing.T) {
	fc := clock.Fake(epoch)
	var transitions []bool
	rec := &recorder{}
	ctl := New(testCA, Chain{rec}, WithClock(fc), WithOnChange(func(v bool) {
		transitions = append(transitions, v)
	}))

	require.True(t, ctl.RequestCopy(context.Background()))
	ctl.Suspend()
	assert.False(t, ctl.Acknowledged(), "hidden page drops the acknowledgment")
	assert.Zero(t, fc.PendingCount())

	require.True(t, ctl.RequestCopy(context.Background()), "restored page copies again")
	assert.True(t, ctl.Acknowledged())
	assert.Len(t, rec.calls(), 2)

	fc.Advance(AckWindow)
	assert.False(t, ctl.Acknowledged())
	assert.Equal(t, []bool{true, false, true, false}, transitions)
}

func TestSuspendAfterCloseIsNoop(t *testing.T) {
	fc := clock.Fake(epoch)
	ctl := New(testCA, Chain{&recorder{}}, WithClock(fc))

	ctl.RequestCopy(context.Background())
	ctl.Close()
	ctl.Suspend()
	assert.True(t, ctl.Acknowledged(), "state frozen at teardown")
	assert.False(t, ctl.RequestCopy(context.Background()))
}
