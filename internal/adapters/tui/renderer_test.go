package tui_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/box/internal/adapters/tui"
	"go.uber.org/goleak"
)

const clearLine = "\x1b[2K\r"

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRenderer_ShowWritesLabelWithoutNewline(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var buf syncBuffer
	clock := clockwork.NewFakeClock()
	r := tui.NewRenderer(&buf, tui.WithClock(clock))

	r.Show("⏳ Currently: build", clock.Now())
	assert.Equal(t, clearLine+"⏳ Currently: build", buf.String())

	r.Clear()
	assert.Equal(t, clearLine+"⏳ Currently: build"+clearLine, buf.String())
	assert.NotContains(t, buf.String(), "\n")
}

func TestRenderer_TickRewritesElapsed(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var buf syncBuffer
	clock := clockwork.NewFakeClock()
	r := tui.NewRenderer(&buf, tui.WithClock(clock))

	r.Show("⏳ Currently: build", clock.Now())

	clock.BlockUntil(1)
	clock.Advance(time.Second)
	require.Eventually(t, func() bool {
		return strings.Contains(buf.String(), clearLine+"⏳ Currently: build (1s)")
	}, time.Second, 5*time.Millisecond)

	clock.Advance(time.Second)
	require.Eventually(t, func() bool {
		return strings.Contains(buf.String(), clearLine+"⏳ Currently: build (2s)")
	}, time.Second, 5*time.Millisecond)

	r.Clear()
	assert.True(t, strings.HasSuffix(buf.String(), clearLine))
}

func TestRenderer_NoWritesAfterClear(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var buf syncBuffer
	clock := clockwork.NewFakeClock()
	r := tui.NewRenderer(&buf, tui.WithClock(clock))

	r.Show("⏳ Currently: build", clock.Now())
	clock.BlockUntil(1)
	r.Clear()
	stopped := buf.String()

	clock.Advance(5 * time.Second)
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, stopped, buf.String())
}

func TestRenderer_ShowReplacesRunningStatus(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var buf syncBuffer
	clock := clockwork.NewFakeClock()
	r := tui.NewRenderer(&buf, tui.WithClock(clock))

	r.Show("first", clock.Now())
	r.Show("second", clock.Now())
	r.Clear()

	assert.Equal(t, clearLine+"first"+clearLine+clearLine+"second"+clearLine, buf.String())
}

func TestRenderer_ClearWithoutShow(t *testing.T) {
	var buf syncBuffer
	r := tui.NewRenderer(&buf, tui.WithClock(clockwork.NewFakeClock()))

	r.Clear()
	assert.Empty(t, buf.String())
}

func TestRenderer_ElapsedFromStartTime(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var buf syncBuffer
	clock := clockwork.NewFakeClock()
	r := tui.NewRenderer(&buf, tui.WithClock(clock), tui.WithInterval(time.Second))

	// A resumed status keeps counting from the original start.
	r.Show("⏳ Currently: sync", clock.Now().Add(-90*time.Second))
	clock.BlockUntil(1)
	clock.Advance(time.Second)

	require.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "⏳ Currently: sync (1m31s)")
	}, time.Second, 5*time.Millisecond)

	r.Clear()
}
