package lines_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/box/internal/engine/lines"
)

type collector struct {
	mu    sync.Mutex
	lines []string
}

func (c *collector) add(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, line)
}

func TestReassembler_CompleteLines(t *testing.T) {
	var c collector
	r := lines.New(c.add)

	_, err := r.Write([]byte("first\nsecond\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"first\n", "second\n"}, c.lines)
}

func TestReassembler_SplitAcrossChunks(t *testing.T) {
	var c collector
	r := lines.New(c.add)

	for _, chunk := range []string{"pa", "rt1", "part2\nthi", "rd", "\n"} {
		_, err := r.Write([]byte(chunk))
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"part1part2\n", "third\n"}, c.lines)
}

func TestReassembler_PartialLineNotEmittedUntilClose(t *testing.T) {
	var c collector
	r := lines.New(c.add)

	_, _ = r.Write([]byte("done\npartial"))
	assert.Equal(t, []string{"done\n"}, c.lines)

	require.NoError(t, r.Close())
	assert.Equal(t, []string{"done\n", "partial"}, c.lines)
}

func TestReassembler_CloseWithoutRemainder(t *testing.T) {
	var c collector
	r := lines.New(c.add)

	_, _ = r.Write([]byte("only\n"))
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	assert.Equal(t, []string{"only\n"}, c.lines)
}

func TestReassembler_WriteAfterClose(t *testing.T) {
	var c collector
	r := lines.New(c.add)

	require.NoError(t, r.Close())
	n, err := r.Write([]byte("late\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Empty(t, c.lines)
}

func TestReassembler_EmptyLinesPreserved(t *testing.T) {
	var c collector
	r := lines.New(c.add)

	_, _ = r.Write([]byte("\n\nx\n"))
	assert.Equal(t, []string{"\n", "\n", "x\n"}, c.lines)
}

// Every way of cutting the input into two chunks yields the same lines.
func TestReassembler_ArbitraryBoundaries(t *testing.T) {
	input := "TASK::START::a\nline one\n\nTASK::FINISH\ntail"
	want := []string{"TASK::START::a\n", "line one\n", "\n", "TASK::FINISH\n", "tail"}

	for cut := 0; cut <= len(input); cut++ {
		var c collector
		r := lines.New(c.add)
		_, _ = r.Write([]byte(input[:cut]))
		_, _ = r.Write([]byte(input[cut:]))
		_ = r.Close()

		require.Equal(t, want, c.lines, "cut at %d", cut)
	}
}

func TestReassembler_ConcurrentSources(t *testing.T) {
	var c collector
	r := lines.New(c.add)

	var wg sync.WaitGroup
	for _, src := range []string{"out", "err"} {
		wg.Add(1)
		go func(src string) {
			defer wg.Done()
			for range 100 {
				_, _ = r.Write([]byte(src + "\n"))
			}
		}(src)
	}
	wg.Wait()
	require.NoError(t, r.Close())

	require.Len(t, c.lines, 200)
	for _, line := range c.lines {
		assert.True(t, line == "out\n" || line == "err\n", "unexpected line %q", line)
	}
	assert.Equal(t, 100, strings.Count(strings.Join(c.lines, ""), "out\n"))
}
