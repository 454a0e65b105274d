package input

import (
	"bufio"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipeStream returns a stream fed through an in-memory pipe.
func pipeStream(t *testing.T) (*Stream, *io.PipeWriter) {
	t.Helper()
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	return StartStream(bufio.NewReader(pr)), pw
}

// readEventually polls until cond holds on the returned set.
func readEventually(t *testing.T, s *Stream, now time.Time, cond func(Set) bool) Set {
	t.Helper()
	var got Set
	require.Eventually(t, func() bool {
		got = ReadInput(s, now)
		return cond(got)
	}, time.Second, time.Millisecond)
	return got
}

func TestSetHeld(t *testing.T) {
	s := NewSet(Up, Fire)
	assert.True(t, s.Held(Up))
	assert.True(t, s.Held(Fire))
	assert.False(t, s.Held(Down))

	var empty Set
	assert.False(t, empty.Held(Up))
}

func TestReadInputMapsKeys(t *testing.T) {
	s, w := pipeStream(t)
	now := time.Now()

	_, err := w.Write([]byte("wd \x1b[B"))
	require.NoError(t, err)

	got := readEventually(t, s, now, func(set Set) bool { return set.Held(Down) })
	assert.True(t, got.Held(Up))
	assert.True(t, got.Held(Right))
	assert.True(t, got.Held(Fire))
	assert.False(t, got.Held(Left))
	assert.False(t, got.Held(Quit))
}

func TestReadInputIgnoresUnknownBytes(t *testing.T) {
	s, w := pipeStream(t)
	now := time.Now()

	_, err := w.Write([]byte("zx9!a"))
	require.NoError(t, err)

	got := readEventually(t, s, now, func(set Set) bool { return set.Held(Left) })
	assert.Len(t, got, 1)
}

func TestReadInputReleasesAfterHoldDuration(t *testing.T) {
	s, w := pipeStream(t)
	now := time.Now()

	_, err := w.Write([]byte("a"))
	require.NoError(t, err)
	readEventually(t, s, now, func(set Set) bool { return set.Held(Left) })

	later := ReadInput(s, now.Add(keyHoldDuration))
	assert.False(t, later.Held(Left))
}

func TestReadInputQuitsOnEOF(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))
	readEventually(t, s, time.Now(), func(set Set) bool { return set.Held(Quit) })

	// Stays quit on later reads.
	assert.True(t, ReadInput(s, time.Now()).Held(Quit))
}

func TestReadInputJoinsSplitEscapeSequence(t *testing.T) {
	s, w := pipeStream(t)
	now := time.Now()

	_, err := w.Write([]byte("\x1b["))
	require.NoError(t, err)
	readEventually(t, s, now, func(Set) bool { return len(s.pending) == 2 })

	_, err = w.Write([]byte("A"))
	require.NoError(t, err)

	got := readEventually(t, s, now, func(set Set) bool { return set.Held(Up) })
	assert.False(t, got.Held(Left), "arrow code must not be read as a letter key")
}
