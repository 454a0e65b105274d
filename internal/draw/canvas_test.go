package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetFloat(0, 0)
	c.SetFloat(1, 1)
	c.SetFloat(2, 0)
	c.SetFloat(2, 1)

	var out bytes.Buffer
	require.NoError(t, c.Render(&out))

	s := out.String()
	assert.Contains(t, s, "\033[1;1H▀")
	assert.Contains(t, s, "\033[1;2H▄")
	assert.Contains(t, s, "\033[1;3H█")
	assert.Contains(t, s, "\033[2;4H ")
	assert.Equal(t, 8, strings.Count(s, "\033["), "first frame draws every cell")
}

func TestCanvasRendersOnlyChanges(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetFloat(0, 0)
	c.SetFloat(2, 0)

	var out bytes.Buffer
	require.NoError(t, c.Render(&out))

	out.Reset()
	require.NoError(t, c.Render(&out))
	assert.Empty(t, out.String())

	c.Clear()
	c.SetFloat(0, 0)
	out.Reset()
	require.NoError(t, c.Render(&out))
	assert.Equal(t, "\033[1;3H ", out.String())
}

func TestCanvasResize(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	var out bytes.Buffer
	require.NoError(t, c.Render(&out))

	c.Resize(4, 2)
	assert.False(t, c.force, "same size keeps the diff")

	c.Resize(8, 3)
	assert.True(t, c.force)
	assert.Equal(t, 8, c.TerminalWidth())
	assert.Equal(t, 3, c.TerminalHeight())

	c.Resize(0, -1)
	assert.Equal(t, 1, c.TerminalWidth())
	assert.Equal(t, 1, c.TerminalHeight())
}

func TestCanvasClipsOutsidePixels(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetFloat(-1, 0)
	c.SetFloat(10, 10)
	c.DrawLine(Point{X: -5, Y: 1}, Point{X: 10, Y: 1})

	for x := range 4 {
		assert.True(t, c.pixels[1*4+x], "pixel %d", x)
	}
	assert.False(t, c.pixels[0])
}

func TestFilledPolygon(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.DrawPolygon([]Point{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 8}, {X: 2, Y: 8}}, true)

	assert.True(t, c.pixels[5*10+5], "interior filled")
	assert.False(t, c.pixels[0])

	c.Clear()
	c.DrawPolygon([]Point{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 8}, {X: 2, Y: 8}}, false)
	assert.False(t, c.pixels[5*10+5], "outline only")
	assert.True(t, c.pixels[2*10+5])
}

func TestChunkWriterFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out)

	data := strings.Repeat("x", 3*maxChunkSize+17)
	_, err := cw.WriteString(data)
	require.NoError(t, err)
	assert.Zero(t, out.Len(), "nothing written before Flush")

	require.NoError(t, cw.Flush())
	assert.Equal(t, data, out.String())

	require.NoError(t, cw.Flush())
	assert.Equal(t, len(data), out.Len(), "buffer reset after Flush")
}
