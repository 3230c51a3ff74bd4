package lcd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenPut(t *testing.T) {
	t.Parallel()

	screen, dev := NewMockScreen()
	screen.PutYX(0, 0, 'a')
	screen.PutYX(0, 15, '!')
	screen.PutYX(1, 3, '>')
	assert.Equal(t, "a              !\n   >            ", dev.String())
}

func TestScreenOutOfRange(t *testing.T) {
	t.Parallel()

	screen, dev := NewMockScreen()
	before := dev.String()
	screen.PutYX(2, 0, 'x')
	screen.PutYX(0, 16, 'x')
	screen.ClearRow(2)
	assert.Equal(t, before, dev.String())
}

func TestScreenClearRow(t *testing.T) {
	t.Parallel()

	screen, dev := NewMockScreen()
	for col := uint8(0); col < Width; col++ {
		screen.PutYX(1, col, 'z')
	}
	screen.PutYX(0, 2, 'k')
	screen.ClearRow(1)
	assert.Equal(t, "  k             \n                ", dev.String())
}

func TestScreenCodepage(t *testing.T) {
	t.Parallel()

	dev := NewMockDevicer()
	screen, err := NewScreen(dev, ScreenConfig{Codepage: "windows-1251"})
	require.NoError(t, err)
	screen.PutYX(0, 0, 'a')
	assert.Equal(t, byte('a'), dev.Cell(0, 0))

	_, err = NewScreen(dev, ScreenConfig{Codepage: "no-such-codepage"})
	assert.Error(t, err)
}

func TestMockCursorAdvance(t *testing.T) {
	t.Parallel()

	dev := NewMockDevicer()
	require.True(t, dev.CursorYX(2, 1))
	dev.Write([]byte("0123456789abcdefXX")) // overflow is dropped
	assert.Equal(t, "0123456789abcdef", dev.Line(1))
	assert.Equal(t, "                ", dev.Line(0))
	assert.False(t, dev.CursorYX(3, 1))
	assert.False(t, dev.CursorYX(1, 17))
}
