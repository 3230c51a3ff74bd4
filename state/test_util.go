package state

import (
	"context"
	"testing"

	"github.com/lexph/scribepad/hardware/adc"
	"github.com/lexph/scribepad/hardware/lcd"
	"github.com/lexph/scribepad/log2"
)

func NewTestContext(t testing.TB, confString string) (context.Context, *Global) {
	fs := NewMockFullReader(map[string]string{
		"test-inline": confString,
	})

	log := log2.NewTest(t, log2.LDebug)
	// log := log2.NewStderr(log2.LDebug) // useful with panics
	log.SetFlags(log2.LTestFlags)
	ctx, g := NewContext(log)
	g.MustInit(ctx, MustReadConfig(log, fs, "test-inline"))

	screen, _ := lcd.NewMockScreen()
	g.SetScreen(screen)
	g.SetConverter(&adc.MockConverter{})

	return ctx, g
}
