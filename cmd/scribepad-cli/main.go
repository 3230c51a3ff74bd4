// scribepad-cli runs the whole control core against in-memory
// hardware, single-stepped from a prompt: press buttons, advance the
// medium and slow tiers by hand, watch the composed line. Every
// command is deterministic, no timers run, so piped scripts need no
// sleeps.
package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	prompt "github.com/c-bata/go-prompt"

	"github.com/lexph/scribepad/composer"
	"github.com/lexph/scribepad/hardware/adc"
	"github.com/lexph/scribepad/hardware/keypad"
	"github.com/lexph/scribepad/hardware/lcd"
	"github.com/lexph/scribepad/hardware/timer"
	"github.com/lexph/scribepad/helpers/cli"
	"github.com/lexph/scribepad/log2"
	"github.com/lexph/scribepad/state"
)

const usage = "commands: press right|up|down|left, release, raw <sample>, tick, refresh, show, status"

var buttons = map[string]keypad.Button{
	"right": keypad.Right,
	"up":    keypad.Up,
	"down":  keypad.Down,
	"left":  keypad.Left,
}

type env struct {
	log       *log2.Log
	conv      *adc.MockConverter
	dec       *keypad.Decoder
	latch     *keypad.Latch
	state     *composer.State
	dev       *lcd.MockDevicer
	sampler   *keypad.Sampler
	updater   *composer.Updater
	refresher *composer.Refresher
}

func main() {
	flagDebug := flag.Bool("debug", false, "")
	flag.Parse()

	level := log2.LInfo
	if *flagDebug {
		level = log2.LDebug
	}
	log := log2.NewStderr(level)
	log.SetFlags(log2.LInteractiveFlags)

	e := &env{
		log:   log,
		conv:  &adc.MockConverter{},
		dec:   keypad.NewDecoder(keypad.Thresholds{}),
		latch: new(keypad.Latch),
		state: composer.NewState(composer.MustPalette(composer.DefaultPalette)),
	}
	var screen *lcd.Screen
	screen, e.dev = lcd.NewMockScreen()
	e.conv.Set(e.dec.Mid(keypad.None))

	e.sampler = keypad.NewSampler(e.conv, e.dec, e.latch, state.DefaultSamplePeriod, log)
	e.updater = composer.NewUpdater(e.latch, e.state, state.DefaultUpdatePeriod, log)
	indicator := composer.NewIndicator(e.latch, screen)
	e.refresher = composer.NewRefresher(new(timer.Flag), indicator, e.state, screen, log)

	fmt.Println(usage)
	cli.MainLoop("scribepad-cli", e.exec, complete)
}

// setLevel fabricates a ladder reading and samples it at once, so the
// latch is current before the next command runs.
func (e *env) setLevel(raw uint16) {
	e.conv.Set(raw)
	e.sampler.Sample()
}

func (e *env) exec(line string) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}
	switch words[0] {
	case "press":
		if len(words) != 2 {
			fmt.Println("usage: press right|up|down|left")
			return
		}
		b, ok := buttons[words[1]]
		if !ok {
			fmt.Printf("unknown button %q\n", words[1])
			return
		}
		e.setLevel(e.dec.Mid(b))
	case "release":
		e.setLevel(e.dec.Mid(keypad.None))
	case "raw":
		if len(words) != 2 {
			fmt.Println("usage: raw <sample>")
			return
		}
		x, err := strconv.ParseUint(words[1], 10, 16)
		if err != nil {
			fmt.Println(err)
			return
		}
		e.setLevel(uint16(x))
	case "tick":
		e.updater.Tick()
	case "refresh":
		e.refresher.Service()
	case "show":
		fmt.Printf("+----------------+\n|%s|\n|%s|\n+----------------+\n", e.dev.Line(0), e.dev.Line(1))
	case "status":
		snap := e.latch.Snapshot()
		cs := e.state.Snapshot()
		fmt.Printf("button=%s pressed=%t cursor=%d sampled %v ago, updated %v ago\n",
			snap.Button, snap.Pressed, cs.Cursor,
			e.sampler.SampledAge().Round(time.Millisecond),
			e.updater.UpdatedAge().Round(time.Millisecond))
	case "help":
		fmt.Println(usage)
	default:
		fmt.Printf("unknown command %q\n", words[0])
	}
}

func complete(d prompt.Document) []prompt.Suggest {
	suggests := []prompt.Suggest{
		{Text: "press right"},
		{Text: "press up"},
		{Text: "press down"},
		{Text: "press left"},
		{Text: "release"},
		{Text: "raw"},
		{Text: "tick"},
		{Text: "refresh"},
		{Text: "show"},
		{Text: "status"},
	}
	return prompt.FilterHasPrefix(suggests, d.TextBeforeCursor(), true)
}
