package state

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/juju/errors"
	"github.com/temoto/alive/v2"

	"github.com/lexph/scribepad/composer"
	"github.com/lexph/scribepad/hardware/adc"
	"github.com/lexph/scribepad/hardware/keypad"
	"github.com/lexph/scribepad/hardware/lcd"
	"github.com/lexph/scribepad/helpers"
	"github.com/lexph/scribepad/log2"
)

const ContextKey = "run/state-global"

// Tier period defaults, the classic calibration.
const (
	DefaultSamplePeriod  = 10 * time.Millisecond
	DefaultUpdatePeriod  = 500 * time.Millisecond
	DefaultRefreshPeriod = 100 * time.Millisecond
)

type Global struct {
	Alive  *alive.Alive
	Config *Config
	Log    *log2.Log

	Hardware struct {
		screen atomic.Value // *lcd.Screen
		conv   atomic.Value // adc.Converter
	}

	Keypad struct {
		Decoder *keypad.Decoder
		Latch   *keypad.Latch
	}

	Palette composer.Palette

	Tick struct {
		Sample  time.Duration
		Update  time.Duration
		Refresh time.Duration
	}

	initScreenOnce sync.Once
	initConvOnce   sync.Once
}

func NewContext(log *log2.Log) (context.Context, *Global) {
	if log == nil {
		panic("code error NewContext() log=nil")
	}

	g := &Global{
		Alive: alive.NewAlive(),
		Log:   log,
	}
	ctx := context.Background()
	ctx = context.WithValue(ctx, ContextKey, g)
	return ctx, g
}

func GetGlobal(ctx context.Context) *Global {
	v := ctx.Value(ContextKey)
	if v == nil {
		panic(fmt.Sprintf("context['%s'] is nil", ContextKey))
	}
	if g, ok := v.(*Global); ok {
		return g
	}
	panic(fmt.Sprintf("context['%s'] expected type *Global actual=%#v", ContextKey, v))
}

// If `Init` fails, consider `Global` is in broken state.
func (g *Global) Init(ctx context.Context, cfg *Config) error {
	g.Config = cfg
	errs := make([]error, 0)

	if cfg.Composer.Palette == "" {
		cfg.Composer.Palette = composer.DefaultPalette
	}
	var err error
	if g.Palette, err = composer.NewPalette(cfg.Composer.Palette); err != nil {
		errs = append(errs, errors.Annotate(err, "config composer.palette"))
	}

	if err = cfg.Keypad.Thresholds.Validate(); err != nil {
		errs = append(errs, errors.Annotate(err, "config keypad.thresholds"))
	}
	g.Keypad.Decoder = keypad.NewDecoder(cfg.Keypad.Thresholds)
	g.Keypad.Latch = new(keypad.Latch)

	g.Tick.Sample = helpers.IntMillisecondDefault(cfg.Tick.SampleMs, DefaultSamplePeriod)
	g.Tick.Update = helpers.IntMillisecondDefault(cfg.Tick.UpdateMs, DefaultUpdatePeriod)
	g.Tick.Refresh = helpers.IntMillisecondDefault(cfg.Tick.RefreshMs, DefaultRefreshPeriod)
	if !(g.Tick.Sample < g.Tick.Update) {
		errs = append(errs, errors.NotValidf("config tick: sample_ms=%v must be faster than update_ms=%v",
			g.Tick.Sample, g.Tick.Update))
	}
	if !(g.Tick.Sample < g.Tick.Refresh) {
		errs = append(errs, errors.NotValidf("config tick: sample_ms=%v must be faster than refresh_ms=%v",
			g.Tick.Sample, g.Tick.Refresh))
	}

	return helpers.FoldErrors(errs)
}

func (g *Global) MustInit(ctx context.Context, cfg *Config) {
	if err := g.Init(ctx, cfg); err != nil {
		g.Log.Fatal(errors.ErrorStack(err))
	}
}

func (g *Global) Error(err error, args ...interface{}) {
	if err != nil {
		if len(args) != 0 {
			msg := args[0].(string)
			args = args[1:]
			err = errors.Annotatef(err, msg, args...)
		}
		g.Log.Errorf(errors.ErrorStack(err))
	}
}

// Test and dev tools inject ready-made devices before first use.
func (g *Global) SetScreen(s *lcd.Screen)      { g.Hardware.screen.Store(s) }
func (g *Global) SetConverter(c adc.Converter) { g.Hardware.conv.Store(c) }

func (g *Global) Screen() (*lcd.Screen, error) {
	var err error
	g.initScreenOnce.Do(func() {
		defer recoverFatal(g.Log) // fix sync.Once silent panic
		if g.Hardware.screen.Load() != nil {
			return
		}

		hw := &g.Config.Hardware.HD44780
		var dev lcd.Devicer
		if hw.Enable {
			if dev, err = lcd.NewHD44780(hw.PinChip, hw.Pinmap); err != nil {
				err = errors.Annotatef(err, "config hd44780=%+v", hw)
				return
			}
		} else {
			g.Log.Infof("hd44780 disabled, using in-memory display")
			dev = lcd.NewMockDevicer()
		}
		var screen *lcd.Screen
		if screen, err = lcd.NewScreen(dev, lcd.ScreenConfig{Codepage: hw.Codepage}); err != nil {
			return
		}
		g.Hardware.screen.Store(screen)
	})
	if err != nil {
		return nil, err
	}
	s, _ := g.Hardware.screen.Load().(*lcd.Screen)
	if s == nil {
		return nil, errors.Errorf("screen init failed earlier")
	}
	return s, nil
}

func (g *Global) Converter() (adc.Converter, error) {
	var err error
	g.initConvOnce.Do(func() {
		defer recoverFatal(g.Log) // fix sync.Once silent panic
		if g.Hardware.conv.Load() != nil {
			return
		}

		cfg := &g.Config.Hardware
		switch {
		case cfg.Input.DevInputEvent.Enable:
			var conv *keypad.EvdevConverter
			conv, err = keypad.NewEvdevConverter(cfg.Input.DevInputEvent.Device, g.Keypad.Decoder, g.Log)
			if err != nil {
				return
			}
			g.Hardware.conv.Store(adc.Converter(conv))
		case cfg.ADC.Bus != "":
			var conv *adc.ADS1015
			if conv, err = adc.NewADS1015(cfg.ADC); err != nil {
				return
			}
			g.Hardware.conv.Store(adc.Converter(conv))
		default:
			err = errors.NotValidf("config: no button input source, set hardware.adc or hardware.input.dev_input_event")
		}
	})
	if err != nil {
		return nil, err
	}
	c, _ := g.Hardware.conv.Load().(adc.Converter)
	if c == nil {
		return nil, errors.Errorf("converter init failed earlier")
	}
	return c, nil
}

func recoverFatal(f interface{ Fatal(...interface{}) }) {
	if x := recover(); x != nil {
		f.Fatal(x)
	}
}
