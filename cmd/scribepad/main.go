// scribepad runs the input widget firmware core: sample the button
// ladder, update the composed line, refresh the character display.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/coreos/go-systemd/daemon"
	"github.com/juju/errors"

	"github.com/lexph/scribepad/composer"
	"github.com/lexph/scribepad/hardware/keypad"
	"github.com/lexph/scribepad/hardware/timer"
	"github.com/lexph/scribepad/log2"
	"github.com/lexph/scribepad/state"
)

func main() {
	flagConfig := flag.String("config", "scribepad.hcl", "")
	flag.Parse()

	logger := log2.NewStderr(log2.LInfo)
	if sdnotify("READY=0\nSTATUS=scribepad start\n") {
		// under systemd assume journal logging, remove timestamp
		logger.SetFlags(log2.LServiceFlags)
	} else {
		logger.SetFlags(log2.LInteractiveFlags)
	}
	logger.Infof("hello")

	ctx, g := state.NewContext(logger)
	config := state.MustReadConfig(logger, state.NewOsFullReader(), *flagConfig)
	g.MustInit(ctx, config)

	screen, err := g.Screen()
	if err != nil {
		logger.Fatal(errors.ErrorStack(err))
	}
	conv, err := g.Converter()
	if err != nil {
		logger.Fatal(errors.ErrorStack(err))
	}

	compState := composer.NewState(g.Palette)
	sampler := keypad.NewSampler(conv, g.Keypad.Decoder, g.Keypad.Latch, g.Tick.Sample, logger)
	updater := composer.NewUpdater(g.Keypad.Latch, compState, g.Tick.Update, logger)
	slowTier := timer.NewPeriodic(g.Tick.Refresh)
	indicator := composer.NewIndicator(g.Keypad.Latch, screen)
	refresher := composer.NewRefresher(&slowTier.Flag, indicator, compState, screen, logger)

	// the two periodic tasks, the timer peripheral...
	go sampler.Run()
	go updater.Run()
	go slowTier.Run()

	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigch
		logger.Infof("signal=%v", s)
		refresher.Stop()
	}()

	sdnotify(daemon.SdNotifyReady)
	logger.Infof("init complete, running")

	// ...and the foreground loop owning the display, on the main
	// goroutine until stop.
	refresher.Run()

	sampler.Stop()
	updater.Stop()
	slowTier.Stop()
	g.Alive.Stop()
	g.Alive.Wait()
	logger.Infof("goodbye")
}

func sdnotify(s string) bool {
	ok, err := daemon.SdNotify(false, s)
	if err != nil {
		log.Fatal("sdnotify: ", errors.ErrorStack(err))
	}
	return ok
}
