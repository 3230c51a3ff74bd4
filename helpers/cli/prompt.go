package cli

import (
	"bufio"
	"os"
	"os/signal"
	"strings"
	"syscall"

	prompt "github.com/c-bata/go-prompt"
	isatty "github.com/mattn/go-isatty"
)

// MainLoop runs exec for each input line: interactive prompt on a tty,
// plain stdin lines otherwise (useful for piping test scripts).
func MainLoop(tag string, exec func(line string), complete func(d prompt.Document) []prompt.Suggest) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	go func() {
		for range signalCh {
			os.Exit(1)
		}
	}()

	if isatty.IsTerminal(os.Stdin.Fd()) {
		prompt.New(exec, complete, prompt.OptionPrefix(tag+"> ")).Run()
		return
	}
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		exec(strings.TrimSpace(sc.Text()))
	}
}
