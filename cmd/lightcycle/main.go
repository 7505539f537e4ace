// Command lightcycle plays one continuous light-cycle round against the
// reactive agent, in a 3D window (default) or in the terminal.
//
// Settings come from the environment or a .env file:
//
//	LIGHTCYCLE_FRONTEND   gl | tui
//	LIGHTCYCLE_SEED       agent seed (default: clock)
//	LIGHTCYCLE_LOG_LEVEL  debug | info | warn | error
//	LIGHTCYCLE_LOG_FILE   append logs here instead of stderr
//	LIGHTCYCLE_MUTE       true to disable sound
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"

	"lightcycle/internal/game"
	"lightcycle/internal/logging"
	"lightcycle/internal/settings"
	"lightcycle/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lightcycle: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	s, err := settings.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(s)
	if err != nil {
		return err
	}
	defer closeLog()

	switch s.Frontend {
	case settings.FrontendTUI:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = tui.Run(ctx, s, logger)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	default:
		err = game.RunDesktop(s, logger)
	}
	if err != nil {
		logger.Error("exit", "err", err)
	}
	return err
}

// newLogger picks the log destination. The terminal frontend owns stderr's
// terminal, so without a log file its output is discarded.
func newLogger(s settings.Settings) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeLog := func() {}
	switch {
	case s.LogFile != "":
		f, err := logging.Open(s.LogFile)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeLog = func() { f.Close() }
	case s.Frontend == settings.FrontendTUI:
		w = io.Discard
	}
	logger, err := logging.New(w, s.LogLevel)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	return logger, closeLog, nil
}
