// Command late runs the $LATE token dashboard in the terminal.
//
// Usage:
//
//	late                      (built-in defaults)
//	late --config late.yaml
//	late --setup [--config late.yaml]
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vadiminshakov/late/config"
	"github.com/vadiminshakov/late/internal"
	"github.com/vadiminshakov/late/internal/clients"
	"github.com/vadiminshakov/late/internal/logging"
	"github.com/vadiminshakov/late/internal/services/copier"
	"github.com/vadiminshakov/late/internal/setup"
	"github.com/vadiminshakov/late/internal/tui"
	"github.com/vadiminshakov/late/internal/view"
)

const defaultSetupPath = "late.yaml"

func main() {
	opts, err := config.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	proceed, err := runSetup(&opts, setup.RunTUI)
	if err != nil {
		log.Fatal(err)
	}
	if !proceed {
		return
	}

	conf, err := config.Get(opts)
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(conf.LogFile, conf.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	page := view.NewPage(view.DefaultIDs...)
	fetcher := clients.NewDexScreenerClient(conf.EndpointURL, conf.RequestTimeout)

	out := tui.NewOutput(os.Stdout)

	dash, err := internal.NewDashboard(conf, page, fetcher, copier.SystemClipboard{}, copier.NewTerminalSelection(out), logger)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("dashboard starting", zap.String("endpoint", conf.EndpointURL), zap.Duration("poll", conf.PollInterval))

	runErr := tui.Run(ctx, tui.New(ctx, dash, page, conf.ContractAddress, conf.Memes), tea.WithOutput(out))
	if err := dash.Stop(); err != nil {
		logger.Error("dashboard stopped with error", zap.Error(err))
	}
	if runErr != nil {
		logger.Error("terminal front end failed", zap.Error(runErr))
		log.Fatal(runErr)
	}
	logger.Info("dashboard stopped")
}

// runSetup runs the wizard when requested. It reports false when the user
// backed out and the program should exit quietly.
func runSetup(opts *config.Options, wizard func(path string) error) (bool, error) {
	if !opts.Setup {
		return true, nil
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = defaultSetupPath
	}

	err := wizard(opts.ConfigPath)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, setup.ErrCancelled), errors.Is(err, huh.ErrUserAborted):
		return false, nil
	default:
		return false, err
	}
}
