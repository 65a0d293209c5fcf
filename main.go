package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/backdrop/internal/app"
	"github.com/llehouerou/backdrop/internal/config"
	"github.com/llehouerou/backdrop/internal/errmsg"
	"github.com/llehouerou/backdrop/internal/icons"
	"github.com/llehouerou/backdrop/internal/logging"
	"github.com/llehouerou/backdrop/internal/mpris"
	"github.com/llehouerou/backdrop/internal/notify"
	"github.com/llehouerou/backdrop/internal/playback"
	"github.com/llehouerou/backdrop/internal/player"
	"github.com/llehouerou/backdrop/internal/resolver"
	"github.com/llehouerou/backdrop/internal/state"
	"github.com/llehouerou/backdrop/internal/stderr"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logger, logFile, err := logging.Open(cfg.Log.File, cfg.GetLogLevel())
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogOpen, err))
	}
	defer logFile.Close()

	// Audio backends write diagnostics to fd 2, which would corrupt the TUI.
	if err := stderr.Start(logger); err != nil {
		logger.Warn("stderr capture unavailable", "err", err)
	}
	defer stderr.Stop()

	icons.Init(cfg.Icons)

	store, err := state.Open(cfg.StatePath, cfg.StateKey)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}
	defer store.Close()

	p := player.New(player.Options{
		Autoplay:     cfg.AutoplayEnabled(),
		TickInterval: cfg.GetTickInterval(),
		Logger:       logger,
	})
	defer p.Close()
	p.SetVolume(cfg.GetVolume())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc, err := playback.Start(ctx, playback.Options{
		Player:       p,
		Store:        store,
		Resolver:     resolver.New(resolver.NewSchemeProber(cfg.GetProbeTimeout()), logger),
		Candidates:   cfg.GetPlaylist(),
		AdvanceDelay: cfg.GetAdvanceDelay(),
		Logger:       logger,
	})
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer svc.Close()

	if adapter, err := mpris.New(svc, logger); err != nil {
		logger.Warn(errmsg.Format(errmsg.OpMprisStart, err))
	} else {
		defer adapter.Close()
	}

	model := app.New(svc)
	if cfg.Notifications.NotificationsEnabled() {
		notifier, err := notify.New()
		if err != nil {
			logger.Warn("desktop notifications unavailable", "err", err)
		} else {
			model = model.WithNotifier(notifier, cfg.Notifications)
		}
	}

	logger.Info("started", "tracks", len(cfg.GetPlaylist()))
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	return nil
}
