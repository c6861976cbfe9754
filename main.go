package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"

	"github.com/llehouerou/serein/internal/app"
	"github.com/llehouerou/serein/internal/audio"
	"github.com/llehouerou/serein/internal/catalog"
	"github.com/llehouerou/serein/internal/config"
	"github.com/llehouerou/serein/internal/errmsg"
	"github.com/llehouerou/serein/internal/journal"
	"github.com/llehouerou/serein/internal/logging"
	"github.com/llehouerou/serein/internal/media"
	"github.com/llehouerou/serein/internal/mpris"
	"github.com/llehouerou/serein/internal/notify"
	"github.com/llehouerou/serein/internal/playback"
	"github.com/llehouerou/serein/internal/state"
	"github.com/llehouerou/serein/internal/stderr"
)

// startupError carries the operation that failed so main can report it.
type startupError struct {
	op  errmsg.Op
	err error
}

func (e *startupError) Error() string { return errmsg.Format(e.op, e.err) }

func fail(op errmsg.Op, err error) error { return &startupError{op: op, err: err} }

func main() {
	if err := run(); err != nil {
		stderr.WriteOriginal(err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fail(errmsg.OpConfigLoad, err)
	}

	logger, logCloser, err := logging.New(logging.Config{
		Level:    cfg.GetLogLevel(),
		FilePath: cfg.Log.File,
	})
	if err != nil {
		return fail(errmsg.OpInitialize, err)
	}
	defer logCloser.Close()

	if err := stderr.Start(logger.Named("stderr")); err != nil {
		logger.Warn("stderr redirect unavailable", "error", err)
	}
	defer stderr.Stop()

	stateMgr, err := state.Open(cfg.DBPath, logger.Named("state"))
	if err != nil {
		return fail(errmsg.OpStateOpen, err)
	}
	defer stateMgr.Close()

	audioCfg := cfg.GetAudioConfig()

	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return fail(errmsg.OpCatalogLoad, err)
	}
	cat, err = cat.ResolveAudio(audioCfg.Base)
	if err != nil {
		return fail(errmsg.OpCatalogLoad, err)
	}

	el := media.NewBeep(media.Options{Logger: logger.Named("media")})
	mgr := audio.New(el, audio.Options{
		Logger:       logger.Named("audio"),
		LoadTimeout:  audioCfg.LoadTimeout,
		ReadyTimeout: audioCfg.ReadyTimeout,
		ProbeTimeout: audioCfg.ProbeTimeout,
	})
	ctrl := playback.New(mgr, logger.Named("playback"))
	defer ctrl.Close()
	ctrl.SetVolume(initialVolume(stateMgr, audioCfg.Volume, logger))

	var remote *journal.Gemini
	if cfg.HasGeminiConfig() {
		remote, err = journal.NewGemini(context.Background(), journal.GeminiConfig{
			APIKey:   cfg.Gemini.APIKey,
			Model:    cfg.Gemini.Model,
			Endpoint: cfg.Gemini.Endpoint,
		})
		if err != nil {
			logger.Warn("remote journal unavailable", "error", err)
		}
	}
	jrnl := journal.NewService(remote, journal.NewFallback(nil), logger.Named("journal"))

	bus := mpris.New(ctrl, cat.Meditation, logger.Named("mpris"))
	defer bus.Close()

	logger.Info("starting",
		"meditations", len(cat.Meditations),
		"themes", len(cat.Themes),
		"audio_base", audioCfg.Base,
		"remote_journal", jrnl.Remote(),
	)

	m := app.New(app.Deps{
		Catalog:   cat,
		Player:    ctrl,
		Journal:   jrnl,
		State:     stateMgr,
		Notifier:  notify.New(logger.Named("notify")),
		Logger:    logger.Named("app"),
		AudioBase: audioCfg.Base,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// initialVolume prefers the level saved by a previous session.
func initialVolume(s *state.Manager, fallback float64, logger hclog.Logger) float64 {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	v, ok, err := s.GetVolume(ctx)
	if err != nil {
		logger.Warn("read saved volume", "error", err)
		return fallback
	}
	if !ok {
		return fallback
	}
	return v
}
