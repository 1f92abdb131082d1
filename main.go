package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/llehouerou/audiolayout/internal/app"
	"github.com/llehouerou/audiolayout/internal/audiolayout"
	"github.com/llehouerou/audiolayout/internal/config"
	"github.com/llehouerou/audiolayout/internal/errmsg"
	"github.com/llehouerou/audiolayout/internal/host"
	"github.com/llehouerou/audiolayout/internal/icons"
	"github.com/llehouerou/audiolayout/internal/media"
	"github.com/llehouerou/audiolayout/internal/ui/layout"
)

func main() {
	var (
		comp   *audiolayout.Component
		player *media.Context
		logger *zap.Logger
	)

	fxApp := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Provide(
			config.Load,
			newLogger,
			host.NewDocument,
			newMedia,
			newComponent,
		),
		fx.Invoke(registerHooks),
		fx.Populate(&comp, &player, &logger),
	)
	if err := fxApp.Err(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancel()
	if err := fxApp.Start(startCtx); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpLayoutSetup, err))
		os.Exit(1)
	}

	p := tea.NewProgram(app.New(comp, player, logger), tea.WithAltScreen())
	_, runErr := p.Run()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer stopCancel()
	if err := fxApp.Stop(stopCtx); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpLayoutDispose, err))
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// newLogger writes to a file so the terminal UI stays clean.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	path, err := cfg.LogFilePath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	return zc.Build()
}

// newMedia creates the demo player and its host node under the body.
func newMedia(cfg *config.Config, doc *host.Document) *media.Context {
	node := host.NewNode("media-player")
	doc.Body.Append(node)

	m := media.NewContext(node, media.Options{Load: cfg.LoadMode(), ViewType: cfg.View()})
	m.Sched.Batch(func() {
		m.Title.Set(cfg.Demo.Title)
		m.Artist.Set(cfg.Demo.Artist)
		m.Duration.Set(time.Duration(cfg.Demo.DurationSeconds) * time.Second)
	})
	return m
}

func newComponent(cfg *config.Config, doc *host.Document, m *media.Context, logger *zap.Logger) *audiolayout.Component {
	comp := audiolayout.New(audiolayout.Options{
		Portal:      doc.Body,
		IconStyle:   icons.Style(cfg.Icons),
		CustomIcons: cfg.CustomIcons,
		IconSlots:   cfg.IconSlots,
		Breakpoints: layout.Breakpoints{SmallWidth: cfg.SmallWidth},
		Logger:      logger,
	})
	m.Player.Append(comp.Root())
	return comp
}

// registerHooks attaches the component on start and disposes it on stop.
func registerHooks(lc fx.Lifecycle, comp *audiolayout.Component, m *media.Context, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := startLayout(ctx, comp, m); err != nil {
				return err
			}
			logger.Info("audio layout started")
			return nil
		},
		OnStop: func(context.Context) error {
			err := comp.Dispose()
			logger.Info("audio layout stopped")
			_ = logger.Sync()
			return err
		},
	})
}

// startLayout sets up and connects comp. fx skips OnStop for a hook whose
// OnStart failed, so a failed Connect disposes what Setup acquired.
func startLayout(ctx context.Context, comp *audiolayout.Component, m *media.Context) error {
	if err := comp.Setup(media.WithContext(ctx, m)); err != nil {
		return err
	}
	if err := comp.Connect(); err != nil {
		return multierr.Append(fmt.Errorf("%s: %w", errmsg.OpLayoutConnect, err), comp.Dispose())
	}
	return nil
}
