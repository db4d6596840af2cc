package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"videoplayer/internal/catalog"
	"videoplayer/internal/platform/config"
	"videoplayer/internal/platform/logger"
	"videoplayer/internal/platform/metrics"
	"videoplayer/internal/player"
	"videoplayer/internal/shell"
)

const shutdownTimeout = 5 * time.Second

// Params are the command line flags. Empty values fall back to the environment.
type Params struct {
	Catalog     string `short:"c" optional:"true" help:"Path to a videos.txt catalog (bundled library if empty)." default:""`
	LogLevel    string `short:"l" optional:"true" help:"Log level: debug, info, warn, error." default:""`
	LogFormat   string `short:"f" optional:"true" help:"Log format: text or json." default:""`
	MetricsAddr string `short:"m" optional:"true" help:"Listen address for /metrics and /healthz, e.g. :9090." default:""`
}

func main() {
	boa.CmdT[Params]{
		Use:   "videoplayer",
		Short: "Browse, play and organise a video catalog from the command line",
		Long: `Reads commands from stdin, one per line. Type HELP for the list of commands.

Environment (also read from .env): VIDEO_CATALOG, LOG_LEVEL, LOG_FORMAT,
METRICS_ADDR, BANNER. Flags take precedence over the environment.`,
		Version: appVersion(),
		ParamEnrich: boa.ParamEnricherCombine(
			boa.ParamEnricherBool,
			boa.ParamEnricherName,
			boa.ParamEnricherShort,
		),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := run(params); err != nil {
				fmt.Fprintf(os.Stderr, "videoplayer: %v\n", err)
				os.Exit(1)
			}
		},
	}.Run()
}

func run(params *Params) error {
	_ = config.Load()
	cfg := applyParams(config.FromEnv(), params)

	log := logger.WithSession(logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat))

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Error("catalog load failed", slog.String("path", cfg.CatalogPath), slog.String("error", err.Error()))
		return err
	}
	log.Info("catalog loaded", slog.Int("videos", cat.Len()), slog.String("path", cfg.CatalogPath))

	met := metrics.New()
	var srv *http.Server
	if cfg.MetricsAddr != "" {
		srv = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           newDebugRouter(met, log),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("debug listener error", slog.String("error", err.Error()))
			}
		}()
		log.Info("debug listener starting", slog.String("addr", cfg.MetricsAddr))
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	in := shell.NewScanner(os.Stdin)
	p := player.New(cat, os.Stdout, in, log, met)
	sh := shell.New(p, in, os.Stdout, log, met, shell.Options{
		Interactive: interactive,
		Banner:      cfg.Banner && interactive,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The shell blocks on stdin, so it runs on its own goroutine and a signal
	// ends the process without waiting for the next line.
	errCh := make(chan error, 1)
	go func() {
		errCh <- sh.Run(ctx)
	}()

	var runErr error
	select {
	case runErr = <-errCh:
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("debug listener shutdown failed", slog.String("error", err.Error()))
			_ = srv.Close()
		}
	}
	return runErr
}

// applyParams overrides cfg with every non-empty flag value.
func applyParams(cfg config.Config, params *Params) config.Config {
	if params.Catalog != "" {
		cfg.CatalogPath = params.Catalog
	}
	if params.LogLevel != "" {
		cfg.LogLevel = params.LogLevel
	}
	if params.LogFormat != "" {
		cfg.LogFormat = params.LogFormat
	}
	if params.MetricsAddr != "" {
		cfg.MetricsAddr = params.MetricsAddr
	}
	return cfg
}

func loadCatalog(path string) (*catalog.InMemoryCatalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-(no build info)"
	}
	if bi.Main.Version == "" {
		return "unknown-(no version)"
	}
	return bi.Main.Version
}
