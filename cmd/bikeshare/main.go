package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bikeshare-data/internal/common/config"
	"github.com/bikeshare-data/internal/common/db"
	"github.com/bikeshare-data/internal/common/logger"
	"github.com/bikeshare-data/internal/dataset/loader"
	"github.com/bikeshare-data/internal/session"
	"github.com/bikeshare-data/internal/stats"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

func main() {
	if err := newRootCommand(os.Stdin, os.Stdout).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options are flag overrides applied on top of the environment.
type options struct {
	envFile    string
	dataDir    string
	source     string
	logLevel   string
	logConsole bool
}

func newRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "bikeshare",
		Short: "Explore US bikeshare trip data",
		Long: `Bikeshare explores trip logs for Chicago, New York City and Washington.

It asks for a city and optional month and day filters, then prints the most
frequent travel times, popular stations and trips, trip duration totals and
user demographics. Raw rows can be paged five at a time.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			overrides := func(cfg *config.Config) {
				if flags.Changed("data-dir") {
					cfg.Dataset.DataDir = opts.dataDir
				}
				if flags.Changed("source") {
					cfg.Dataset.Source = opts.source
				}
				if flags.Changed("log-level") {
					cfg.Logging.Level = opts.logLevel
				}
				if flags.Changed("log-console") {
					cfg.Logging.Console = opts.logConsole
				}
			}
			return run(cmd.Context(), in, out, opts.envFile, overrides)
		},
	}

	cmd.Flags().StringVar(&opts.envFile, "env-file", ".env", "optional file of environment variables")
	cmd.Flags().StringVarP(&opts.dataDir, "data-dir", "d", "", "directory holding the city CSV files (BIKESHARE_DATA_DIR)")
	cmd.Flags().StringVar(&opts.source, "source", "", "trip source: csv or postgres (BIKESHARE_SOURCE)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level (LOG_LEVEL)")
	cmd.Flags().BoolVar(&opts.logConsole, "log-console", false, "also log to stderr (LOG_CONSOLE)")

	return cmd
}

func run(ctx context.Context, in io.Reader, out io.Writer, envFile string, overrides func(*config.Config)) error {
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if overrides != nil {
		overrides(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.NewFromConfig(logger.LoggerConfig{
		Level:           logger.ParseLogLevel(cfg.Logging.Level),
		Console:         cfg.Logging.Console,
		File:            cfg.Logging.FilePath != "",
		FilePath:        cfg.Logging.FilePath,
		MaxSizeMB:       10,
		MaxBackups:      5,
		MaxAgeDays:      30,
		Compress:        true,
		TimeFieldFormat: time.RFC3339,
	})

	log.Info("Bikeshare explorer starting",
		"version", version,
		"source", cfg.Dataset.Source,
		"data_dir", cfg.Dataset.DataDir,
		"page_size", cfg.Dataset.PageSize,
	)

	source, closeSource, err := newSource(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to open trip source", "error", err)
		return err
	}
	defer closeSource()

	s := session.New(in, out,
		session.Config{PageSize: cfg.Dataset.PageSize},
		loader.New(source, log),
		stats.NewReporter(out, log),
		log,
	)
	if err := s.Run(ctx); err != nil {
		log.Error("Session aborted", "error", err)
		return err
	}
	return nil
}

func newSource(ctx context.Context, cfg *config.Config, log logger.Logger) (loader.Source, func(), error) {
	switch cfg.Dataset.Source {
	case config.SourcePostgres:
		database, err := db.New(ctx, cfg.Database.ConnectionString(), log)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", loader.ErrFileAccess, err)
		}
		return loader.NewPostgresSource(database), func() { database.Close() }, nil
	default:
		return loader.NewCSVSource(cfg.Dataset.DataDir, log), func() {}, nil
	}
}
