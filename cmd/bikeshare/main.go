package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/bikeshare/internal/adapters/fs"
	logAdapter "github.com/bft-labs/bikeshare/internal/adapters/log"
	"github.com/bft-labs/bikeshare/internal/adapters/tripcsv"
	"github.com/bft-labs/bikeshare/internal/app"
	"github.com/bft-labs/bikeshare/internal/cliconfig"
	"github.com/bft-labs/bikeshare/internal/domain"
	"github.com/bft-labs/bikeshare/internal/ports"
	"github.com/bft-labs/bikeshare/internal/report"
)

const longHelp = `Explore US bikeshare trip data for Chicago, New York City and Washington.

Pick a city and optionally a month (january to june) and a weekday, then
read the most popular travel times, stations and trips, trip duration
totals and user demographics, and page through the matching raw rows.

Data files are read from --data-dir: chicago.csv, new_york_city.csv and
washington.csv unless overridden in the [cities] table of the config file.`

var exampleUsage = strings.TrimSpace(`
  bikeshare --data-dir ./data
  bikeshare report --city chicago --month march --day friday
  bikeshare report --city washington --watch
  bikeshare last
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// cli holds state shared by the root command and its subcommands.
type cli struct {
	cfg     cliconfig.Config
	cfgPath string
	log     zerolog.Logger
}

// load applies the config file and environment, then validates.
// Precedence: flags > env > file > defaults.
func (c *cli) load(cmd *cobra.Command) error {
	cfgFile := c.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&c.cfg, fc, changed); err != nil {
			return err
		}
	} else if c.cfgPath != "" {
		return fmt.Errorf("load config: %s: %w", c.cfgPath, os.ErrNotExist)
	}

	if err := cliconfig.ApplyEnvConfig(&c.cfg, changed); err != nil {
		return err
	}
	if err := c.cfg.Validate(); err != nil {
		return err
	}

	c.log = c.log.Level(c.cfg.Level())
	c.log.Info().Interface("config", c.cfg).Msg("configuration")
	return nil
}

func (c *cli) logger() ports.Logger {
	return logAdapter.NewZerologAdapterWithLogger(c.log)
}

func (c *cli) source() *tripcsv.Source {
	return tripcsv.NewSource(c.cfg.DataDir, c.cfg.CityFiles())
}

func (c *cli) store() ports.FilterStore {
	if c.cfg.NoHistory {
		return nil
	}
	return fs.NewFilterFileRepository(c.cfg.HistoryDir)
}

func (c *cli) reportOptions() report.Options {
	return report.Options{ShowTimings: c.cfg.ShowTimings, Plain: c.cfg.NoColor}
}

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func (c *cli) runSession(cmd *cobra.Command, args []string) error {
	if err := c.load(cmd); err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	s := app.NewSession(
		app.SessionConfig{PageSize: c.cfg.PageSize, Report: c.reportOptions()},
		c.source(),
		c.store(),
		c.logger(),
		cmd.InOrStdin(),
		cmd.OutOrStdout(),
	)
	if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (c *cli) runReport(cmd *cobra.Command, f domain.Filter, watch bool) error {
	ctx, cancel := signalContext()
	defer cancel()

	src := c.source()
	r := app.NewReporter(src, c.logger(), cmd.OutOrStdout(), c.reportOptions())

	if !watch {
		if err := r.Run(ctx, f); err != nil {
			return err
		}
		if store := c.store(); store != nil {
			if err := store.Save(ctx, f); err != nil {
				c.log.Warn().Err(err).Msg("failed to save filter")
			}
		}
		return nil
	}

	w := app.NewWatcher(src.Path(f.City), func(ctx context.Context) error {
		return r.Run(ctx, f)
	}, c.logger())
	c.log.Info().Str("path", src.Path(f.City)).Msg("watching data file")
	return w.Run(ctx)
}

func newReportCmd(c *cli) *cobra.Command {
	var city, month, day string
	var watch bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the trip statistics for one city without prompting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.load(cmd); err != nil {
				return err
			}
			f, err := domain.NewFilter(city, month, day)
			if err != nil {
				return err
			}
			return c.runReport(cmd, f, watch)
		},
	}
	cmd.Flags().StringVar(&city, "city", "", fmt.Sprintf("city to analyze (%s)", domain.CityNames()))
	cmd.Flags().StringVar(&month, "month", domain.All, `month to filter by (january..june) or "all"`)
	cmd.Flags().StringVar(&day, "day", domain.All, `day of week to filter by or "all"`)
	cmd.Flags().BoolVar(&watch, "watch", false, "re-run the report whenever the city's data file changes")
	if err := cmd.MarkFlagRequired("city"); err != nil {
		c.log.Info().Err(err).Msg("failed to mark city flag required")
	}
	return cmd
}

func newLastCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "last",
		Short: "Re-run the report with the most recently used filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.load(cmd); err != nil {
				return err
			}
			if c.cfg.NoHistory {
				return fmt.Errorf("history is disabled: %w", domain.ErrNoHistory)
			}
			f, err := fs.NewFilterFileRepository(c.cfg.HistoryDir).Load(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Using saved filter: %s\n", f)
			return c.runReport(cmd, f, false)
		},
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:          "bikeshare",
		Short:        "Explore US bikeshare trip statistics",
		Long:         longHelp,
		Example:      exampleUsage,
		Version:      fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         c.runSession,
	}

	// Persistent so subcommands share the config surface.
	flags := root.PersistentFlags()
	flags.StringVar(&c.cfgPath, "config", "", "path to config file (default: $HOME/.bikeshare/config.toml)")
	flags.StringVar(&c.cfg.DataDir, "data-dir", c.cfg.DataDir, "directory holding the city CSV files")
	flags.IntVar(&c.cfg.PageSize, "page-size", c.cfg.PageSize, "raw data rows shown per page")
	flags.StringVar(&c.cfg.LogLevel, "log-level", c.cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.BoolVar(&c.cfg.ShowTimings, "timings", c.cfg.ShowTimings, "print how long each statistic took")
	flags.BoolVar(&c.cfg.NoColor, "no-color", c.cfg.NoColor, "disable terminal styling")
	flags.StringVar(&c.cfg.HistoryDir, "history-dir", c.cfg.HistoryDir, "directory for the last used filter (default: $HOME/.bikeshare)")
	flags.BoolVar(&c.cfg.NoHistory, "no-history", c.cfg.NoHistory, "do not remember the last used filter")
	if err := flags.MarkHidden("history-dir"); err != nil {
		c.log.Info().Err(err).Msg("failed to hide history-dir flag")
	}

	root.AddCommand(newReportCmd(c), newLastCmd(c))
	return root
}

func main() {
	c := &cli{cfg: cliconfig.DefaultConfig(), log: cliconfig.Logger()}
	if err := newRootCmd(c).Execute(); err != nil {
		c.log.Error().Err(err).Msg("bikeshare")
		os.Exit(1)
	}
}
