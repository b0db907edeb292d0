package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Slach/chartfmt/pkg/config"
	"github.com/Slach/chartfmt/pkg/logging"
	"github.com/Slach/chartfmt/pkg/pprof"
	"github.com/Slach/chartfmt/pkg/types"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	cli      *types.CLI
	version  string
	cfg      *config.Config
	profiler *pprof.Profiler
}

func NewRootCommand(cli *types.CLI, version string) *cobra.Command {
	a := &app{cli: cli, version: version}

	rootCmd := &cobra.Command{
		Use:           "chartfmt",
		Short:         "chartfmt - format dataset values and size charts and tables for display",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.profiler.Stop()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cli.ConfigPath, "config", "", "Path to config file (default: ~/.chartfmt/chartfmt.yml)")
	flags.StringVar(&cli.LogPath, "log", "", "Path to log file, logs go to stderr when empty")
	flags.StringVar(&cli.LogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	flags.BoolVar(&cli.Pprof, "pprof", false, "Write CPU and memory profiles")
	flags.StringVar(&cli.PprofPath, "pprof-path", "", "Directory for profiles (default: ~/.chartfmt)")
	flags.StringVarP(&cli.Input, "input", "i", "", "Dataset file (.yml, .yaml, .json), - for stdin")
	flags.StringVarP(&cli.Query, "query", "q", "", "ClickHouse query producing the dataset")
	flags.BoolVar(&cli.ShowQuery, "show-query", false, "Print the query to stderr before running it")
	flags.StringVar(&cli.ConnectTo, "connect", "", "Connection name to use from config")
	flags.StringVar(&cli.Locale, "locale", "", "Locale for thousands separators, overrides config")
	flags.StringVar(&cli.Timezone, "timezone", "", "Timezone for dates, overrides config")
	flags.BoolVar(&cli.SignificantDigits, "significant-digits", true, "Abbreviate numbers with K/M/B/T units")
	flags.IntVar(&cli.Width, "width", 0, "Viewport width in terminal columns (default: terminal width)")
	flags.BoolVar(&cli.NoColor, "no-color", false, "Disable styled output")

	rootCmd.AddCommand(
		a.tableCommand(),
		a.chartCommand(),
		a.metricCommand(),
		a.widthCommand(),
		a.formatCommand(),
	)
	return rootCmd
}

func (a *app) init() error {
	if a.cli.LogPath != "" {
		if err := logging.InitLogFile(a.cli, a.version); err != nil {
			return err
		}
	}
	if err := logging.SetLevel(a.cli.LogLevel); err != nil {
		return err
	}

	cfg, err := config.Load(a.cli.ConfigPath)
	if err != nil {
		return err
	}
	if a.cli.Locale != "" {
		cfg.Format.Locale = a.cli.Locale
	}
	if a.cli.Timezone != "" {
		cfg.Format.Timezone = a.cli.Timezone
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	log.Debug().Str("locale", cfg.Format.Locale).Str("timezone", cfg.Format.Timezone).Msg("config loaded")

	if a.cli.Pprof {
		if a.profiler, err = pprof.Start(a.cli.PprofPath); err != nil {
			return err
		}
	}
	return nil
}
