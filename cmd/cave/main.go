package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/cobra"

	"github.com/cgudrian/adventofcode/internal/cave"
	"github.com/cgudrian/adventofcode/internal/config"
)

var (
	log     = logrus.New()
	version = "0.1.0-dev"
)

type options struct {
	configPath string
	input      string
	set        []string
	json       bool
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "cave",
		Short: "Pour sand into a scanned cave and count the grains",
		Long: `cave reads rock paths ("x,y -> x,y -> ...", one per line) and drops
sand from the inlet until it runs off into the abyss, then again with a
floor two rows below the lowest rock until the inlet is buried.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoth(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file path (JSON or YAML)")
	flags.StringVarP(&opts.input, "input", "i", "", "rock path file, - for stdin")
	flags.StringArrayVar(&opts.set, "set", nil, "override a config value, e.g. --set inlet.x=500")
	flags.BoolVar(&opts.json, "json", false, "print results as JSON")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(
		newRunCmd(opts),
		newDumpCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cave version %s\n", version)
		},
	}
}

// loadConfig layers the config file, the --input flag and --set overrides
// over the defaults.
func (o *options) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		if err := config.ReadConfig(o.configPath, cfg); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", o.configPath, err)
		}
	}
	if o.input != "" {
		cfg.Input = o.input
	}
	if err := cfg.ApplyOverrides(o.set); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogging(cmd *cobra.Command, cfg *config.Config, verbose bool) error {
	logLevel := logrus.InfoLevel
	if verbose || cfg.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	log.ReplaceHooks(make(logrus.LevelHooks))

	if cfg.LogFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.LogFile,
			MaxSize:    5,
			MaxBackups: 3,
			MaxAge:     28,
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return fmt.Errorf("unable to open log file %s: %w", cfg.LogFile, err)
		}
		log.AddHook(hook)
	}

	cave.Log = log
	return nil
}

// runContext is cancelled on SIGINT/SIGTERM and, when configured, after
// the run timeout.
func runContext(parent context.Context, cfg *config.Config) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	if cfg.Timeout.Duration <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout.Duration)
	return ctx, func() {
		cancel()
		stop()
	}
}
