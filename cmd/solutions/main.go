// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the solutions CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/solutions/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// logger is built in PersistentPreRunE; it is a no-op until then.
	logger = zap.NewNop()

	// cfg holds the merged defaults, config file, environment and flags.
	cfg = types.DefaultConfig()
)

// errUnsolved signals that a command already reported a failed solve or
// case run and only the exit status is left to set.
var errUnsolved = errors.New("unsolved")

// rootCmd is the base command for the solutions CLI.
var rootCmd = &cobra.Command{
	Use:   "solutions",
	Short: "Solutions to introductory programming exercises",
	Long: `solutions runs a small catalog of exercise solutions. Each exercise has
one or more solution variants; solve evaluates them on an input given on the
command line, run checks them against YAML case files, and history keeps a
SQLite record of past evaluations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")

		zc := zap.NewProductionConfig()
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		l, err := zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l

		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("reading configuration: %w", err)
		}
		logger.Debug("configuration loaded",
			zap.String("history_dir", cfg.History.HistoryDir),
			zap.Int("workers", cfg.Runner.Workers),
			zap.Bool("record", cfg.Record))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := types.DefaultConfig()
	viper.SetDefault("runner.workers", defaults.Runner.Workers)
	viper.SetDefault("runner.fail_fast", defaults.Runner.FailFast)
	viper.SetDefault("history.history_dir", defaults.History.HistoryDir)
	viper.SetDefault("history.max_results", defaults.History.MaxResults)
	viper.SetDefault("record", defaults.Record)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./solutions.yaml or ~/.config/solutions/solutions.yaml)")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	pf.String("history-dir", defaults.History.HistoryDir, "directory for the run history database")
	pf.Bool("record", false, "store evaluations in the run history")

	_ = viper.BindPFlag("history.history_dir", pf.Lookup("history-dir"))
	_ = viper.BindPFlag("record", pf.Lookup("record"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("solutions")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "solutions"))
		}
	}

	viper.SetEnvPrefix("SOLUTIONS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// execute runs the command tree until it finishes or ctx is cancelled.
func execute(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, errUnsolved) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}
