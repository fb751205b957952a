package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/davesmith10/bmpresize/internal/config"
	"github.com/davesmith10/bmpresize/internal/pipeline"
	"github.com/davesmith10/bmpresize/internal/scale"
)

var (
	cfg    = config.Default()
	logger = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:               "bmpresize",
	Short:             "Resize uncompressed 24-bit BMP images by pixel replication",
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML config file (default "+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (overrides config)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json (overrides config)")
	rootCmd.PersistentFlags().String("mode", "", "Replication mode: exact or legacy (overrides config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(pipeline.ExitCode(err))
	}
}

// setup loads the config file and applies flag overrides before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	required := path != ""
	if path == "" {
		path = config.DefaultPath
	}
	loaded, err := config.Load(path, required)
	if err != nil {
		return fmt.Errorf("%w: %w", pipeline.ErrArgument, err)
	}
	cfg = loaded

	if v, _ := cmd.Flags().GetString("mode"); v != "" {
		cfg.Mode = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", pipeline.ErrArgument, err)
	}

	debug, _ := cmd.Flags().GetBool("debug")
	logger, err = initLogger(cfg.LogLevel, cfg.LogFormat, debug)
	if err != nil {
		return fmt.Errorf("%w: %w", pipeline.ErrArgument, err)
	}
	logger.WithFields(logrus.Fields{
		"config": path,
		"mode":   cfg.Mode,
	}).Debug("Configuration loaded")
	return nil
}

// initLogger builds the stderr logger. Debug mode forces the debug level and
// a timestamped text formatter.
func initLogger(level, format string, debug bool) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(os.Stderr)

	if debug {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return l, nil
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	l.SetLevel(lvl)
	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05"})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l, nil
}

// resizeOptions builds pipeline options from a factor expression, an optional
// vertical factor expression and the configured mode.
func resizeOptions(factorExpr, yFactorExpr string) (pipeline.Options, error) {
	mode, err := scale.ParseMode(cfg.Mode)
	if err != nil {
		return pipeline.Options{}, fmt.Errorf("%w: %w", pipeline.ErrArgument, err)
	}
	fx, err := scale.ParseFactor(factorExpr)
	if err != nil {
		return pipeline.Options{}, err
	}
	opts := pipeline.Options{XFactor: fx, Mode: mode, Logger: logger}
	if yFactorExpr != "" {
		opts.YFactor, err = scale.ParseFactor(yFactorExpr)
		if err != nil {
			return pipeline.Options{}, fmt.Errorf("y-factor: %w", err)
		}
	}
	return opts, nil
}
