package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/ccwrapped/internal/config"
	"github.com/harrison/ccwrapped/internal/logger"
	"github.com/harrison/ccwrapped/internal/wrapped"
)

// runtime is everything a data-reading command needs.
type runtime struct {
	cfg       *config.Config
	claudeDir string
	loc       *time.Location
	log       *logger.MultiLogger
	gen       *wrapped.Generator
}

// loadRuntime resolves configuration (flag > config file > defaults), builds
// the loggers and the report generator.
func loadRuntime(cmd *cobra.Command, opts *rootOptions) (*runtime, error) {
	configPath := opts.configPath
	if configPath == "" {
		home, err := config.GetWrappedHome()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve ccwrapped home: %w", err)
		}
		configPath = filepath.Join(home, "config.yaml")
	} else {
		expanded, err := config.ExpandHome(configPath)
		if err != nil {
			return nil, err
		}
		configPath = expanded
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	var claudeDir, logLevel, timezone *string
	var workers *int
	if flags.Changed("claude-dir") {
		claudeDir = &opts.claudeDir
	}
	if flags.Changed("log-level") {
		logLevel = &opts.logLevel
	}
	if flags.Changed("timezone") {
		timezone = &opts.timezone
	}
	if flags.Changed("workers") {
		workers = &opts.workers
	}
	cfg.MergeWithFlags(claudeDir, logLevel, timezone, workers)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	dir, err := config.ResolveClaudeDir(cfg.ClaudeDir)
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	console := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	log := logger.NewMultiLogger(console)
	if cfg.LogDir != "" {
		logDir, err := config.ExpandHome(cfg.LogDir)
		if err != nil {
			return nil, err
		}
		fileLog, err := logger.NewFileLogger(logDir, cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		log = logger.NewMultiLogger(console, fileLog)
		console.LogDebug("writing run log to %s", fileLog.Path())
	}
	log.LogDebug("config %s, data directory %s, timezone %s", configPath, dir, loc)

	return &runtime{
		cfg:       cfg,
		claudeDir: dir,
		loc:       loc,
		log:       log,
		gen:       wrapped.NewGenerator(dir, cfg.Workers, loc, log),
	}, nil
}

// Close flushes the run log, if any.
func (rt *runtime) Close() error {
	return rt.log.Close()
}
