package main

import (
	"github.com/studybook-cli/studybook/internal/config"
	"github.com/studybook-cli/studybook/internal/format"
	"github.com/studybook-cli/studybook/internal/logger"
)

// appContext bundles the objects every subcommand needs: the merged
// configuration, one formatter, and one logger.
type appContext struct {
	cfg  config.Config
	fmtr *format.Formatter
	log  *logger.Logger
}

// newAppContext loads the configuration file and builds the formatter and
// logger, applying command-line overrides on top of the file settings.
func newAppContext(flags *rootFlags) (*appContext, error) {
	configPath := flags.configPath
	if configPath == "" {
		path, err := defaultConfigPath()
		if err != nil {
			return nil, err
		}
		configPath = path
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	opts := cfg.FormatterOptions()
	if flags.theme != "" {
		opts.Theme = flags.theme
	}
	if flags.noColor {
		disabled := false
		opts.Colors = &disabled
	}
	if flags.ascii {
		disabled := false
		opts.Unicode = &disabled
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, Pretty: flags.verbose})
	if err != nil {
		return nil, err
	}

	return &appContext{
		cfg:  cfg,
		fmtr: format.New(opts),
		log:  log,
	}, nil
}
