package main

import (
	"fmt"
	"os"

	"github.com/vitalvas/shamirkit/recovery"
	"github.com/vitalvas/shamirkit/render"
	"github.com/vitalvas/shamirkit/sharefile"
	"github.com/vitalvas/shamirkit/xconfig"
	"github.com/vitalvas/shamirkit/xlogger"
)

const envPrefix = "SHAMIR"

type Config struct {
	Logger   xlogger.Config `yaml:"logger" json:"logger"`
	Recovery RecoveryConfig `yaml:"recovery" json:"recovery"`
	Output   OutputConfig   `yaml:"output" json:"output"`
}

type RecoveryConfig struct {
	Workers   int    `yaml:"workers" json:"workers"`
	Selection string `yaml:"selection" json:"selection" default:"document"`
	Verify    bool   `yaml:"verify" json:"verify"`
}

type OutputConfig struct {
	Format string `yaml:"format" json:"format" default:"text"`
}

func loadConfig(path string) (*Config, error) {
	options := []xconfig.Option{xconfig.WithEnv(envPrefix)}
	if path != "" {
		// xconfig skips missing files; a file named on the command line must exist
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		options = append(options, xconfig.WithFiles(path), xconfig.WithStrict())
	}

	var cfg Config
	if err := xconfig.Load(&cfg, options...); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if !xlogger.ValidLevel(c.Logger.Level) {
		return fmt.Errorf("invalid log level %q", c.Logger.Level)
	}

	if _, err := sharefile.ParseSelection(c.Recovery.Selection); err != nil {
		return err
	}

	if _, err := render.ParseFormat(c.Output.Format); err != nil {
		return err
	}

	if c.Recovery.Workers < 0 {
		return fmt.Errorf("invalid workers %d", c.Recovery.Workers)
	}

	return nil
}

func (c *Config) recoveryOptions() recovery.Options {
	return recovery.Options{
		Workers:   c.Recovery.Workers,
		Selection: sharefile.Selection(c.Recovery.Selection),
		Verify:    c.Recovery.Verify,
	}
}
