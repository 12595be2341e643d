// Package xconfig fills a configuration struct from, in order of increasing
// precedence, `default:` struct tags, YAML or JSON files and environment
// variables.
//
// Environment keys are built from the prefix and the yaml (or json) tag of
// every nested field: with prefix "SHAMIR", Config.Recovery.Workers tagged
// `yaml:"workers"` inside `yaml:"recovery"` is read from SHAMIR_RECOVERY_WORKERS.
package xconfig

import (
	"fmt"
	"reflect"
)

type Options struct {
	files     []string
	envPrefix string
	strict    bool
}

type Option func(*Options)

// WithFiles loads the given files in order; later files override earlier ones.
// Missing files are skipped.
func WithFiles(filenames ...string) Option {
	return func(o *Options) {
		o.files = append(o.files, filenames...)
	}
}

func WithEnv(prefix string) Option {
	return func(o *Options) {
		o.envPrefix = prefix
	}
}

// WithStrict rejects unknown fields in configuration files.
func WithStrict() Option {
	return func(o *Options) {
		o.strict = true
	}
}

func Load(config any, options ...Option) error {
	opts := &Options{}
	for _, option := range options {
		option(opts)
	}

	configElem, err := validateConfigPointer(config)
	if err != nil {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	if err := applyDefaultTags(configElem); err != nil {
		return fmt.Errorf("failed to apply default tags: %w", err)
	}

	if err := loadFromFiles(config, opts.files, opts.strict); err != nil {
		return fmt.Errorf("failed to load from files: %w", err)
	}

	if opts.envPrefix != "" {
		if err := loadFromEnv(configElem, opts.envPrefix); err != nil {
			return fmt.Errorf("failed to load from environment: %w", err)
		}
	}

	return nil
}

func validateConfigPointer(config any) (reflect.Value, error) {
	configValue := reflect.ValueOf(config)
	if configValue.Kind() != reflect.Ptr || configValue.IsNil() {
		return reflect.Value{}, fmt.Errorf("config must be a non-nil pointer")
	}

	configElem := configValue.Elem()
	if configElem.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("config must point to a struct, got %s", configElem.Kind())
	}

	return configElem, nil
}
