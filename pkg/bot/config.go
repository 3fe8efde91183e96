// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package bot

import (
	"os"

	"github.com/mattermost/first-timers-bot/pkg/issues"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultLabels are the beginner-friendly labels searched when no
// configuration overrides them
var DefaultLabels = []string{"good first issue", "good-first-issue", "beginner-friendly"}

const (
	DefaultDBPath    = "data/db.json"
	DefaultCredsPath = "credentials.json"
)

// Config is the optional YAML run configuration. Command line flags win
// over anything set here.
type Config struct {
	Labels     []string `yaml:"labels"`      // Issue labels to search for
	WindowDays int      `yaml:"windowDays"`  // Max age in days of a fresh issue
	DBPath     string   `yaml:"dbPath"`      // Issue database location
	CredsPath  string   `yaml:"credsPath"`   // Twitter credentials file
	MaxHistory int      `yaml:"maxHistory"`  // Issues retained in the database
}

// LoadConfig reads a config file and returns a config object
func LoadConfig(path string) (*Config, error) {
	yamlData, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading bot configuration file")
	}
	conf := &Config{}
	if err := yaml.Unmarshal(yamlData, conf); err != nil {
		return nil, errors.Wrap(err, "parsing config yaml data")
	}
	return conf, nil
}

// Validate checks the configuration values to make sure they are complete
func (conf *Config) Validate() error {
	for i, label := range conf.Labels {
		if label == "" {
			return errors.Errorf("label #%d is blank", i)
		}
	}
	if conf.WindowDays < 0 {
		return errors.New("the freshness window cannot be negative")
	}
	if conf.MaxHistory < 0 {
		return errors.New("the history cap cannot be negative")
	}
	return nil
}

// Apply copies the configured values over an option set, leaving options
// untouched where the config is silent
func (conf *Config) Apply(opts *Options) {
	if len(conf.Labels) > 0 {
		opts.Labels = conf.Labels
	}
	if conf.WindowDays > 0 {
		opts.WindowDays = conf.WindowDays
	}
	if conf.DBPath != "" {
		opts.DBPath = conf.DBPath
	}
	if conf.CredsPath != "" {
		opts.CredsPath = conf.CredsPath
	}
	if conf.MaxHistory > 0 {
		opts.MaxHistory = conf.MaxHistory
	}
}

// DefaultOptions returns a fully populated option set
func DefaultOptions() *Options {
	return &Options{
		Labels:     DefaultLabels,
		WindowDays: issues.DefaultWindowDays,
		DBPath:     DefaultDBPath,
		CredsPath:  DefaultCredsPath,
		MaxHistory: issues.DefaultMaxHistory,
	}
}
