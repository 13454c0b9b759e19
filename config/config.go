// SPDX-License-Identifier: MIT

// Package config loads the run configuration of the treach driver from
// defaults, an optional YAML file, TREACH_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/treach/index"
	"github.com/katalvlaran/treach/reach"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "TREACH"

// Config is the decoded run configuration.
type Config struct {
	Graph            string   `mapstructure:"graph"`
	Queries          []string `mapstructure:"queries"`
	Mode             string   `mapstructure:"mode"`
	SubgraphFraction float64  `mapstructure:"subgraph_fraction"`
	RetainedFraction float64  `mapstructure:"retained_fraction"`
	UpdateFraction   float64  `mapstructure:"update_fraction"`
	QueryBound       int      `mapstructure:"query_bound"`
	Semantics        string   `mapstructure:"semantics"`
	Malformed        string   `mapstructure:"malformed"`
	Undirected       bool     `mapstructure:"undirected"`
	Debug            bool     `mapstructure:"debug"`
	LogFormat        string   `mapstructure:"log_format"`
	MetricsFile      string   `mapstructure:"metrics_file"`
	ReportFile       string   `mapstructure:"report_file"`
	Output           string   `mapstructure:"output"`

	mode      index.Mode
	semantics reach.Semantics
	policy    reach.MalformedPolicy
}

// flagKeys maps config keys to the flag names cmd/treach registers.
var flagKeys = map[string]string{
	"graph":             "graph",
	"queries":           "queries",
	"mode":              "mode",
	"subgraph_fraction": "subgraph",
	"retained_fraction": "retained",
	"update_fraction":   "update",
	"query_bound":       "bound",
	"semantics":         "semantics",
	"malformed":         "malformed",
	"undirected":        "undirected",
	"debug":             "debug",
	"log_format":        "log-format",
	"metrics_file":      "metrics-file",
	"report_file":       "report-file",
	"output":            "output",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("graph", "")
	v.SetDefault("queries", []string{})
	v.SetDefault("mode", index.Online.String())
	v.SetDefault("subgraph_fraction", 1.0)
	v.SetDefault("retained_fraction", 1.0)
	v.SetDefault("update_fraction", 0.0)
	v.SetDefault("query_bound", 0)
	v.SetDefault("semantics", reach.NonStrict.String())
	v.SetDefault("malformed", reach.Abort.String())
	v.SetDefault("undirected", false)
	v.SetDefault("debug", false)
	v.SetDefault("log_format", "auto")
	v.SetDefault("metrics_file", "")
	v.SetDefault("report_file", "")
	v.SetDefault("output", "")
}

// Load resolves the configuration. file may be empty, in which case
// ./treach.yaml is used when present. flags may be nil; only flags that were
// set on the command line override other sources.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind flag %q: %w", name, err)
				}
			}
		}
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("treach")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks ranges and parses the enumerated settings.
func (c *Config) Validate() error {
	var err error
	if c.mode, err = index.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.semantics, err = reach.ParseSemantics(c.Semantics); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.policy, err = reach.ParseMalformedPolicy(c.Malformed); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err = reach.ValidateRetained(c.SubgraphFraction); err != nil {
		return fmt.Errorf("config: subgraph_fraction: %w", err)
	}
	if err = reach.ValidateRetained(c.RetainedFraction); err != nil {
		return fmt.Errorf("config: retained_fraction: %w", err)
	}
	if err = reach.ValidateUpdate(c.UpdateFraction); err != nil {
		return fmt.Errorf("config: update_fraction: %w", err)
	}
	if c.UpdateFraction > 0 && c.RetainedFraction != 1 {
		return fmt.Errorf("%w: config: retained_fraction and update_fraction are exclusive",
			reach.ErrInvalidConfiguration)
	}
	if c.QueryBound < 0 {
		return fmt.Errorf("%w: config: query_bound %d < 0", reach.ErrInvalidConfiguration, c.QueryBound)
	}
	switch c.LogFormat {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("%w: config: unknown log_format %q", reach.ErrInvalidConfiguration, c.LogFormat)
	}
	return nil
}

// IndexMode returns the parsed mode; valid after Validate.
func (c *Config) IndexMode() index.Mode { return c.mode }

// HopSemantics returns the parsed hop semantics; valid after Validate.
func (c *Config) HopSemantics() reach.Semantics { return c.semantics }

// Policy returns the parsed malformed-record policy; valid after Validate.
func (c *Config) Policy() reach.MalformedPolicy { return c.policy }

// ConstructFraction is the fraction of the timeline indexed by Construct:
// 1-update_fraction in update experiments, retained_fraction otherwise.
func (c *Config) ConstructFraction() float64 {
	if c.UpdateFraction > 0 {
		return 1 - c.UpdateFraction
	}
	return c.RetainedFraction
}
