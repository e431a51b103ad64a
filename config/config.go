// Package config holds the dynmst application configuration and loads it
// from TOML files.
package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/dynmst/core"
	"github.com/katalvlaran/dynmst/logutil"
	"github.com/pingcap/errors"
)

// Config contains configuration options.
type Config struct {
	Graph Graph `toml:"graph" json:"graph"`
	Log   Log   `toml:"log" json:"log"`
}

// Graph is the graph store section.
type Graph struct {
	// MaxEdges bounds the number of stored edges.
	MaxEdges int `toml:"max-edges" json:"max-edges"`
	// MaxNodes bounds vertex ids to [0, MaxNodes).
	MaxNodes int `toml:"max-nodes" json:"max-nodes"`
}

// Log is the log section of config.
type Log struct {
	// Log level.
	Level string `toml:"level" json:"level"`
	// Log format, one of text or json.
	Format string `toml:"format" json:"format"`
	// Disable automatic timestamps in output.
	DisableTimestamp bool `toml:"disable-timestamp" json:"disable-timestamp"`
}

var defaultConf = Config{
	Graph: Graph{
		MaxEdges: core.DefaultMaxEdges,
		MaxNodes: core.DefaultMaxNodes,
	},
	Log: Log{
		Level:  logutil.DefaultLogLevel,
		Format: logutil.FormatText,
	},
}

// NewConfig creates a new config instance with default value.
func NewConfig() *Config {
	conf := defaultConf
	return &conf
}

// Load loads config options from a toml file. Keys the file sets override
// the current values; unknown keys are rejected.
func (c *Config) Load(confFile string) error {
	md, err := toml.DecodeFile(confFile, c)
	if err != nil {
		return errors.Trace(err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return errors.Errorf("config file %s contained unknown configuration options: %s",
			confFile, strings.Join(keys, ", "))
	}
	return nil
}

// Valid checks if this config is valid.
func (c *Config) Valid() error {
	if c.Graph.MaxEdges <= 0 {
		return errors.Errorf("graph.max-edges should be positive, got %d", c.Graph.MaxEdges)
	}
	if c.Graph.MaxNodes <= 0 {
		return errors.Errorf("graph.max-nodes should be positive, got %d", c.Graph.MaxNodes)
	}
	return errors.Trace(c.Log.ToLogConfig().Valid())
}

// GraphOptions converts the graph section into core options.
func (c *Config) GraphOptions() []core.GraphOption {
	return []core.GraphOption{
		core.WithMaxEdges(c.Graph.MaxEdges),
		core.WithMaxNodes(c.Graph.MaxNodes),
	}
}

// ToLogConfig converts *Log to *logutil.Config.
func (l *Log) ToLogConfig() *logutil.Config {
	return &logutil.Config{
		Level:            l.Level,
		Format:           l.Format,
		DisableTimestamp: l.DisableTimestamp,
	}
}
