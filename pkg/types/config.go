// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RunnerConfig holds settings for evaluating case files.
type RunnerConfig struct {
	// Workers bounds how many case evaluations run at once (default 4).
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers"`

	// FailFast stops the run at the first failing case.
	FailFast bool `json:"fail_fast" yaml:"fail_fast" mapstructure:"fail_fast"`
}

// HistoryConfig holds settings for the run history database.
type HistoryConfig struct {
	// HistoryDir is the directory holding runs.db.
	HistoryDir string `json:"history_dir" yaml:"history_dir" mapstructure:"history_dir"`

	// MaxResults is the default number of runs returned by queries (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// Config groups all settings read from solutions.yaml.
type Config struct {
	Runner  RunnerConfig  `json:"runner" yaml:"runner" mapstructure:"runner"`
	History HistoryConfig `json:"history" yaml:"history" mapstructure:"history"`

	// Record stores every solve and case evaluation in the history database.
	Record bool `json:"record" yaml:"record" mapstructure:"record"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Runner: RunnerConfig{
			Workers: 4,
		},
		History: HistoryConfig{
			HistoryDir: "history",
			MaxResults: 20,
		},
	}
}
