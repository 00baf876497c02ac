package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	InputFile     string `mapstructure:"input_file" yaml:"input_file"`
	Delimiter     string `mapstructure:"delimiter" yaml:"delimiter"`
	OutputDir     string `mapstructure:"output_dir" yaml:"output_dir"`
	HistogramBins int    `mapstructure:"histogram_bins" yaml:"histogram_bins"`
	SampleRows    int    `mapstructure:"sample_rows" yaml:"sample_rows"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.bankscope/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".bankscope")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("BANKSCOPE")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("input_file", "bank-additional-full.csv")
	v.SetDefault("delimiter", ";")
	v.SetDefault("output_dir", "charts")
	v.SetDefault("histogram_bins", 30)
	v.SetDefault("sample_rows", 5)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".bankscope")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// DelimiterRune converts the configured delimiter string to a rune.
// An empty or unknown value falls back to the dataset's native semicolon.
func (c *Global) DelimiterRune() rune {
	switch c.Delimiter {
	case ",":
		return ','
	case "\t", "tab":
		return '\t'
	default:
		return ';'
	}
}
