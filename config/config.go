package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DataDirName is the per-project directory holding the table store.
const DataDirName = ".conjugator"

// Config holds all configuration for the conjugator.
type Config struct {
	Lexicon     LexiconConfig     `yaml:"lexicon"`
	Conjugation ConjugationConfig `yaml:"conjugation"`
	Output      OutputConfig      `yaml:"output"`
	Cache       CacheConfig       `yaml:"cache"`
	Batch       BatchConfig       `yaml:"batch"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// LexiconConfig selects where the irregular, prefix and concrete tables come from.
type LexiconConfig struct {
	Source        string `yaml:"source"` // "embedded", "files", "store"
	IrregularPath string `yaml:"irregular_path"`
	PrefixPath    string `yaml:"prefix_path"`
	ConcretePath  string `yaml:"concrete_path"`
}

// ConjugationConfig holds the default flags for a conjugation.
type ConjugationConfig struct {
	Perfective bool `yaml:"perfective"`
	Motion     bool `yaml:"motion"`
}

type OutputConfig struct {
	Format string `yaml:"format"` // "table", "json", "yaml"
}

type CacheConfig struct {
	Size int           `yaml:"size"`
	TTL  time.Duration `yaml:"ttl"`
}

// BatchConfig holds word-list batch configuration.
type BatchConfig struct {
	Workers  int      `yaml:"workers"`
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// LoggingConfig holds logging configuration. An empty Path logs to stderr.
type LoggingConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Lexicon: LexiconConfig{
			Source: "embedded",
		},
		Conjugation: ConjugationConfig{
			Perfective: false,
			Motion:     true,
		},
		Output: OutputConfig{
			Format: "table",
		},
		Cache: CacheConfig{
			Size: 256,
			TTL:  10 * time.Minute,
		},
		Batch: BatchConfig{
			Workers:  4,
			Includes: []string{"**/*.txt"},
			Excludes: []string{"**/" + DataDirName + "/**", "**/.git/**"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir looks for conjugator.yaml, then .conjugator/config.yaml.
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "conjugator.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, DataDirName, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// StoreDBPath returns the path to the table store.
func StoreDBPath(dir string) string {
	return filepath.Join(dir, DataDirName, "conjugator.db")
}

func EnsureDataDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, DataDirName), 0755)
}
