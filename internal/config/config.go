package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const appName = "promptsmith"

type Config struct {
	OutputDir       string `yaml:"output_dir"`
	DefaultFileName string `yaml:"default_file_name"`
	IncludeMarkers  bool   `yaml:"include_markers"`
	TemplatesDir    string `yaml:"templates_dir"`
	TargetModel     string `yaml:"target_model,omitempty"`

	Parse   ParseConfig   `yaml:"parse"`
	Library LibraryConfig `yaml:"library"`
	Log     LogConfig     `yaml:"log"`
	Preview PreviewConfig `yaml:"preview"`
}

type ParseConfig struct {
	DistributeParagraphs bool `yaml:"distribute_paragraphs"`
	StrictHeadings       bool `yaml:"strict_headings"`
}

type LibraryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

type PreviewConfig struct {
	// Style is a glamour style name: auto, dark, light, notty
	Style    string `yaml:"style"`
	WordWrap int    `yaml:"word_wrap"`
}

func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	dir, _ := ConfigDir()

	return &Config{
		OutputDir:       filepath.Join(home, appName),
		DefaultFileName: "generated_prompt.txt",
		TemplatesDir:    filepath.Join(dir, "templates"),
		TargetModel:     "gpt-4o",
		Library: LibraryConfig{
			Enabled: true,
			Path:    filepath.Join(dir, "library.db"),
		},
		Log: LogConfig{
			Path:  filepath.Join(dir, appName+".log"),
			Level: "info",
		},
		Preview: PreviewConfig{
			Style:    "auto",
			WordWrap: 80,
		},
	}
}

func ConfigDir() (string, error) {
	if dir := os.Getenv("PROMPTSMITH_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the config file on top of the defaults and applies environment
// overrides. A missing file is not an error.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile is Load for an explicit path
func LoadFile(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"PROMPTSMITH_OUTPUT_DIR":    &c.OutputDir,
		"PROMPTSMITH_TEMPLATES_DIR": &c.TemplatesDir,
		"PROMPTSMITH_TARGET_MODEL":  &c.TargetModel,
		"PROMPTSMITH_LIBRARY_PATH":  &c.Library.Path,
		"PROMPTSMITH_LOG_PATH":      &c.Log.Path,
		"PROMPTSMITH_LOG_LEVEL":     &c.Log.Level,
		"PROMPTSMITH_PREVIEW_STYLE": &c.Preview.Style,
	}
	for name, dst := range strs {
		if v, ok := os.LookupEnv(name); ok {
			*dst = v
		}
	}

	bools := map[string]*bool{
		"PROMPTSMITH_INCLUDE_MARKERS": &c.IncludeMarkers,
		"PROMPTSMITH_LIBRARY_ENABLED": &c.Library.Enabled,
	}
	for name, dst := range bools {
		v, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = b
	}
	return nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

// SaveFile writes the config to path, creating its directory
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
