// Package config loads and validates the apidocgen configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/apidocgen/internal/foundation/errors"
	"git.home.luguber.info/inful/apidocgen/internal/router"
)

// DefaultPath is the configuration file looked for when none is given.
const DefaultPath = "apidocgen.yaml"

// Config is the application configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig locates the doc-model files.
type InputConfig struct {
	// Directory is scanned (non-recursively) for *.api.json files.
	Directory string `yaml:"directory"`
}

// OutputConfig shapes the emitted page set.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	// Extension is the page file extension, ".md" when unset.
	Extension string `yaml:"extension,omitempty"`
	// Frontmatter enables a YAML title/uid header on every page.
	Frontmatter bool `yaml:"frontmatter,omitempty"`
	// Newline selects the output newline style: "lf" or "crlf".
	Newline string `yaml:"newline,omitempty"`
}

// LoggingConfig controls slog setup.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Load reads and validates a configuration file. Environment variables in
// the file body are expanded before parsing.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultPath
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read configuration file").
			WithContext("path", configPath).
			Build()
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse configuration file").
			WithContext("path", configPath).
			Build()
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration, used when no config file
// exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Input.Directory == "" {
		c.Input.Directory = "./api"
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "./docs"
	}
	if c.Output.Extension == "" {
		c.Output.Extension = router.DefaultExtension
	}
	c.Output.Newline = string(NormalizeNewline(c.Output.Newline))
	c.Logging.Level = string(NormalizeLogLevel(c.Logging.Level))
	c.Logging.Format = string(NormalizeLogFormat(c.Logging.Format))
}

// Validate rejects configurations the generator cannot run with.
func (c *Config) Validate() error {
	if c.Input.Directory == c.Output.Directory {
		return errors.NewError(errors.CategoryValidation, "input and output directories must differ").
			WithContext("directory", c.Input.Directory).
			Build()
	}
	return nil
}

// NewlineString returns the configured newline sequence.
func (c *Config) NewlineString() string {
	if Newline(c.Output.Newline) == NewlineCRLF {
		return "\r\n"
	}
	return "\n"
}

// defaultConfig is the commented starter configuration written by Init.
const defaultConfig = `# apidocgen configuration

input:
  # Directory scanned for *.api.json doc-model files, one package per file.
  directory: ./api

output:
  # All pages are written below this directory. It is cleared on every run.
  directory: ./docs
  # Page file extension.
  extension: .md
  # Emit a YAML frontmatter header (title, uid) on every page.
  frontmatter: false
  # Newline style: lf or crlf.
  newline: lf

logging:
  # debug, info, warn or error.
  level: info
  # text or json.
  format: text
`

// Init writes the starter configuration file.
func Init(configPath string, force bool) error {
	if configPath == "" {
		configPath = DefaultPath
	}
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.NewError(errors.CategoryConfig,
			fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", configPath)).
			Build()
	}
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write configuration file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}
