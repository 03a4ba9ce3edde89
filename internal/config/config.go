// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/juju/loggo/v2"
	"gopkg.in/yaml.v3"

	"github.com/rutvij26/omnistudio/internal/record"
)

var logger = loggo.GetLogger("omnistudio.config")

const (
	DefaultExportDir   = "./exports"
	DefaultOutputTitle = "Salesforce CLI Output"
)

type Config struct {
	// CLI is the Salesforce CLI executable, "sfdx" unless overridden.
	CLI          string `yaml:"cli"`
	ExportDir    string `yaml:"export_dir"`
	DefaultAlias string `yaml:"default_alias"`
	OutputTitle  string `yaml:"output_title"`
}

func Default() *Config {
	return &Config{
		CLI:         record.DefaultCLI,
		ExportDir:   DefaultExportDir,
		OutputTitle: DefaultOutputTitle,
	}
}

// DefaultPath returns the config file location, honouring OMNISTUDIO_CONFIG.
func DefaultPath() string {
	if p := os.Getenv("OMNISTUDIO_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".omnistudio", "config.yaml")
}

func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("invalid config YAML: %w", err)
	}
	c.fillDefaults()
	return c, nil
}

// Load reads path and applies environment overrides. A missing file is not an
// error and yields the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if c, err = Parse(data); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", path, err)
			}
			logger.Debugf("loaded config from %s", path)
		case os.IsNotExist(err):
			logger.Debugf("no config at %s, using defaults", path)
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}
	c.applyEnv()
	return c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("OMNISTUDIO_CLI"); v != "" {
		c.CLI = v
	}
	if v := os.Getenv("OMNISTUDIO_EXPORT_DIR"); v != "" {
		c.ExportDir = v
	}
	if v := os.Getenv("OMNISTUDIO_ALIAS"); v != "" {
		c.DefaultAlias = v
	}
}

func (c *Config) fillDefaults() {
	c.CLI = strings.TrimSpace(c.CLI)
	if c.CLI == "" {
		c.CLI = record.DefaultCLI
	}
	if strings.TrimSpace(c.ExportDir) == "" {
		c.ExportDir = DefaultExportDir
	}
	if c.OutputTitle == "" {
		c.OutputTitle = DefaultOutputTitle
	}
	c.DefaultAlias = strings.TrimSpace(c.DefaultAlias)
}
