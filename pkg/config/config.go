//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config loads the editor's settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment variable the editor reads.
const EnvPrefix = "KILO_"

const (
	DefaultConfigFile        = "~/.kilo.yaml"
	DefaultLogFile           = "~/.kilolog"
	DefaultLogLevel          = "info"
	DefaultMessageTimeout    = 5 * time.Second
	DefaultQuitConfirmations = 1
)

// ErrInvalidConfig is returned for configuration values that cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// Duration is a time.Duration written in YAML as a string like "5s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("%w: duration %q on line %d", ErrInvalidConfig, s, value.Line)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Config holds the editor settings.
type Config struct {
	LogFile           string   `yaml:"log_file"`
	LogLevel          string   `yaml:"log_level"`
	MessageTimeout    Duration `yaml:"message_timeout"`
	QuitConfirmations int      `yaml:"quit_confirmations"`
	FormatGo          bool     `yaml:"format_go"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() *Config {
	return &Config{
		LogFile:           DefaultLogFile,
		LogLevel:          DefaultLogLevel,
		MessageTimeout:    Duration(DefaultMessageTimeout),
		QuitConfirmations: DefaultQuitConfirmations,
	}
}

// Load reads the configuration at path over the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(ExpandHome(path))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data into cfg and validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg.Validate()
}

func (c *Config) Validate() error {
	if c.MessageTimeout <= 0 {
		return fmt.Errorf("%w: message_timeout must be positive", ErrInvalidConfig)
	}
	if c.QuitConfirmations < 0 {
		return fmt.Errorf("%w: quit_confirmations must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Timeout returns how long status messages stay visible.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.MessageTimeout)
}

// ApplyEnv overrides settings with KILO_* environment variables.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "LOG_FILE"); ok && v != "" {
		c.LogFile = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvPrefix + "MESSAGE_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %sMESSAGE_TIMEOUT=%q", ErrInvalidConfig, EnvPrefix, v)
		}
		c.MessageTimeout = Duration(d)
	}
	if v, ok := lookup(EnvPrefix + "QUIT_TIMES"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %sQUIT_TIMES=%q", ErrInvalidConfig, EnvPrefix, v)
		}
		c.QuitConfirmations = n
	}
	if v, ok := lookup(EnvPrefix + "FORMAT_GO"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sFORMAT_GO=%q", ErrInvalidConfig, EnvPrefix, v)
		}
		c.FormatGo = b
	}
	return c.Validate()
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
