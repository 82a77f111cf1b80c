// Package config loads the receiver configuration from a YAML file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hbouhadji/airglass/session"
)

// Config is the root receiver configuration.
type Config struct {
	Receiver ReceiverConfig `yaml:"receiver"`
	Logging  LoggingConfig  `yaml:"logging"`
	Audio    AudioConfig    `yaml:"audio"`
}

// ReceiverConfig names the receiver and bounds the local port range handed
// to the endpoint allocator.
type ReceiverConfig struct {
	Name      string `yaml:"name"`
	EventPort uint16 `yaml:"event_port"`
	PortMin   uint16 `yaml:"port_min"`
	PortMax   uint16 `yaml:"port_max"`
}

// LoggingConfig selects the log level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// AudioConfig tunes the buffered-audio channel.
type AudioConfig struct {
	BufferSize uint32 `yaml:"buffer_size"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Receiver: ReceiverConfig{
			Name:      "airglass",
			EventPort: 7100,
			PortMin:   7101,
			PortMax:   7200,
		},
		Logging: LoggingConfig{Level: "info"},
		Audio:   AudioConfig{BufferSize: session.DefaultAudioBufferSize},
	}
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Receiver.Name == "" {
		return fmt.Errorf("receiver.name must not be empty")
	}
	if c.Receiver.PortMin > c.Receiver.PortMax {
		return fmt.Errorf("receiver.port_min %d exceeds port_max %d", c.Receiver.PortMin, c.Receiver.PortMax)
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (c LoggingConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", c.Level)
	}
}
