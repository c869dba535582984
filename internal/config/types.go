package config

import "github.com/ziadkadry99/demolink/internal/hostaddr"

// LogFormat selects the logrus formatter.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Config is the top-level demolink configuration, corresponding to .demolink.yml.
type Config struct {
	BindAddress     string        `yaml:"bind_address" koanf:"bind_address"`
	Port            int           `yaml:"port" koanf:"port"`
	HostMode        hostaddr.Mode `yaml:"host_mode" koanf:"host_mode"`
	Host            string        `yaml:"host" koanf:"host"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	LogLevel        string        `yaml:"log_level" koanf:"log_level"`
	LogFormat       LogFormat     `yaml:"log_format" koanf:"log_format"`
	ShutdownTimeout int           `yaml:"shutdown_timeout" koanf:"shutdown_timeout"` // seconds
}
