package config

import "github.com/ziadkadry99/demolink/internal/hostaddr"

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".demolink.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BindAddress:     "",
		Port:            8080,
		HostMode:        hostaddr.ModeStatic,
		Host:            hostaddr.DefaultHost,
		AllowAllOrigins: false,
		LogLevel:        "info",
		LogFormat:       LogFormatText,
		ShutdownTimeout: 10,
	}
}
