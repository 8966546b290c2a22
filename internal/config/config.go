package config

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// SurrealConfig holds the connection settings for the hosted data store.
type SurrealConfig struct {
	URL       string `mapstructure:"url"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Namespace string `mapstructure:"namespace"`
	Database  string `mapstructure:"database"`
}

// AdminConfig controls the admin session gate.
type AdminConfig struct {
	Password   string `mapstructure:"password"`
	SessionTTL string `mapstructure:"session_ttl"` // duration string, e.g. "12h"
}

// Config is the top-level configuration structure.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Surreal SurrealConfig `mapstructure:"surreal"`
	Admin   AdminConfig   `mapstructure:"admin"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Surreal.URL == "" {
		c.Surreal.URL = "ws://localhost:8000/rpc"
	}
	if c.Surreal.Username == "" {
		c.Surreal.Username = "root"
	}
	if c.Surreal.Password == "" {
		c.Surreal.Password = "root"
	}
	if c.Surreal.Namespace == "" {
		c.Surreal.Namespace = "vuldb"
	}
	if c.Surreal.Database == "" {
		c.Surreal.Database = "vuldb"
	}
	if c.Admin.Password == "" {
		c.Admin.Password = "admin123"
	}
	if c.Admin.SessionTTL == "" {
		c.Admin.SessionTTL = "12h"
	}
}
