package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Traffic  TrafficConfig
	Tracker  TrackerConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// TrafficConfig controls the external traffic provider and its cache.
// An empty APIKey puts the deployment in permanent synthetic-data mode.
type TrafficConfig struct {
	APIKey         string
	BaseURL        string
	CacheTTL       time.Duration
	RequestTimeout time.Duration
}

type TrackerConfig struct {
	Enabled       bool
	ConsumerGroup string
	SessionTTL    time.Duration
	APIBaseURL    string
	APITimeout    time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env is optional: environment variables alone are a valid config source
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Traffic: TrafficConfig{
			APIKey:         viper.GetString("TOMTOM_API_KEY"),
			BaseURL:        viper.GetString("TOMTOM_BASE_URL"),
			CacheTTL:       time.Duration(viper.GetInt("TRAFFIC_CACHE_TTL")) * time.Second,
			RequestTimeout: time.Duration(viper.GetInt("TRAFFIC_REQUEST_TIMEOUT")) * time.Second,
		},
		Tracker: TrackerConfig{
			Enabled:       viper.GetBool("TRACKER_ENABLED"),
			ConsumerGroup: viper.GetString("TRACKER_CONSUMER_GROUP"),
			SessionTTL:    time.Duration(viper.GetInt("TRACKER_SESSION_TTL")) * time.Second,
			APIBaseURL:    viper.GetString("PARKING_API_BASE_URL"),
			APITimeout:    time.Duration(viper.GetInt("PARKING_API_TIMEOUT")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Traffic.BaseURL == "" {
		cfg.Traffic.BaseURL = "https://api.tomtom.com"
	}
	if cfg.Traffic.CacheTTL == 0 {
		cfg.Traffic.CacheTTL = 60 * time.Second
	}
	if cfg.Traffic.RequestTimeout == 0 {
		cfg.Traffic.RequestTimeout = 5 * time.Second
	}
	if cfg.Tracker.ConsumerGroup == "" {
		cfg.Tracker.ConsumerGroup = "geofence-trackers"
	}
	if cfg.Tracker.SessionTTL == 0 {
		cfg.Tracker.SessionTTL = 30 * time.Minute
	}
	if cfg.Tracker.APIBaseURL == "" {
		cfg.Tracker.APIBaseURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}
	if cfg.Tracker.APITimeout == 0 {
		cfg.Tracker.APITimeout = 3 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// SyntheticOnly reports whether the deployment has no traffic provider key
// and will serve synthetic traffic data for every access point.
func (c *Config) SyntheticOnly() bool {
	return c.Traffic.APIKey == ""
}
