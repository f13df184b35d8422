package config

import "time"

// Config is the root application configuration.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Seed    SeedConfig    `yaml:"seed"`
}

// AppConfig holds application identity. Name prefixes every storage key.
type AppConfig struct {
	Name string `yaml:"name" env:"APP_NAME" env-default:"ghibli-scribbles"`
}

// StorageConfig selects and configures the key-value store.
type StorageConfig struct {
	Driver        string `yaml:"driver"         env:"STORAGE_DRIVER"         env-default:"badger"`
	Path          string `yaml:"path"           env:"STORAGE_PATH"           env-default:"data/scribbles"`
	SyncWrites    bool   `yaml:"sync_writes"    env:"STORAGE_SYNC_WRITES"`
	RedisAddr     string `yaml:"redis_addr"     env:"STORAGE_REDIS_ADDR"     env-default:"localhost:6379"`
	RedisPassword string `yaml:"redis_password" env:"STORAGE_REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db"       env:"STORAGE_REDIS_DB"       env-default:"0"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"             env:"SERVER_ADDR"             env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// SeedConfig controls demo content on startup.
type SeedConfig struct {
	Enabled bool `yaml:"enabled" env:"SEED_ENABLED"`
}

// defaults returns the values of fields whose default is true. cleanenv treats
// false as unset and would apply an env-default over an explicit false.
func defaults() Config {
	return Config{
		Storage: StorageConfig{SyncWrites: true},
		Seed:    SeedConfig{Enabled: true},
	}
}

// Storage drivers.
const (
	DriverBadger = "badger"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)
