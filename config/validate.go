package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	c.App.Name = strings.TrimSpace(c.App.Name)
	if c.App.Name == "" {
		return fmt.Errorf("app.name must not be empty")
	}

	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case DriverBadger, DriverSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for driver %q", c.Storage.Driver)
		}
	case DriverRedis:
		if c.Storage.RedisAddr == "" {
			return fmt.Errorf("storage.redis_addr is required for driver %q", c.Storage.Driver)
		}
		if c.Storage.RedisDB < 0 {
			return fmt.Errorf("storage.redis_db must be >= 0 (got %d)", c.Storage.RedisDB)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("storage.driver must be one of badger, sqlite, redis, memory (got %q)", c.Storage.Driver)
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be > 0 (got %v)", c.Server.ShutdownTimeout)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}
