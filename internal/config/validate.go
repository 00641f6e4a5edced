package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if err := c.Storage.validate(c.Database); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.Messages.MaxContentLength <= 0 {
		return fmt.Errorf("messages.max_content_length must be > 0 (got %d)", c.Messages.MaxContentLength)
	}
	if c.Messages.RateLimitPerMinute < 0 {
		return fmt.Errorf("messages.rate_limit_per_minute must be >= 0 (got %d)", c.Messages.RateLimitPerMinute)
	}

	if c.Search.MinQueryLength < 1 {
		return fmt.Errorf("search.min_query_length must be >= 1 (got %d)", c.Search.MinQueryLength)
	}
	if c.Search.Limit < 1 || c.Search.Limit > 100 {
		return fmt.Errorf("search.limit must be in [1, 100] (got %d)", c.Search.Limit)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (s *StorageConfig) validate(db DatabaseConfig) error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))

	switch s.Driver {
	case DriverPostgres:
		if db.DSN == "" {
			return fmt.Errorf("database.dsn is required for the %s driver", DriverPostgres)
		}
		if db.MinConns > db.MaxConns {
			return fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)", db.MinConns, db.MaxConns)
		}
	case DriverBadger:
		if !s.InMemory && s.BadgerPath == "" {
			return fmt.Errorf("badger_path is required unless in_memory is set")
		}
	default:
		return fmt.Errorf("unknown driver %q", s.Driver)
	}

	return nil
}
