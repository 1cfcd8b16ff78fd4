package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be in [4, 31] (got %d)", c.Auth.BcryptCost)
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMinute <= 0 {
			return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
		}
		if c.RateLimit.Burst <= 0 {
			return fmt.Errorf("rate_limit.burst must be > 0 (got %d)", c.RateLimit.Burst)
		}
	}

	return nil
}

func (s *SRSConfig) validate() error {
	if s.MinEaseFactor <= 0 {
		return fmt.Errorf("min_ease_factor must be > 0 (got %v)", s.MinEaseFactor)
	}
	if s.DefaultEaseFactor < s.MinEaseFactor {
		return fmt.Errorf("default_ease_factor must be >= min_ease_factor (got %v < %v)",
			s.DefaultEaseFactor, s.MinEaseFactor)
	}
	if s.DueQueueLimit <= 0 {
		return fmt.Errorf("due_queue_limit must be > 0 (got %d)", s.DueQueueLimit)
	}
	return nil
}
