package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the site binary reads from the environment.
type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`
	Port   string `envconfig:"PORT" default:"8080"`

	// DatabaseURL switches the content backends from the seeded
	// in-memory stores to postgres when set.
	DatabaseURL string `envconfig:"DATABASE_URL"`

	JWTSecret         string `envconfig:"JWT_SECRET"`
	AdminEmail        string `envconfig:"ADMIN_EMAIL"`
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH"`

	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"false"`
	MetricsToken   string `envconfig:"METRICS_TOKEN"`

	ContactRateLimit  int           `envconfig:"CONTACT_RATE_LIMIT" default:"5"`
	ContactRateWindow time.Duration `envconfig:"CONTACT_RATE_WINDOW" default:"1m"`
}

const minJWTSecretLen = 32

func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("process config: %w", err)
	}
	return c, nil
}

// AdminEnabled reports whether the admin surface can be mounted: it
// needs a strong token secret and an operator credential pair.
func (c Config) AdminEnabled() bool {
	return len(c.JWTSecret) >= minJWTSecretLen && c.AdminEmail != "" && c.AdminPasswordHash != ""
}
