package conf

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the non-secret server settings. Secrets (JWT key, postgres
// password) come from the environment, see GetPgConnStrFromEnv.
type Config struct {
	Address         string   `toml:"address"`
	PublicBaseURL   string   `toml:"public_base_url"`
	CorsOrigins     []string `toml:"cors_origins"`
	UploadDir       string   `toml:"upload_dir"`
	CooldownMinutes int      `toml:"cooldown_minutes"`
}

func Default() Config {
	return Config{
		Address:         ":8080",
		PublicBaseURL:   "http://localhost:8080",
		CorsOrigins:     []string{"http://localhost:3000"},
		UploadDir:       "uploads",
		CooldownMinutes: 5,
	}
}

// Load reads a TOML config file, filling unset fields with defaults.
// A missing file is not an error: defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.CooldownMinutes <= 0 {
		cfg.CooldownMinutes = Default().CooldownMinutes
	}

	return cfg, nil
}

func (c Config) CooldownWindow() time.Duration {
	return time.Duration(c.CooldownMinutes) * time.Minute
}

// GetPgConnStrFromEnv assembles a postgres connection string from the
// POSTGRES_* environment variables.
func GetPgConnStrFromEnv() string {
	host := os.Getenv("POSTGRES_HOST")
	user := os.Getenv("POSTGRES_USER")
	pw := os.Getenv("POSTGRES_PW")
	port := os.Getenv("POSTGRES_PORT")
	db := os.Getenv("POSTGRES_DB")
	ssl := os.Getenv("POSTGRES_SSLMODE")

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pw, db, ssl)
}
