// Package config lee la configuración del proceso desde variables de entorno
// y, opcionalmente, desde un archivo apuntado por CONFIG_FILE.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	AppName  string
	HTTPAddr string

	// DBDSN vacío = store en memoria.
	DBDSN     string
	DBMigrate bool

	// RedisURL vacío = blacklist de refresh tokens en memoria.
	RedisURL string

	JWTSecret     string
	JWTAccessTTL  time.Duration
	JWTRefreshTTL time.Duration
	BcryptCost    int

	LogLevel  string
	LogFormat string
}

func defaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "pet-health-record")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("DB_MIGRATE", true)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ACCESS_TTL", 5*time.Minute)
	v.SetDefault("JWT_REFRESH_TTL", 24*time.Hour)
	v.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
}

// Load usa el viper global, igual que el resto de los binarios.
func Load() (Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom permite tests con un *viper.Viper aislado.
func LoadFrom(v *viper.Viper) (Config, error) {
	defaults(v)
	v.AutomaticEnv()

	if file := strings.TrimSpace(v.GetString("CONFIG_FILE")); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	cfg := Config{
		AppName:       v.GetString("APP_NAME"),
		HTTPAddr:      v.GetString("HTTP_ADDR"),
		DBDSN:         v.GetString("DB_DSN"),
		DBMigrate:     v.GetBool("DB_MIGRATE"),
		RedisURL:      v.GetString("REDIS_URL"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		JWTAccessTTL:  v.GetDuration("JWT_ACCESS_TTL"),
		JWTRefreshTTL: v.GetDuration("JWT_REFRESH_TTL"),
		BcryptCost:    v.GetInt("BCRYPT_COST"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		LogFormat:     v.GetString("LOG_FORMAT"),
	}

	// PORT (estilo PaaS) pisa HTTP_ADDR.
	if port := strings.TrimSpace(v.GetString("PORT")); port != "" {
		cfg.HTTPAddr = ":" + port
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	var errs []error
	if strings.TrimSpace(c.JWTSecret) == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.JWTAccessTTL <= 0 {
		errs = append(errs, errors.New("JWT_ACCESS_TTL must be positive"))
	}
	if c.JWTRefreshTTL <= 0 {
		errs = append(errs, errors.New("JWT_REFRESH_TTL must be positive"))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
