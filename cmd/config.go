package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers accepted in STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	StoreDriver    string
	AuthJWTSecret  string
	LogLevel       string
	LogFormat      string
	StatsSchedule  string
	MigrateOnStart bool
	CORSOrigins    []string
}

// LoadConfig reads an optional .env file and then the environment.
// Environment variables win over .env entries, .env entries over defaults.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// godotenv.Load never overrides variables that are already set.
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.SetDefault("http_port", "8082")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "fleetdispatch")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("store_driver", StoreDriverPostgres)
	v.SetDefault("auth_jwt_secret", "")
	v.SetDefault("log_level", "INFO")
	v.SetDefault("log_format", "json")
	v.SetDefault("stats_schedule", "*/30 * * * * *")
	v.SetDefault("migrate_on_start", false)
	v.SetDefault("cors_origins", "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := Config{
		HTTPPort:       v.GetString("http_port"),
		DBHost:         v.GetString("db_host"),
		DBPort:         v.GetString("db_port"),
		DBUser:         v.GetString("db_user"),
		DBPassword:     v.GetString("db_password"),
		DBName:         v.GetString("db_name"),
		DBSslMode:      v.GetString("db_sslmode"),
		StoreDriver:    strings.ToLower(v.GetString("store_driver")),
		AuthJWTSecret:  v.GetString("auth_jwt_secret"),
		LogLevel:       v.GetString("log_level"),
		LogFormat:      v.GetString("log_format"),
		StatsSchedule:  v.GetString("stats_schedule"),
		MigrateOnStart: v.GetBool("migrate_on_start"),
		CORSOrigins:    splitList(v.GetString("cors_origins")),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that have no usable fallback.
func (c Config) Validate() error {
	var errs []error
	if c.HTTPPort == "" {
		errs = append(errs, errors.New("HTTP_PORT must not be empty"))
	}
	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DBHost == "" || c.DBName == "" {
			errs = append(errs, errors.New("DB_HOST and DB_NAME are required for the postgres store"))
		}
	case StoreDriverMemory:
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER %q is not one of postgres, memory", c.StoreDriver))
	}
	return errors.Join(errs...)
}

// DSN returns the postgres connection URL.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
