package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the catalog service reads from its environment.
type Config struct {
	Port           string
	Environment    string
	RequireDB      bool
	AllowedOrigins []string
	RequestTimeout time.Duration

	DB DBConfig
}

// DBConfig describes how to reach MySQL and how large the pool may grow.
type DBConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Timeout         time.Duration
}

// Environment keys.
const (
	KeyPort             = "PORT"
	KeyEnvironment      = "APP_ENV"
	KeyRequireDB        = "REQUIRE_DB"
	KeyAllowedOrigins   = "ALLOWED_ORIGINS"
	KeyRequestTimeout   = "REQUEST_TIMEOUT"
	KeyDBHost           = "DB_HOST"
	KeyDBPort           = "DB_PORT"
	KeyDBUser           = "DB_USER"
	KeyDBPassword       = "DB_PASSWORD"
	KeyDBName           = "DB_NAME"
	KeyDBMaxOpenConns   = "DB_MAX_OPEN_CONNS"
	KeyDBMaxIdleConns   = "DB_MAX_IDLE_CONNS"
	KeyDBConnMaxLife    = "DB_CONN_MAX_LIFETIME"
	KeyDBTimeout        = "DB_TIMEOUT"
	KeyStorefrontAPIURL = "STOREFRONT_API_URL"
)

// LoadDotEnv loads a .env file from the working directory if one exists.
// A missing file is not an error: the process falls back to the real environment.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}
}

// New returns a viper instance with defaults registered and the environment bound.
// Callers may bind cobra flags on top of it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(KeyPort, "3000")
	v.SetDefault(KeyEnvironment, "development")
	v.SetDefault(KeyRequireDB, false)
	v.SetDefault(KeyAllowedOrigins, "")
	v.SetDefault(KeyRequestTimeout, 5*time.Second)

	v.SetDefault(KeyDBHost, "localhost")
	v.SetDefault(KeyDBPort, 3306)
	v.SetDefault(KeyDBUser, "root")
	v.SetDefault(KeyDBPassword, "")
	v.SetDefault(KeyDBName, "ecommerce")
	v.SetDefault(KeyDBMaxOpenConns, 10)
	v.SetDefault(KeyDBMaxIdleConns, 10)
	v.SetDefault(KeyDBConnMaxLife, 5*time.Minute)
	v.SetDefault(KeyDBTimeout, 10*time.Second)

	v.SetDefault(KeyStorefrontAPIURL, "http://localhost:3000")
	return v
}

// Load materializes a Config from v.
func Load(v *viper.Viper) Config {
	return Config{
		Port:           v.GetString(KeyPort),
		Environment:    v.GetString(KeyEnvironment),
		RequireDB:      v.GetBool(KeyRequireDB),
		AllowedOrigins: ParseOrigins(v.GetString(KeyAllowedOrigins)),
		RequestTimeout: v.GetDuration(KeyRequestTimeout),
		DB: DBConfig{
			Host:            v.GetString(KeyDBHost),
			Port:            v.GetInt(KeyDBPort),
			User:            v.GetString(KeyDBUser),
			Password:        v.GetString(KeyDBPassword),
			Name:            v.GetString(KeyDBName),
			MaxOpenConns:    v.GetInt(KeyDBMaxOpenConns),
			MaxIdleConns:    v.GetInt(KeyDBMaxIdleConns),
			ConnMaxLifetime: v.GetDuration(KeyDBConnMaxLife),
			Timeout:         v.GetDuration(KeyDBTimeout),
		},
	}
}

// ParseOrigins splits a comma separated origin list.
// An empty value or a bare "*" yields nil, which means any origin is allowed.
func ParseOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if o == "*" {
			return nil
		}
		origins = append(origins, o)
	}
	return origins
}

// IsDevelopment reports whether the service runs with a development label.
func (c Config) IsDevelopment() bool {
	return c.Environment == "" || strings.EqualFold(c.Environment, "development")
}
