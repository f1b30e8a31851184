package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	ModelPath string

	GeocodeBaseURL      string
	GeocodeTimeoutSecs  int
	GeocodeCacheTTLSecs int

	IdempTTLSecs int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	// best-effort; real env vars win over .env entries
	_ = godotenv.Load()

	return &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "trustchain"),
		MySQLUser: getenv("MYSQL_USER", "trustchain"),
		MySQLPass: getenv("MYSQL_PASS", "trustchain"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		ModelPath: getenv("MODEL_PATH", "models/credit_model.json"),

		GeocodeBaseURL:      getenv("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeocodeTimeoutSecs:  getenvInt("GEOCODE_TIMEOUT_SECONDS", 3),
		GeocodeCacheTTLSecs: getenvInt("GEOCODE_CACHE_TTL_SECONDS", 86400),

		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.ModelPath == "" {
		return errors.New("missing MODEL_PATH")
	}
	if c.GeocodeTimeoutSecs <= 0 {
		return errors.New("GEOCODE_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
