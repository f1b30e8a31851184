package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.AppPort != "8080" {
		t.Errorf("AppPort = %q", cfg.AppPort)
	}
	if cfg.MySQLDB != "trustchain" {
		t.Errorf("MySQLDB = %q", cfg.MySQLDB)
	}
	if cfg.ModelPath == "" {
		t.Errorf("ModelPath must have a default")
	}
	if cfg.GeocodeTimeoutSecs <= 0 {
		t.Errorf("GeocodeTimeoutSecs = %d", cfg.GeocodeTimeoutSecs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("GEOCODE_TIMEOUT_SECONDS", "7")

	cfg := Load()
	if cfg.AppPort != "9999" {
		t.Errorf("AppPort = %q", cfg.AppPort)
	}
	if cfg.RedisDB != 3 {
		t.Errorf("RedisDB = %d", cfg.RedisDB)
	}
	if cfg.GeocodeTimeoutSecs != 7 {
		t.Errorf("GeocodeTimeoutSecs = %d", cfg.GeocodeTimeoutSecs)
	}
}

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing mysql host", func(c *Config) { c.MySQLHost = "" }},
		{"bad mysql port", func(c *Config) { c.MySQLPort = "not-a-port" }},
		{"missing app port", func(c *Config) { c.AppPort = "" }},
		{"missing model path", func(c *Config) { c.ModelPath = "" }},
		{"non-positive geocode timeout", func(c *Config) { c.GeocodeTimeoutSecs = 0 }},
	}
	for _, tc := range cases {
		cfg := Load()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestMySQLDSN(t *testing.T) {
	cfg := &Config{
		MySQLHost: "db", MySQLPort: "3306", MySQLDB: "trustchain",
		MySQLUser: "tc", MySQLPass: "secret",
	}
	want := "tc:secret@tcp(db:3306)/trustchain?multiStatements=true&parseTime=true&charset=utf8mb4,utf8"
	if got := cfg.MySQLDSN(); got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
}
