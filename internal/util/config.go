package util

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const ConfigPathEnvVar = "PLANNER_CONFIG"

type Config struct {
	Port           int           `yaml:"port"`
	RequestTimeout time.Duration `yaml:"requestTimeout"`
	Db             DbConfig      `yaml:"db"`
}

type DbConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SslMode  string `yaml:"sslMode"`
	Schema   string `yaml:"schema"`
	PoolSize int    `yaml:"poolSize"`
}

func DefaultConfig() Config {
	return Config{
		Port:           3009,
		RequestTimeout: 10 * time.Second,
		Db: DbConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "secret",
			Database: "postgres",
			SslMode:  "prefer",
			Schema:   "public",
			PoolSize: 3,
		},
	}
}

func (c DbConfig) ToConnectionStr() string {
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%s", c.Host, c.Port),
		Path:   "/" + c.Database,
	}
	q := url.Values{}
	q.Set("sslmode", c.SslMode)
	u.RawQuery = q.Encode()

	return u.String()
}

// LoadConfig layers defaults, the optional yaml file at path (or
// $PLANNER_CONFIG) and environment variables, in that order.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv(ConfigPathEnvVar)
	}
	if path != "" {
		f, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not open config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(f, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	strVars := map[string]*string{
		"host_server":       &cfg.Db.Host,
		"db_server_port":    &cfg.Db.Port,
		"database_name":     &cfg.Db.Database,
		"db_username":       &cfg.Db.User,
		"db_password":       &cfg.Db.Password,
		"ssl_mode":          &cfg.Db.SslMode,
		"PLANNER_DB_SCHEMA": &cfg.Db.Schema,
	}
	for name, dest := range strVars {
		if v, ok := lookup(name); ok {
			*dest = v
		}
	}

	intVars := map[string]*int{
		"PLANNER_PORT":      &cfg.Port,
		"PLANNER_POOL_SIZE": &cfg.Db.PoolSize,
	}
	for name, dest := range intVars {
		if v, ok := lookup(name); ok {
			i, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s %q: %w", name, v, err)
			}
			*dest = i
		}
	}

	if v, ok := lookup("PLANNER_REQUEST_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid PLANNER_REQUEST_TIMEOUT %q: %w", v, err)
		}
		cfg.RequestTimeout = d
	}

	return nil
}

func (c Config) Validate() error {
	if c.Db.PoolSize < 1 {
		return errors.New("db pool size must be at least 1")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	if c.Db.Schema == "" {
		return errors.New("db schema must not be empty")
	}
	return nil
}
