package configs

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	API struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"api"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Session struct {
		CookieName string `yaml:"cookie_name"`
		// TTL is parsed from TTLText; yaml has no native duration.
		TTL     time.Duration `yaml:"-"`
		TTLText string        `yaml:"ttl"`
	} `yaml:"session"`
	Consul struct {
		Address        string `yaml:"address"`
		ServiceName    string `yaml:"service_name"`
		ServiceAddress string `yaml:"service_address"`
		ServicePort    int    `yaml:"service_port"`
	} `yaml:"consul"`
}

// LoadConfig reads config.yaml (path overridable via CONFIG_PATH) and then
// applies environment overrides. Missing file is fine; defaults apply.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.Server.Addr = ":4000"
	cfg.API.BaseURL = "http://localhost:8000/api/"
	cfg.Redis.Addr = "localhost:6379"
	cfg.Session.CookieName = "plantonize_session"
	cfg.Session.TTL = 12 * time.Hour

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	if cfg.Session.TTLText != "" {
		ttl, err := time.ParseDuration(cfg.Session.TTLText)
		if err != nil {
			return nil, err
		}
		cfg.Session.TTL = ttl
	}

	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = db
		}
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil {
			cfg.Session.TTL = ttl
		}
	}
	if v := os.Getenv("CONSUL_ADDRESS"); v != "" {
		cfg.Consul.Address = v
	}

	return cfg, nil
}
