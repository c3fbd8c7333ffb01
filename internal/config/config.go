package config

import (
	"fmt"
	"os"
	"time"

	"github.com/DanRulev/kotoba.git/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig     `mapstructure:"app" validate:"required"`
	Host     string        `mapstructure:"host" validate:"oneof=telegram http tui"`
	BotToken string        `mapstructure:"bot_token" validate:"required_if=Host telegram"`
	HTTP     HTTPConfig    `mapstructure:"http"`
	Session  SessionConfig `mapstructure:"session"`
	Dataset  DatasetConfig `mapstructure:"dataset"`
	DB       DBConfig      `mapstructure:"db"`
	Env      string        `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type HTTPConfig struct {
	Addr           string   `mapstructure:"addr"`
	GinMode        string   `mapstructure:"gin_mode" validate:"omitempty,oneof=debug release test"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type SessionConfig struct {
	TTL           time.Duration `mapstructure:"ttl" validate:"min=0"`
	SweepInterval time.Duration `mapstructure:"sweep_interval" validate:"min=0"`
}

type DatasetConfig struct {
	Source string `mapstructure:"source" validate:"oneof=builtin db"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver" validate:"omitempty,oneof=postgres sqlite3"`
	Conn   DBConn `mapstructure:"conn"`
	Cfg    DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      string `mapstructure:"ssl" validate:"omitempty,oneof=disable require verify-full"`
	Path     string `mapstructure:"path"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=0,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

var envBindings = map[string]string{
	"host":                 "HOST",
	"env":                  "ENV",
	"bot_token":            "BOT_TOKEN",
	"http.addr":            "HTTP_ADDR",
	"dataset.source":       "DATASET_SOURCE",
	"db.driver":            "DB_DRIVER",
	"db.conn.host":         "DB_HOST",
	"db.conn.port":         "DB_PORT",
	"db.conn.user":         "DB_USER",
	"db.conn.password":     "DB_PASSWORD",
	"db.conn.name":         "DB_NAME",
	"db.conn.ssl":          "DB_SSL",
	"db.conn.path":         "DB_PATH",
	"session.ttl":          "SESSION_TTL",
	"http.allowed_origins": "ALLOWED_ORIGINS",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("host", "tui")
	v.SetDefault("app.timeout", 5*time.Second)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.gin_mode", "release")
	v.SetDefault("session.ttl", 2*time.Hour)
	v.SetDefault("session.sweep_interval", 10*time.Minute)
	v.SetDefault("dataset.source", "builtin")
	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.conn.ssl", "disable")
	v.SetDefault("db.cfg.max_open_conns", 4)
	v.SetDefault("db.cfg.max_idle_conns", 2)
}

// Init loads an optional .env file, then configs/<CONFIG_NAME>.yaml, then the
// environment. A missing config file is not an error.
func Init() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	if cfg.Dataset.Source == "db" {
		if err := validateDB(cfg.DB); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

func validateDB(db DBConfig) error {
	switch db.Driver {
	case "sqlite3":
		if db.Conn.Path == "" {
			return fmt.Errorf("validation failed: db.conn.path is required for sqlite3")
		}
	default:
		if db.Conn.Host == "" || db.Conn.Port == "" || db.Conn.Name == "" || db.Conn.User == "" {
			return fmt.Errorf("validation failed: db.conn host, port, name and user are required for postgres")
		}
	}
	return nil
}
