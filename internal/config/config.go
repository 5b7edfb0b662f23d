package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/245124737105-sketch/PolyglotPal/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type Config struct {
	Env        string           `mapstructure:"env" validate:"oneof=development production staging"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Store      StoreConfig      `mapstructure:"store"`
	Translator TranslatorConfig `mapstructure:"translator"`
	Quiz       QuizConfig       `mapstructure:"quiz"`
}

type HTTPConfig struct {
	Addr         string        `mapstructure:"addr" validate:"required"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" validate:"min=0"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"min=0"`
	CORSOrigins  []string      `mapstructure:"cors_origins"`
}

type AuthConfig struct {
	SecretKey    string        `mapstructure:"secret_key" validate:"required,min=16"`
	SessionTTL   time.Duration `mapstructure:"session_ttl" validate:"min=1"`
	CookieName   string        `mapstructure:"cookie_name" validate:"required"`
	CookieSecure bool          `mapstructure:"cookie_secure"`
}

// StoreConfig selects the backend. Only the section of the selected driver is
// validated.
type StoreConfig struct {
	Driver   string      `mapstructure:"driver" validate:"oneof=mongo postgres"`
	Mongo    MongoConfig `mapstructure:"mongo" validate:"-"`
	Postgres DBConfig    `mapstructure:"postgres" validate:"-"`
}

type MongoConfig struct {
	URI      string        `mapstructure:"uri" validate:"required"`
	Database string        `mapstructure:"database" validate:"required"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type DBConfig struct {
	Conn DBConn `mapstructure:"conn"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type TranslatorConfig struct {
	Providers []string      `mapstructure:"providers" validate:"min=1,dive,oneof=google pythonanywhere mymemory"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"min=1"`
	CacheSize int           `mapstructure:"cache_size" validate:"min=0"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl" validate:"min=0"`
}

type QuizConfig struct {
	TranslateTimeout time.Duration `mapstructure:"translate_timeout" validate:"min=1"`
	Timeout          time.Duration `mapstructure:"timeout" validate:"min=1"`
}

var envBindings = map[string]string{
	"env":                          "APP_ENV",
	"http.addr":                    "HTTP_ADDR",
	"auth.secret_key":              "SECRET_KEY",
	"store.driver":                 "STORE_DRIVER",
	"store.mongo.uri":              "MONGO_URI",
	"store.mongo.database":         "MONGO_DATABASE",
	"store.postgres.conn.host":     "DB_HOST",
	"store.postgres.conn.port":     "DB_PORT",
	"store.postgres.conn.user":     "DB_USER",
	"store.postgres.conn.password": "DB_PASSWORD",
	"store.postgres.conn.name":     "DB_NAME",
	"store.postgres.conn.ssl":      "DB_SSL",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")

	v.SetDefault("http.addr", ":5000")
	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 30*time.Second)

	v.SetDefault("auth.session_ttl", 7*24*time.Hour)
	v.SetDefault("auth.cookie_name", "polyglot_session")

	v.SetDefault("store.driver", DriverMongo)
	v.SetDefault("store.mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("store.mongo.database", "polyglotpal")
	v.SetDefault("store.mongo.timeout", 10*time.Second)
	v.SetDefault("store.postgres.conn.ssl", "disable")
	v.SetDefault("store.postgres.cfg.max_open_conns", 10)
	v.SetDefault("store.postgres.cfg.max_idle_conns", 5)
	v.SetDefault("store.postgres.cfg.conn_max_life_time", time.Hour)
	v.SetDefault("store.postgres.cfg.conn_max_idle_time", 10*time.Minute)

	v.SetDefault("translator.providers", []string{"google", "pythonanywhere", "mymemory"})
	v.SetDefault("translator.timeout", 10*time.Second)
	v.SetDefault("translator.cache_size", 2048)
	v.SetDefault("translator.cache_ttl", 24*time.Hour)

	v.SetDefault("quiz.translate_timeout", 5*time.Second)
	v.SetDefault("quiz.timeout", 10*time.Second)
}

// Init loads an optional .env file, then configs/<CONFIG_NAME>.yaml and the
// environment. A missing config file is not an error: defaults and the
// environment are enough to run.
func Init() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

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
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c Config) Validate() error {
	if err := validator.ValidateStruct(c); err != nil {
		return err
	}

	switch c.Store.Driver {
	case DriverMongo:
		return validator.ValidateStruct(c.Store.Mongo)
	case DriverPostgres:
		return validator.ValidateStruct(c.Store.Postgres)
	}
	return nil
}
