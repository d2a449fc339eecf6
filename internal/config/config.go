package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // встроенная база часовых поясов

	"github.com/spf13/viper"
)

// Ключи конфигурации. Env-переменные получаются заменой "." на "_": db.host -> DB_HOST.
const (
	KeyDBDriver          = "db.driver"
	KeyDBDSN             = "db.dsn"
	KeyDBHost            = "db.host"
	KeyDBPort            = "db.port"
	KeyDBUser            = "db.user"
	KeyDBPassword        = "db.password"
	KeyDBName            = "db.name"
	KeyDBSSLMode         = "db.sslmode"
	KeyDBTimeZone        = "db.timezone"
	KeyDBMaxOpenConns    = "db.max_open_conns"
	KeyDBMaxIdleConns    = "db.max_idle_conns"
	KeyDBConnMaxLifetime = "db.conn_max_lifetime_min"

	KeyHTTPAddr  = "http.addr"
	KeyAdminAddr = "admin.grpc_addr"

	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"

	KeyAppTimeZone         = "app.timezone"
	KeyAutoDefaultCategory = "stores.auto_default_category"
)

// Config: полная конфигурация сервиса.
type Config struct {
	DB DBConfig

	HTTPAddr  string
	AdminAddr string // пустая строка отключает gRPC admin

	LogLevel  string
	LogFormat string

	// Часовой пояс для ISO-8601 local date-time в API.
	TimeZone *time.Location

	AutoDefaultCategory bool
}

// New возвращает viper с дефолтами и привязкой к env.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyDBDriver, DriverPostgres)
	v.SetDefault(KeyDBDSN, "")
	v.SetDefault(KeyDBHost, "postgres")
	v.SetDefault(KeyDBPort, 5432)
	v.SetDefault(KeyDBUser, "notas")
	v.SetDefault(KeyDBPassword, "notas")
	v.SetDefault(KeyDBName, "notas_db")
	v.SetDefault(KeyDBSSLMode, "disable")
	v.SetDefault(KeyDBTimeZone, "UTC")
	v.SetDefault(KeyDBMaxOpenConns, 10)
	v.SetDefault(KeyDBMaxIdleConns, 5)
	v.SetDefault(KeyDBConnMaxLifetime, 30)

	v.SetDefault(KeyHTTPAddr, ":8080")
	v.SetDefault(KeyAdminAddr, ":50051")

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")

	v.SetDefault(KeyAppTimeZone, "America/Sao_Paulo")
	v.SetDefault(KeyAutoDefaultCategory, true)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// ReadFile подмешивает файл конфигурации (yaml/json/toml), если путь задан.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// Load собирает Config из viper и валидирует его.
func Load(v *viper.Viper) (*Config, error) {
	driver := normalizeDriver(v.GetString(KeyDBDriver))
	dsn := v.GetString(KeyDBDSN)
	if driver == DriverSQLite && dsn == "" {
		dsn = "notas.db"
	}

	cfg := &Config{
		DB: DBConfig{
			Driver:          driver,
			DSN:             dsn,
			Host:            v.GetString(KeyDBHost),
			Port:            v.GetInt(KeyDBPort),
			User:            v.GetString(KeyDBUser),
			Password:        v.GetString(KeyDBPassword),
			Name:            v.GetString(KeyDBName),
			SSLMode:         v.GetString(KeyDBSSLMode),
			TimeZone:        v.GetString(KeyDBTimeZone),
			MaxOpenConns:    v.GetInt(KeyDBMaxOpenConns),
			MaxIdleConns:    v.GetInt(KeyDBMaxIdleConns),
			ConnMaxLifeTime: v.GetInt(KeyDBConnMaxLifetime),
		},
		HTTPAddr:            v.GetString(KeyHTTPAddr),
		AdminAddr:           v.GetString(KeyAdminAddr),
		LogLevel:            strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat:           strings.ToLower(v.GetString(KeyLogFormat)),
		AutoDefaultCategory: v.GetBool(KeyAutoDefaultCategory),
	}

	if err := cfg.DB.Validate(); err != nil {
		return nil, err
	}

	// минимальная валидация
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("invalid config: http.addr must not be empty")
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid config: unknown log format %q", cfg.LogFormat)
	}

	loc, err := time.LoadLocation(v.GetString(KeyAppTimeZone))
	if err != nil {
		return nil, fmt.Errorf("invalid config: app.timezone: %w", err)
	}
	cfg.TimeZone = loc

	return cfg, nil
}
