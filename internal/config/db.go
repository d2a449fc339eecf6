package config

import (
	"fmt"
	"strings"
)

// Поддерживаемые драйверы БД.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
)

type DBConfig struct {
	Driver          string
	DSN             string // если задан, используется как есть
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifeTime int // минут
}

// Validate проверяет минимально необходимые поля для выбранного драйвера.
func (c *DBConfig) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.DSN == "" {
			return fmt.Errorf("invalid DB config: sqlite requires dsn")
		}
	case DriverPostgres, DriverMySQL:
		if c.DSN != "" {
			return nil
		}
		if c.Host == "" || c.User == "" || c.Name == "" {
			return fmt.Errorf("invalid DB config: host/user/name must not be empty")
		}
	default:
		return fmt.Errorf("invalid DB config: unknown driver %q", c.Driver)
	}
	return nil
}

// ConnString собирает строку подключения для драйвера.
func (c *DBConfig) ConnString() string {
	if c.DSN != "" {
		return c.DSN
	}
	switch c.Driver {
	case DriverMySQL:
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.User,
			c.Password,
			c.Host,
			c.Port,
			c.Name,
		)
	default:
		return fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
			c.Host,
			c.User,
			c.Password,
			c.Name,
			c.Port,
			c.SSLMode,
			c.TimeZone,
		)
	}
}

func normalizeDriver(d string) string {
	switch strings.ToLower(strings.TrimSpace(d)) {
	case "postgresql", "pg", "postgres":
		return DriverPostgres
	case "sqlite3", "sqlite":
		return DriverSQLite
	case "mariadb", "mysql":
		return DriverMySQL
	default:
		return strings.ToLower(strings.TrimSpace(d))
	}
}
