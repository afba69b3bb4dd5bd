package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Port     string
	DBDriver string
	DBSource string
	SeedData bool
}

func LoadConfig() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		DBDriver: getEnv("DB_DRIVER", "mysql"),
		DBSource: getEnv("DB_SOURCE", "root:root@tcp(127.0.0.1:3306)/marketplace?charset=utf8mb4&parseTime=True&loc=Local"),
		SeedData: os.Getenv("SEED_DATA") == "true",
	}
}

// InitDB opens the configured database. MySQL for deployments, SQLite
// for local runs without a server.
func InitDB(cfg *Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.DBSource), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
