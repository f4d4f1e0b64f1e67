package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/apexflow/apexflow/internal/config"
)

// OpenPostgres opens the shared gorm connection pool from discrete settings.
// It is called once at process start; the returned *gorm.DB is injected into
// every DAO rather than re-opened per request.
func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v",
		conf.Host, conf.Port, conf.User, conf.Password, conf.DB,
	)

	return OpenPostgresWithURL(dsn)
}

// OpenPostgresWithURL opens the pool from a single connection string, which
// is how managed platforms hand out DATABASE_URL.
func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	return database, nil
}
