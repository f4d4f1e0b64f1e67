package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/apexflow/apexflow/internal/api"
	"github.com/apexflow/apexflow/internal/config"
	"github.com/apexflow/apexflow/internal/db"
	"github.com/apexflow/apexflow/internal/logger"
	"github.com/apexflow/apexflow/internal/repository/dao"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	// Platform-style env vars win over the config file.
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		conf.API.JWTSigningKey = secret
	}
	if port := os.Getenv("PORT"); port != "" {
		conf.API.Port = port
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to migrate tables -> %w", err)
	}

	if err = dao.Seed(postgresDB); err != nil {
		return fmt.Errorf("failed to seed database -> %w", err)
	}

	if conf.API.JWTSigningKey == "" {
		zap.L().Warn("JWT signing key is not configured; logins will fail until JWT_SECRET is set")
	}

	s := api.NewServer(conf, postgresDB)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
