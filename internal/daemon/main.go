// Package daemon wires the database, object storage and web service together.
package daemon

import (
	"context"

	fiberstorage "github.com/gofiber/storage"
	sessionmysql "github.com/gofiber/storage/mysql"
	sessionsqlite "github.com/gofiber/storage/sqlite3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/dsn"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/models"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/storage"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService web.Service
}

// Start starts the Daemon's web service and blocks until a shutdown signal
// drains it.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(d.cfg)
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db := openDB(cfg)

	seed(cfg, db)

	store := openStore(cfg)

	session.Init(newSessionStorage(cfg))

	return &Daemon{
		cfg:        cfg,
		webService: *web.New(cfg, db, store),
	}
}

// openDB opens the configured database engine and migrates the schema.
// Unique index violations are translated so slug conflicts surface as
// gorm.ErrDuplicatedKey.
func openDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(dsn.Dialector(cfg), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.User{},
		&models.ProfileSetting{},
		&models.Project{},
		&models.Skill{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	return db
}

// openStore builds the configured object store for uploaded images.
func openStore(cfg *config.Config) storage.Store {
	if cfg.Storage.Driver == config.StorageDriverMinio {
		store, err := storage.NewMinioStore(context.Background(), storage.MinioConfig{
			Endpoint:  cfg.Storage.Minio.Endpoint,
			AccessKey: cfg.Storage.Minio.AccessKey,
			SecretKey: cfg.Storage.Minio.SecretKey,
			Bucket:    cfg.Storage.Minio.Bucket,
			UseSSL:    cfg.Storage.Minio.UseSSL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect object storage")
		}

		return store
	}

	store, err := storage.NewDiskStore(cfg.Storage.Disk.Root)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create disk storage")
	}

	return store
}

// newSessionStorage builds the fiber session storage matching the DB engine.
func newSessionStorage(cfg *config.Config) fiberstorage.Storage {
	if cfg.DB.Engine == config.DBEngineMySQL {
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         "sessions",
		})
	}

	return sessionsqlite.New(sessionsqlite.Config{
		Database: sessionDatabase(cfg),
		Table:    "sessions",
	})
}

// sessionDatabase derives the sqlite session database path. An in-memory
// main database gets an in-memory session store, not a literal
// ":memory:-sessions" file on disk.
func sessionDatabase(cfg *config.Config) string {
	if cfg.DB.File == config.DBFileMemory {
		return config.DBFileMemory
	}

	return cfg.DB.File + "-sessions"
}
