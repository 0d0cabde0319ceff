// Package dsn provides Data Source Name and dialector construction for
// database connections.
package dsn

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
)

// Create builds the Data Source Name from the configuration.
func Create(cfg *config.Config) string {
	if cfg.DB.Engine == config.DBEngineSQLite {
		return cfg.DB.File
	}

	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Name,
		cfg.DB.Extras,
	)

	return out
}

// Dialector returns the gorm dialector matching the configured engine.
func Dialector(cfg *config.Config) gorm.Dialector {
	if cfg.DB.Engine == config.DBEngineMySQL {
		return mysql.Open(Create(cfg))
	}

	return sqlite.Open(Create(cfg))
}
