package configs

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) error {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBSource)
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}

	// TranslateError lets callers match duplicate-key violations with
	// errors.Is(err, gorm.ErrDuplicatedKey) on both drivers.
	database, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	db = database
	return nil
}

func SetupDatabase() error {
	if err := db.AutoMigrate(
		&entity.CustomerSession{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Staff{}, &entity.Attendance{},
		&entity.Admin{},
	); err != nil {
		return err
	}

	// One active session per table. AutoMigrate cannot express a partial
	// index, so it is created raw; same syntax on sqlite and postgres.
	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_sessions_table_active
		 ON customer_sessions (table_number)
		 WHERE active AND deleted_at IS NULL`,
	).Error; err != nil {
		return err
	}

	// Staff emails are unique among live rows only, so a removed staff
	// member's address can be registered again.
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_staff_email_live
		 ON staff (email)
		 WHERE deleted_at IS NULL`,
	).Error
}

// Close releases the underlying connection pool on shutdown.
func Close() error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
