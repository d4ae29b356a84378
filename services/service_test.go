package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/entity"
	"github.com/Bhupesh2sharma/PRoject-Rapidine/repository"
)

// newTestDB opens a per-test in-memory database with the same schema and
// indexes the real connection sets up.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// _busy_timeout goes in the DSN so every pooled connection gets it
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.CustomerSession{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Staff{}, &entity.Attendance{},
		&entity.Admin{},
	))
	require.NoError(t, db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_sessions_table_active
		 ON customer_sessions (table_number)
		 WHERE active AND deleted_at IS NULL`,
	).Error)
	require.NoError(t, db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_staff_email_live
		 ON staff (email)
		 WHERE deleted_at IS NULL`,
	).Error)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newSessionService(t *testing.T, db *gorm.DB) *SessionService {
	t.Helper()
	return NewSessionService(repository.NewSessionRepository(db))
}

func newOrderService(t *testing.T, db *gorm.DB) *OrderService {
	t.Helper()
	return NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewSessionRepository(db),
		repository.NewMenuRepository(db),
		repository.NewStaffRepository(db),
	)
}

func newStaffService(t *testing.T, db *gorm.DB) *StaffService {
	t.Helper()
	return NewStaffService(
		repository.NewStaffRepository(db),
		repository.NewAttendanceRepository(db),
	)
}
