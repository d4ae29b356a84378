package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/entity"
)

type AttendanceRepository struct {
	DB *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

func (r *AttendanceRepository) FindByStaffAndDate(ctx context.Context, staffID uint, date time.Time) (*entity.Attendance, error) {
	var a entity.Attendance
	err := r.DB.WithContext(ctx).
		Where("staff_id = ? AND date = ?", staffID, date).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AttendanceRepository) Create(ctx context.Context, a *entity.Attendance) error {
	return r.DB.WithContext(ctx).Create(a).Error
}

// SetCheckOut closes the record; guarded on check_out still being NULL so a
// double check-out can never overwrite the first timestamp.
func (r *AttendanceRepository) SetCheckOut(ctx context.Context, id uint, t time.Time) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&entity.Attendance{}).
		Where("id = ? AND check_out IS NULL", id).
		Update("check_out", t)
	return res.RowsAffected, res.Error
}

// AttendanceRecord is an attendance row enriched with the staff member's
// name and role, mirroring the populate the dashboard expects.
type AttendanceRecord struct {
	ID        uint       `json:"id"`
	StaffID   uint       `json:"staffId"`
	StaffName string     `json:"staffName"`
	StaffRole string     `json:"staffRole"`
	Date      time.Time  `json:"date"`
	CheckIn   time.Time  `json:"checkIn"`
	CheckOut  *time.Time `json:"checkOut,omitempty"`
	Status    string     `json:"status"`
	Notes     string     `json:"notes,omitempty"`
}

// ListRange joins staff for the name/role columns; newest day first, latest
// check-in first within a day.
func (r *AttendanceRepository) ListRange(ctx context.Context, from, to *time.Time) ([]AttendanceRecord, error) {
	db := r.DB.WithContext(ctx).Table("attendances AS a").
		Select("a.id, a.staff_id, s.name AS staff_name, s.role AS staff_role, a.date, a.check_in, a.check_out, a.status, a.notes").
		Joins("JOIN staff s ON s.id = a.staff_id").
		Where("a.deleted_at IS NULL")
	if from != nil {
		db = db.Where("a.date >= ?", *from)
	}
	if to != nil {
		db = db.Where("a.date < ?", *to)
	}

	var out []AttendanceRecord
	err := db.Order("a.date DESC, a.check_in DESC").Scan(&out).Error
	return out, err
}
