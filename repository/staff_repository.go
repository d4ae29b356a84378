package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/entity"
)

type StaffRepository struct {
	DB *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{DB: db}
}

func (r *StaffRepository) List(ctx context.Context) ([]entity.Staff, error) {
	var staff []entity.Staff
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&staff).Error
	return staff, err
}

// ListByRole backs the /waiters views.
func (r *StaffRepository) ListByRole(ctx context.Context, role string) ([]entity.Staff, error) {
	var staff []entity.Staff
	err := r.DB.WithContext(ctx).
		Where("role = ?", role).
		Order("created_at DESC").
		Find(&staff).Error
	return staff, err
}

func (r *StaffRepository) ListByRoleAndAvailability(ctx context.Context, role, availability string) ([]entity.Staff, error) {
	var staff []entity.Staff
	err := r.DB.WithContext(ctx).
		Where("role = ? AND availability = ?", role, availability).
		Find(&staff).Error
	return staff, err
}

func (r *StaffRepository) Get(ctx context.Context, id uint) (*entity.Staff, error) {
	var s entity.Staff
	if err := r.DB.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// CountByEmail checks email uniqueness; excludeID lets an update keep its own
// address without tripping the check.
func (r *StaffRepository) CountByEmail(ctx context.Context, email string, excludeID uint) (int64, error) {
	db := r.DB.WithContext(ctx).Model(&entity.Staff{}).Where("email = ?", email)
	if excludeID != 0 {
		db = db.Where("id <> ?", excludeID)
	}
	var cnt int64
	err := db.Count(&cnt).Error
	return cnt, err
}

func (r *StaffRepository) Create(ctx context.Context, s *entity.Staff) error {
	return r.DB.WithContext(ctx).Create(s).Error
}

func (r *StaffRepository) Update(ctx context.Context, id uint, fields map[string]any) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&entity.Staff{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *StaffRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&entity.Staff{}, id)
	return res.RowsAffected, res.Error
}

func (r *StaffRepository) CountAll(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).Model(&entity.Staff{}).Count(&cnt).Error
	return cnt, err
}
