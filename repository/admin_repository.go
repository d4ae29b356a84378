package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/entity"
)

type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	var a entity.Admin
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id uint) (*entity.Admin, error) {
	var a entity.Admin
	if err := r.DB.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).Model(&entity.Admin{}).
		Where("username = ?", username).
		Count(&cnt).Error
	return cnt, err
}

func (r *AdminRepository) Create(ctx context.Context, a *entity.Admin) error {
	return r.DB.WithContext(ctx).Create(a).Error
}
