package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// GET /menu → grouped for display, so sorted by category
func (r *MenuRepository) List(ctx context.Context) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.WithContext(ctx).Order("category ASC, name ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Get(ctx context.Context, id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *MenuRepository) Update(ctx context.Context, id uint, fields map[string]any) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&entity.MenuItem{}, id)
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) CountAll(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).Model(&entity.MenuItem{}).Count(&cnt).Error
	return cnt, err
}
