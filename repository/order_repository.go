package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// POST /orders → order plus its line-item snapshots in one transaction
func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	return r.DB.WithContext(ctx).Create(o).Error
}

func (r *OrderRepository) Get(ctx context.Context, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.WithContext(ctx).Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// List returns orders newest first, optionally restricted to [from, to).
func (r *OrderRepository) List(ctx context.Context, from, to *time.Time) ([]entity.Order, error) {
	db := r.DB.WithContext(ctx).Preload("Items")
	if from != nil {
		db = db.Where("created_at >= ?", *from)
	}
	if to != nil {
		db = db.Where("created_at < ?", *to)
	}
	var orders []entity.Order
	err := db.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard applies the transition only while the order is still in
// fromStatus; RowsAffected 0 means the order moved under us (or is gone).
func (r *OrderRepository) UpdateStatusGuard(ctx context.Context, orderID uint, fromStatus, toStatus string) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, fromStatus).
		Update("status", toStatus)
	return res.RowsAffected, res.Error
}

// ---------------- Dashboard counters ----------------

func (r *OrderRepository) CountAll(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).Model(&entity.Order{}).Count(&cnt).Error
	return cnt, err
}

func (r *OrderRepository) CountByStatuses(ctx context.Context, statuses []string) (int64, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Where("status IN ?", statuses).
		Count(&cnt).Error
	return cnt, err
}
