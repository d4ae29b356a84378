package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/entity"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// GET /customer-session/check/:tableNumber
func (r *SessionRepository) FindActive(ctx context.Context, tableNumber string) (*entity.CustomerSession, error) {
	var s entity.CustomerSession
	err := r.DB.WithContext(ctx).
		Where("table_number = ? AND active = ?", tableNumber, true).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateIfVacant inserts the session only if no active session exists for the
// table, in a single statement, so two concurrent requests for the same table
// cannot both pass a separate check. The partial unique index on
// (table_number) WHERE active backstops the loser with a duplicate-key error,
// which is reported the same way as losing the NOT EXISTS race.
func (r *SessionRepository) CreateIfVacant(ctx context.Context, s *entity.CustomerSession) (bool, error) {
	now := time.Now()
	res := r.DB.WithContext(ctx).Exec(
		`INSERT INTO customer_sessions
		   (created_at, updated_at, table_number, customer_name, number_of_people, active, start_time)
		 SELECT ?, ?, ?, ?, ?, ?, ?
		 WHERE NOT EXISTS (
		   SELECT 1 FROM customer_sessions
		   WHERE table_number = ? AND active = ? AND deleted_at IS NULL
		 )`,
		now, now, s.TableNumber, s.CustomerName, s.NumberOfPeople, true, now,
		s.TableNumber, true,
	)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	created, err := r.FindActive(ctx, s.TableNumber)
	if err != nil {
		return false, err
	}
	*s = *created
	return true, nil
}

// CloseActive flips the active flag off; returns rows affected so the caller
// can distinguish "closed" from "no active session".
func (r *SessionRepository) CloseActive(ctx context.Context, tableNumber string) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&entity.CustomerSession{}).
		Where("table_number = ? AND active = ?", tableNumber, true).
		Update("active", false)
	return res.RowsAffected, res.Error
}

// HasActive is the lightweight existence probe used by order placement.
func (r *SessionRepository) HasActive(ctx context.Context, tableNumber string) (bool, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).Model(&entity.CustomerSession{}).
		Where("table_number = ? AND active = ?", tableNumber, true).
		Count(&cnt).Error
	return cnt > 0, err
}
