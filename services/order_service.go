package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/entity"
	"github.com/Bhupesh2sharma/PRoject-Rapidine/repository"
)

type OrderService struct {
	Repo        *repository.OrderRepository
	SessionRepo *repository.SessionRepository
	MenuRepo    *repository.MenuRepository
	StaffRepo   *repository.StaffRepository
}

func NewOrderService(
	repo *repository.OrderRepository,
	sessionRepo *repository.SessionRepository,
	menuRepo *repository.MenuRepository,
	staffRepo *repository.StaffRepository,
) *OrderService {
	return &OrderService{Repo: repo, SessionRepo: sessionRepo, MenuRepo: menuRepo, StaffRepo: staffRepo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
}

type CreateOrderReq struct {
	TableNumber  string        `json:"tableNumber" binding:"required"`
	CustomerName string        `json:"customerName" binding:"required"`
	Items        []OrderItemIn `json:"items" binding:"required,min=1"`
	Total        float64       `json:"total"`
}

// Create places an order for a seated table. The submitted total is never
// trusted: it must match the sum recomputed from the line items.
func (s *OrderService) Create(ctx context.Context, req *CreateOrderReq) (*entity.Order, error) {
	tableNumber := strings.TrimSpace(req.TableNumber)
	customerName := strings.TrimSpace(req.CustomerName)
	if tableNumber == "" || customerName == "" {
		return nil, validationf("tableNumber and customerName are required")
	}
	if len(req.Items) == 0 {
		return nil, validationf("items is required")
	}

	var sum float64
	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			return nil, validationf("item name is required")
		}
		if it.Price < 0 {
			return nil, validationf("item price must not be negative")
		}
		if it.Quantity < 1 {
			return nil, validationf("item quantity must be at least 1")
		}
		sum += it.Price * float64(it.Quantity)
		items = append(items, entity.OrderItem{Name: name, Price: it.Price, Quantity: it.Quantity})
	}
	if math.Abs(sum-req.Total) > 0.005 {
		return nil, ErrTotalMismatch
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	active, err := s.SessionRepo.HasActive(ctx, tableNumber)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, ErrNoActiveSession
	}

	order := &entity.Order{
		TableNumber:  tableNumber,
		CustomerName: customerName,
		Status:       entity.OrderStatusPending,
		Total:        sum,
		Items:        items,
	}
	if err := s.Repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// List returns orders newest first. A date narrows to that calendar day.
func (s *OrderService) List(ctx context.Context, date *time.Time) ([]entity.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	var from, to *time.Time
	if date != nil {
		start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		end := start.Add(24 * time.Hour)
		from, to = &start, &end
	}
	return s.Repo.List(ctx, from, to)
}

// UpdateStatus advances the lifecycle. The write is guarded on the status the
// order held when we read it, so concurrent updates cannot skip states.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, newStatus string) (*entity.Order, error) {
	if !entity.ValidOrderStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	order, err := s.Repo.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !transitionAllowed(order.Status, newStatus) {
		return nil, ErrInvalidTransition
	}

	affected, err := s.Repo.UpdateStatusGuard(ctx, orderID, order.Status, newStatus)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInvalidTransition
	}
	return s.Repo.Get(ctx, orderID)
}

// DashboardStats aggregates the admin landing-page counters.
type DashboardStats struct {
	TotalOrders    int64 `json:"totalOrders"`
	ActiveOrders   int64 `json:"activeOrders"`
	TotalMenuItems int64 `json:"totalMenuItems"`
	TotalStaff     int64 `json:"totalStaff"`
}

func (s *OrderService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	stats := &DashboardStats{}
	var err error
	if stats.TotalOrders, err = s.Repo.CountAll(ctx); err != nil {
		return nil, err
	}
	active := []string{entity.OrderStatusPending, entity.OrderStatusPreparing}
	if stats.ActiveOrders, err = s.Repo.CountByStatuses(ctx, active); err != nil {
		return nil, err
	}
	if stats.TotalMenuItems, err = s.MenuRepo.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.TotalStaff, err = s.StaffRepo.CountAll(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}
