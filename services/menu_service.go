package services

import (
	"context"
	"strings"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/entity"
	"github.com/Bhupesh2sharma/PRoject-Rapidine/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type MenuItemIn struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price"`
	Category    string  `json:"category" binding:"required"`
	Image       string  `json:"image"`
	IsAvailable *bool   `json:"isAvailable"`
}

func (s *MenuService) List(ctx context.Context) ([]entity.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()
	return s.Repo.List(ctx)
}

func (s *MenuService) Create(ctx context.Context, in *MenuItemIn) (*entity.MenuItem, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Description) == "" || strings.TrimSpace(in.Category) == "" {
		return nil, validationf("name, description and category are required")
	}
	if in.Price < 0 {
		return nil, validationf("price must not be negative")
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	item := &entity.MenuItem{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Category:    strings.TrimSpace(in.Category),
		Image:       in.Image,
		IsAvailable: true,
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Update(ctx context.Context, id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if in.Price < 0 {
		return nil, validationf("price must not be negative")
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	fields := map[string]any{
		"name":        strings.TrimSpace(in.Name),
		"description": strings.TrimSpace(in.Description),
		"price":       in.Price,
		"category":    strings.TrimSpace(in.Category),
		"image":       in.Image,
	}
	if in.IsAvailable != nil {
		fields["is_available"] = *in.IsAvailable
	}

	affected, err := s.Repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return s.Repo.Get(ctx, id)
}

func (s *MenuService) Delete(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	affected, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
