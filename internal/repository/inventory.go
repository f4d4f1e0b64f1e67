package repository

import (
	"context"
	"fmt"

	"github.com/apexflow/apexflow/internal/domain"
	"github.com/apexflow/apexflow/internal/repository/dao"
)

var (
	ErrItemSKUExists = dao.ErrItemSKUExists
	ErrItemNotFound  = dao.ErrItemNotFound
)

type InventoryDAO interface {
	Insert(ctx context.Context, item dao.InventoryItem) (dao.InventoryItem, error)
	FindAll(ctx context.Context) ([]dao.InventoryItem, error)
	FindByID(ctx context.Context, id uint) (dao.InventoryItem, error)
	FindBySKU(ctx context.Context, sku string) (dao.InventoryItem, error)
	AdjustQuantity(ctx context.Context, id uint, delta int) (dao.InventoryItem, error)
}

type InventoryRepository struct {
	dao InventoryDAO
}

func NewInventoryRepository(dao InventoryDAO) *InventoryRepository {
	return &InventoryRepository{
		dao: dao,
	}
}

func (r *InventoryRepository) Create(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	created, err := r.dao.Insert(ctx, dao.InventoryItem{
		SKU:      item.SKU,
		Name:     item.Name,
		Quantity: item.Quantity,
		Status:   item.Status,
	})
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *InventoryRepository) FindAll(ctx context.Context) ([]domain.InventoryItem, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	items := make([]domain.InventoryItem, 0, len(found))
	for _, item := range found {
		items = append(items, r.daoToDomain(item))
	}

	return items, nil
}

func (r *InventoryRepository) FindByID(ctx context.Context, id uint) (domain.InventoryItem, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *InventoryRepository) FindBySKU(ctx context.Context, sku string) (domain.InventoryItem, error) {
	found, err := r.dao.FindBySKU(ctx, sku)
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("r.dao.FindBySKU -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *InventoryRepository) AdjustQuantity(ctx context.Context, id uint, delta int) (domain.InventoryItem, error) {
	updated, err := r.dao.AdjustQuantity(ctx, id, delta)
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("r.dao.AdjustQuantity -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *InventoryRepository) daoToDomain(i dao.InventoryItem) domain.InventoryItem {
	return domain.InventoryItem{
		ID:        i.ID,
		SKU:       i.SKU,
		Name:      i.Name,
		Quantity:  i.Quantity,
		Status:    i.Status,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
