package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/apexflow/apexflow/internal/domain"
	"github.com/apexflow/apexflow/internal/repository"
)

var (
	ErrItemSKUExists = repository.ErrItemSKUExists
	ErrItemNotFound  = repository.ErrItemNotFound
)

type InventoryItemRepository interface {
	Create(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error)
	FindAll(ctx context.Context) ([]domain.InventoryItem, error)
	FindBySKU(ctx context.Context, sku string) (domain.InventoryItem, error)
	AdjustQuantity(ctx context.Context, id uint, delta int) (domain.InventoryItem, error)
}

type InventoryService struct {
	repo InventoryItemRepository
}

func NewInventoryService(repo InventoryItemRepository) *InventoryService {
	return &InventoryService{
		repo: repo,
	}
}

func (s *InventoryService) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return items, nil
}

// CreateItem registers a new SKU. The FindBySKU pre-check gives a friendly
// error on the common path, but the unique index on sku is what actually
// enforces uniqueness: a concurrent create that slips past the pre-check
// still comes back as ErrItemSKUExists from the insert.
func (s *InventoryService) CreateItem(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	_, err := s.repo.FindBySKU(ctx, item.SKU)
	if err == nil {
		return domain.InventoryItem{}, ErrItemSKUExists
	}
	if !errors.Is(err, repository.ErrItemNotFound) {
		return domain.InventoryItem{}, fmt.Errorf("s.repo.FindBySKU -> %w", err)
	}

	if item.Status == "" {
		item.Status = domain.StatusInStock
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, repository.ErrItemSKUExists) {
			return domain.InventoryItem{}, ErrItemSKUExists
		}

		return domain.InventoryItem{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// AdjustQuantity applies a signed delta through the storage layer's atomic
// increment. The result may go negative; no clamping is applied.
func (s *InventoryService) AdjustQuantity(ctx context.Context, id uint, delta int) (domain.InventoryItem, error) {
	updated, err := s.repo.AdjustQuantity(ctx, id, delta)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return domain.InventoryItem{}, ErrItemNotFound
		}

		return domain.InventoryItem{}, fmt.Errorf("s.repo.AdjustQuantity -> %w", err)
	}

	return updated, nil
}
