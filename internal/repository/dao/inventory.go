package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrItemSKUExists = errors.New("inventory item already exists")
	ErrItemNotFound  = errors.New("inventory item not found")
)

type InventoryItem struct {
	ID uint `gorm:"primaryKey"`

	SKU      string `gorm:"column:sku;unique;not null"`
	Name     string `gorm:"not null"`
	Quantity int    `gorm:"not null;default:0"`
	Status   string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type InventoryDAO struct {
	db *gorm.DB
}

func NewInventoryDAO(db *gorm.DB) *InventoryDAO {
	return &InventoryDAO{
		db: db,
	}
}

// Insert relies on the unique index on sku as the authoritative uniqueness
// check; a constraint violation from the database maps to ErrItemSKUExists
// no matter what any earlier pre-check concluded.
func (d *InventoryDAO) Insert(ctx context.Context, item InventoryItem) (InventoryItem, error) {
	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return InventoryItem{}, ErrItemSKUExists
		}

		return InventoryItem{}, result.Error
	}

	return item, nil
}

func (d *InventoryDAO) FindAll(ctx context.Context) ([]InventoryItem, error) {
	var items []InventoryItem

	result := d.db.WithContext(ctx).Order("id").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

func (d *InventoryDAO) FindByID(ctx context.Context, id uint) (InventoryItem, error) {
	var item InventoryItem

	result := d.db.WithContext(ctx).First(&item, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return InventoryItem{}, ErrItemNotFound
		}

		return InventoryItem{}, result.Error
	}

	return item, nil
}

func (d *InventoryDAO) FindBySKU(ctx context.Context, sku string) (InventoryItem, error) {
	var item InventoryItem

	result := d.db.WithContext(ctx).First(&item, "sku = ?", sku)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return InventoryItem{}, ErrItemNotFound
		}

		return InventoryItem{}, result.Error
	}

	return item, nil
}

// AdjustQuantity applies the delta in a single
// "UPDATE ... SET quantity = quantity + ? ... RETURNING *" statement, so two
// concurrent adjustments both land without a read-modify-write race.
func (d *InventoryDAO) AdjustQuantity(ctx context.Context, id uint, delta int) (InventoryItem, error) {
	item := InventoryItem{ID: id}

	result := d.db.WithContext(ctx).
		Model(&item).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return InventoryItem{}, result.Error
	}
	if result.RowsAffected == 0 {
		return InventoryItem{}, ErrItemNotFound
	}

	return item, nil
}
