package dao

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&InventoryItem{},
	)
}

// Seed creates the out-of-band users and the demo inventory. Users are never
// created through the API, so this is the only way accounts come to exist.
// FirstOrCreate keeps it idempotent across restarts.
func Seed(db *gorm.DB) error {
	users := []struct {
		email    string
		password string
		role     string
	}{
		{"admin@apexflow.com", "admin123", "ADMIN"},
		{"staff@apexflow.com", "staff123", "STAFF"},
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
		}

		result := db.Where(User{Email: u.email}).
			Attrs(User{Password: string(hash), Role: u.role}).
			FirstOrCreate(&User{})
		if result.Error != nil {
			return fmt.Errorf("seed user %v -> %w", u.email, result.Error)
		}
	}

	items := []InventoryItem{
		{SKU: "APX-001", Name: "Hydraulic Pump X1", Quantity: 45, Status: "In Stock"},
		{SKU: "APX-002", Name: "Industrial Sensor S4", Quantity: 12, Status: "Low Stock"},
		{SKU: "APX-003", Name: "Control Valve v9", Quantity: 0, Status: "Out of Stock"},
		{SKU: "APX-004", Name: "Fiber Optic Cable 50m", Quantity: 89, Status: "In Stock"},
	}

	for _, item := range items {
		result := db.Where(InventoryItem{SKU: item.SKU}).
			Attrs(item).
			FirstOrCreate(&InventoryItem{})
		if result.Error != nil {
			return fmt.Errorf("seed item %v -> %w", item.SKU, result.Error)
		}
	}

	return nil
}
