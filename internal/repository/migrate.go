package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the repositories use.
func Migrate(ctx context.Context, db *gorm.DB) error {
	models := []any{
		&customerModel{},
		&providerModel{},
		&providerOfferingModel{},
		&categoryModel{},
		&requestModel{},
		&feedbackModel{},
	}
	for _, m := range models {
		if err := db.WithContext(ctx).AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
	}
	return nil
}
