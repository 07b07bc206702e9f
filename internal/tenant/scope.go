package tenant

import "gorm.io/gorm"

// Scope restricts a query to one shop's rows.
func Scope(shopID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("shop_id = ?", shopID)
	}
}
