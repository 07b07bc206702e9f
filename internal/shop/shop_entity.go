package shop

import "time"

// Shop is an independent unit with its own staff, expenses and history.
// ID is a stable slug chosen by the owner (e.g. "Shop_1").
type Shop struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	Name      string `gorm:"type:varchar(120);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
