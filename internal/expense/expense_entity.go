package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseItem is a fixed monthly bill of a shop with its usual amount.
type ExpenseItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ShopID        string          `gorm:"type:varchar(64);not null;uniqueIndex:uq_expense_shop_item" json:"shop_id"`
	ItemName      string          `gorm:"type:varchar(120);not null;uniqueIndex:uq_expense_shop_item" json:"item_name"`
	DefaultAmount decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"default_amount"`
	Position      int             `gorm:"not null;default:0" json:"position"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (ExpenseItem) TableName() string {
	return "expense_items"
}

// ExpenseLine is the amount actually booked for an item in one period.
type ExpenseLine struct {
	ItemName string          `json:"item_name"`
	Amount   decimal.Decimal `json:"amount"`
}
