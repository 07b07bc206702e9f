package staff

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StaffMember is one pay rule of a shop. The list of a shop is replaced as a
// whole; Position keeps the order the owner entered.
type StaffMember struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ShopID           string          `gorm:"type:varchar(64);not null;uniqueIndex:uq_staff_shop_name" json:"shop_id"`
	Name             string          `gorm:"type:varchar(120);not null;uniqueIndex:uq_staff_shop_name" json:"name"`
	BaseSalary       decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"base_salary"`
	IncentivePercent decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"incentive_percent"`
	Position         int             `gorm:"not null;default:0" json:"position"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (StaffMember) TableName() string {
	return "staff_members"
}
