package staff

import "github.com/shopspring/decimal"

type StaffMemberInput struct {
	Name             string          `json:"name" binding:"required,max=120"`
	BaseSalary       decimal.Decimal `json:"base_salary"`
	IncentivePercent decimal.Decimal `json:"incentive_percent"`
}

type ReplaceStaffRequest struct {
	Staff []StaffMemberInput `json:"staff" binding:"dive"`
}

type StaffMemberResponse struct {
	Name             string          `json:"name"`
	BaseSalary       decimal.Decimal `json:"base_salary"`
	IncentivePercent decimal.Decimal `json:"incentive_percent"`
}
