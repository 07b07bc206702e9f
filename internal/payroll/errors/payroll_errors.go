package payrollerrors

import (
	"net/http"

	"go-shopbook/internal/shared/apperror"
)

var (
	ErrInvalidDaysInMonth = apperror.New(
		apperror.CodeInvalidInput,
		"days in month must be greater than zero",
		http.StatusBadRequest,
	)
	ErrLeavesOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"leaves taken must be between 0 and the days in the month",
		http.StatusBadRequest,
	)
	ErrNegativeServiceRevenue = apperror.New(
		apperror.CodeInvalidInput,
		"service revenue cannot be negative",
		http.StatusBadRequest,
	)
	ErrNegativeBaseSalary = apperror.New(
		apperror.CodeInvalidInput,
		"base salary cannot be negative",
		http.StatusBadRequest,
	)
)
