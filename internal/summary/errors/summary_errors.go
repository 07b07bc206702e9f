package summaryerrors

import (
	"net/http"

	"go-shopbook/internal/shared/apperror"
)

var (
	ErrUnknownStaff = apperror.New(
		apperror.CodeInvalidInput,
		"Figures were entered for someone who is not on the staff list",
		http.StatusBadRequest,
	)
	ErrDuplicateStaffFigures = apperror.New(
		apperror.CodeInvalidInput,
		"Figures were entered twice for the same staff member",
		http.StatusBadRequest,
	)
	ErrNegativeSales = apperror.New(
		apperror.CodeInvalidInput,
		"Total sales cannot be negative",
		http.StatusBadRequest,
	)
)
