package stafferrors

import (
	"net/http"

	"go-shopbook/internal/shared/apperror"
)

var (
	ErrEmptyName = apperror.New(
		apperror.CodeInvalidInput,
		"staff name is required",
		http.StatusBadRequest,
	)
	ErrDuplicateName = apperror.New(
		apperror.CodeInvalidInput,
		"staff names must be unique within a shop",
		http.StatusBadRequest,
	)
	ErrNegativeSalary = apperror.New(
		apperror.CodeInvalidInput,
		"base salary cannot be negative",
		http.StatusBadRequest,
	)
	ErrStaffConflict = apperror.New(
		apperror.CodeConflict,
		"staff list was changed concurrently, reload and try again",
		http.StatusConflict,
	)
)
