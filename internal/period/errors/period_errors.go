package perioderrors

import (
	"net/http"

	"go-shopbook/internal/shared/apperror"
)

var (
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidPeriod,
		"month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidMonthName = apperror.New(
		apperror.CodeInvalidPeriod,
		"unknown month name",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidPeriod,
		"year must be between 1 and 9999",
		http.StatusBadRequest,
	)
	ErrInvalidLabel = apperror.New(
		apperror.CodeInvalidPeriod,
		"invalid period label, expected <MonthName>_<Year>",
		http.StatusBadRequest,
	)
)
