package historyerrors

import (
	"net/http"

	"go-shopbook/internal/shared/apperror"
)

var (
	ErrHistoryNotSaved = apperror.New(
		apperror.CodeServiceUnavailable,
		"History could not be saved, the computed summary is returned unsaved",
		http.StatusServiceUnavailable,
	)
	ErrInvalidRecord = apperror.New(
		apperror.CodeInvalidInput,
		"History record is incomplete",
		http.StatusBadRequest,
	)
)
