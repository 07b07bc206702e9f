package reporterrors

import (
	"net/http"

	"go-shopbook/internal/shared/apperror"
)

var (
	ErrUnencodableText = apperror.New(
		apperror.CodeFormatError,
		"Statement text contains characters that cannot be printed",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidPeriodLabel = apperror.New(
		apperror.CodeFormatError,
		"Statement period label is not valid",
		http.StatusUnprocessableEntity,
	)
	ErrStatementNotFound = apperror.New(
		apperror.CodeNotFound,
		"No statement has been generated for this period yet",
		http.StatusNotFound,
	)
	ErrArchiveUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Statement archive is not configured",
		http.StatusServiceUnavailable,
	)
)
