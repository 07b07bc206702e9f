package shoperrors

import (
	"net/http"

	"go-shopbook/internal/shared/apperror"
)

var (
	ErrInvalidShopID = apperror.New(
		apperror.CodeInvalidInput,
		"shop id may only contain letters, digits, '-' and '_'",
		http.StatusBadRequest,
	)
	ErrShopNotFound = apperror.New(
		apperror.CodeNotFound,
		"shop not found",
		http.StatusNotFound,
	)
	ErrShopAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"shop already exists",
		http.StatusConflict,
	)
)
