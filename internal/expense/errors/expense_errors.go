package expenseerrors

import (
	"net/http"

	"go-shopbook/internal/shared/apperror"
)

var (
	ErrEmptyItemName = apperror.New(
		apperror.CodeInvalidInput,
		"expense item name is required",
		http.StatusBadRequest,
	)
	ErrDuplicateItemName = apperror.New(
		apperror.CodeInvalidInput,
		"expense item names must be unique within a shop",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"expense amount cannot be negative",
		http.StatusBadRequest,
	)
	ErrUnknownOverride = apperror.New(
		apperror.CodeInvalidInput,
		"override given for an expense item the shop does not have",
		http.StatusBadRequest,
	)
	ErrExpenseConflict = apperror.New(
		apperror.CodeConflict,
		"expense list was changed concurrently, reload and try again",
		http.StatusConflict,
	)
)
