package policyerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidFAQID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid faq id",
		http.StatusBadRequest,
	)
	ErrFAQNotFound = apperror.New(
		apperror.CodeNotFound,
		"faq item not found",
		http.StatusNotFound,
	)
)
