package calendarerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrInvalidIntegrationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid integration id",
		http.StatusBadRequest,
	)
	ErrInvalidProvider = apperror.New(
		apperror.CodeInvalidInput,
		"provider must be one of google, outlook, apple",
		http.StatusBadRequest,
	)
	ErrIntegrationNotFound = apperror.New(
		apperror.CodeNotFound,
		"calendar integration not found",
		http.StatusNotFound,
	)
)
