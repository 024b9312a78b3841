package returntoworkerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidManagerID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid manager id",
		http.StatusBadRequest,
	)
	ErrNoticeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"a return-to-work notice already exists for this leave request",
		http.StatusConflict,
	)
)
