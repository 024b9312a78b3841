package ledgererrors

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
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"leave_type must be one of sick, casual, vacation",
		http.StatusBadRequest,
	)
	ErrInvalidDays = apperror.New(
		apperror.CodeInvalidInput,
		"days must be at least 1",
		http.StatusBadRequest,
	)
	ErrBalanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave balance not found",
		http.StatusNotFound,
	)
	ErrBalanceAlreadyOpen = apperror.New(
		apperror.CodeConflict,
		"leave balance already exists for this user",
		http.StatusConflict,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"insufficient leave balance",
		http.StatusUnprocessableEntity,
	)
	ErrBalanceConflict = apperror.New(
		apperror.CodeConflict,
		"leave balance was modified concurrently, retry the request",
		http.StatusConflict,
	)
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"ledger entry not found",
		http.StatusNotFound,
	)
	ErrInvalidEntryState = apperror.New(
		apperror.CodeInvalidState,
		"ledger entry is not held",
		http.StatusConflict,
	)
	ErrAllocationExceeded = apperror.New(
		apperror.CodeInvalidState,
		"restoring this hold would exceed the annual allocation",
		http.StatusConflict,
	)
)
