package scheduleerrors

import (
	"net/http"

	"github.com/fjtyk95/work-schedule/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end_date must be on or after start_date",
		http.StatusBadRequest,
	)
	ErrNonBusinessDay = apperror.New(
		apperror.CodeInvalidInput,
		"start_date and end_date must be business days",
		http.StatusBadRequest,
	)
	ErrInvalidWorkType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid work type",
		http.StatusBadRequest,
	)
	ErrScheduleNotFound = apperror.New(
		apperror.CodeNotFound,
		"schedule not found",
		http.StatusNotFound,
	)
)
