package employeeerrors

import (
	"net/http"

	"github.com/fjtyk95/work-schedule/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
)
