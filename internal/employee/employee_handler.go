package employee

import (
	"net/http"

	"github.com/fjtyk95/work-schedule/internal/shared/apperror"
	"github.com/fjtyk95/work-schedule/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	directory Directory
	logger    *zap.Logger
}

func NewHandler(directory Directory, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{directory: directory, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	employees := h.directory.List()

	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e)
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	id := c.Param("id")

	e, err := h.directory.FindByID(id)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("employee lookup failed",
			zap.String("employee_id", id),
			zap.Int("status", httpErr.Status),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, mapToResponse(e), nil)
}
