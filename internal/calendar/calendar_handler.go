package calendar

import (
	"net/http"
	"time"

	"github.com/fjtyk95/work-schedule/internal/shared/apperror"
	"github.com/fjtyk95/work-schedule/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BusinessDayResponse struct {
	Date          string `json:"date"`
	IsBusinessDay bool   `json:"is_business_day"`
	DayType       string `json:"day_type"`
}

type Handler struct {
	cal    *Calendar
	logger *zap.Logger
}

func NewHandler(cal *Calendar, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("calendar.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.handler")
	}
	return &Handler{cal: cal, logger: l}
}

// BusinessDays handles GET /calendar/business-days?start=YYYY-MM-DD&end=YYYY-MM-DD.
func (h *Handler) BusinessDays(c *gin.Context) {
	start, err := parseQueryDate(c.Query("start"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	end, err := parseQueryDate(c.Query("end"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	days, err := h.cal.BusinessDays(c.Request.Context(), start, end)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]BusinessDayResponse, len(days))
	for i, d := range days {
		resp[i] = BusinessDayResponse{
			Date:          d.Date.Format("2006-01-02"),
			IsBusinessDay: d.IsBusinessDay,
			DayType:       string(h.cal.DayType(d.Date)),
		}
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("calendar request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func parseQueryDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, apperror.New(
			apperror.CodeInvalidInput,
			"invalid date format, expected YYYY-MM-DD",
			http.StatusBadRequest,
		)
	}
	return t, nil
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	cal := r.Group("/calendar")
	{
		cal.GET("/business-days", handler.BusinessDays)
	}
}
