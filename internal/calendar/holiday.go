package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/fjtyk95/work-schedule/internal/shared/apperror"

	"go.uber.org/zap"
)

// DefaultHolidayBaseURL serves the national holiday dataset as one JSON
// object per year, ISO date string -> holiday name.
const DefaultHolidayBaseURL = "https://holidays-jp.github.io/api/v1"

var ErrHolidaySourceUnavailable = apperror.New(
	apperror.CodeServiceUnavailable,
	"holiday source unavailable",
	http.StatusServiceUnavailable,
)

// HolidaySource resolves whether a calendar date is a registered holiday.
// Implementations must distinguish "not a holiday" from "could not check":
// the latter is an error, never a silent false.
type HolidaySource interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}

// NoHolidaySource reports no holidays at all. Weekends are handled by the
// weekday check, so with this source every weekday is a business day.
type NoHolidaySource struct{}

func (NoHolidaySource) IsHoliday(context.Context, time.Time) (bool, error) {
	return false, nil
}

// HTTPHolidaySource fetches the holiday dataset once per calendar year and
// answers subsequent lookups from the cached year map.
type HTTPHolidaySource struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger

	mu    sync.Mutex
	years map[int]map[string]string
}

func NewHTTPHolidaySource(baseURL string, client *http.Client, logger ...*zap.Logger) *HTTPHolidaySource {
	l := zap.L().Named("calendar.holidays")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.holidays")
	}
	if baseURL == "" {
		baseURL = DefaultHolidayBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPHolidaySource{
		baseURL: baseURL,
		client:  client,
		logger:  l,
		years:   make(map[int]map[string]string),
	}
}

func (s *HTTPHolidaySource) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	holidays, err := s.yearMap(ctx, date.Year())
	if err != nil {
		return false, err
	}

	_, ok := holidays[date.Format("2006-01-02")]
	return ok, nil
}

func (s *HTTPHolidaySource) yearMap(ctx context.Context, year int) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m, ok := s.years[year]; ok {
		return m, nil
	}

	url := fmt.Sprintf("%s/%d/date.json", s.baseURL, year)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, unavailable(err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("holiday fetch failed", zap.Int("year", year), zap.Error(err))
		return nil, unavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("holiday fetch bad status", zap.Int("year", year), zap.Int("status", resp.StatusCode))
		return nil, unavailable(fmt.Errorf("status %d", resp.StatusCode))
	}

	var holidays map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, unavailable(err)
	}

	s.years[year] = holidays
	s.logger.Debug("holiday year cached", zap.Int("year", year), zap.Int("count", len(holidays)))
	return holidays, nil
}

func unavailable(err error) *apperror.AppError {
	return apperror.Wrap(
		err,
		apperror.CodeServiceUnavailable,
		ErrHolidaySourceUnavailable.Message,
		http.StatusServiceUnavailable,
	)
}
