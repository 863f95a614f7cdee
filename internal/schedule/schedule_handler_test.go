package schedule_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fjtyk95/work-schedule/internal/schedule"
	scheduleerrors "github.com/fjtyk95/work-schedule/internal/schedule/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeScheduleService struct {
	createFn func(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error)
	getAllFn func(ctx context.Context) ([]schedule.ScheduleResponse, error)
	updateFn func(ctx context.Context, id string, req schedule.UpdateScheduleRequest) (schedule.ScheduleResponse, error)
	deleteFn func(ctx context.Context, id string) error
	lookupFn func(ctx context.Context, employeeID string, date time.Time) (schedule.LookupResponse, error)
	boardFn  func(ctx context.Context, from time.Time, days int) (schedule.BoardResponse, error)
}

func (f *fakeScheduleService) Create(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeScheduleService) GetAll(ctx context.Context) ([]schedule.ScheduleResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeScheduleService) Update(ctx context.Context, id string, req schedule.UpdateScheduleRequest) (schedule.ScheduleResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeScheduleService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeScheduleService) Lookup(ctx context.Context, employeeID string, date time.Time) (schedule.LookupResponse, error) {
	return f.lookupFn(ctx, employeeID, date)
}
func (f *fakeScheduleService) Board(ctx context.Context, from time.Time, days int) (schedule.BoardResponse, error) {
	return f.boardFn(ctx, from, days)
}

func newScheduleRouter(svc schedule.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	schedule.RegisterRoutes(r.Group("/api/v1"), schedule.NewHandler(svc))
	return r
}

func TestScheduleHandler_Create(t *testing.T) {
	t.Run("returns 201 with the created entry", func(t *testing.T) {
		svc := &fakeScheduleService{
			createFn: func(_ context.Context, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error) {
				assert.Equal(t, "E001", req.EmployeeID)
				return schedule.ScheduleResponse{ID: "abc", EmployeeID: req.EmployeeID}, nil
			},
		}
		r := newScheduleRouter(svc)

		body := `{"employee_id":"E001","start_date":"2024-02-19","end_date":"2024-02-19","work_type":"ON_SITE"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/schedules", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("missing fields fail binding with 400", func(t *testing.T) {
		r := newScheduleRouter(&fakeScheduleService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/schedules", strings.NewReader(`{"employee_id":"E001"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("unknown work type fails binding with 400", func(t *testing.T) {
		r := newScheduleRouter(&fakeScheduleService{})

		body := `{"employee_id":"E001","start_date":"2024-02-19","end_date":"2024-02-19","work_type":"NAP"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/schedules", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("domain rejection maps through the error envelope", func(t *testing.T) {
		svc := &fakeScheduleService{
			createFn: func(context.Context, schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error) {
				return schedule.ScheduleResponse{}, scheduleerrors.ErrNonBusinessDay
			},
		}
		r := newScheduleRouter(svc)

		body := `{"employee_id":"E001","start_date":"2024-02-17","end_date":"2024-02-17","work_type":"ON_SITE"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/schedules", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})
}

func TestScheduleHandler_GetAll(t *testing.T) {
	t.Run("paginates the list", func(t *testing.T) {
		svc := &fakeScheduleService{
			getAllFn: func(context.Context) ([]schedule.ScheduleResponse, error) {
				return []schedule.ScheduleResponse{{ID: "1"}, {ID: "2"}, {ID: "3"}}, nil
			},
		}
		r := newScheduleRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/schedules?page=1&page_size=2", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())

		var items []schedule.ScheduleResponse
		assert.NoError(t, json.Unmarshal(env.Data, &items))
		assert.Len(t, items, 2)
	})
}

func TestScheduleHandler_Update(t *testing.T) {
	t.Run("missing id returns 404", func(t *testing.T) {
		svc := &fakeScheduleService{
			updateFn: func(context.Context, string, schedule.UpdateScheduleRequest) (schedule.ScheduleResponse, error) {
				return schedule.ScheduleResponse{}, scheduleerrors.ErrScheduleNotFound
			},
		}
		r := newScheduleRouter(svc)

		body := `{"employee_id":"E001","start_date":"2024-02-19","end_date":"2024-02-19","work_type":"ON_SITE"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/schedules/nonexistent", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}

func TestScheduleHandler_Delete(t *testing.T) {
	svc := &fakeScheduleService{
		deleteFn: func(_ context.Context, id string) error {
			assert.Equal(t, "abc", id)
			return nil
		},
	}
	r := newScheduleRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/schedules/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestScheduleHandler_Lookup(t *testing.T) {
	t.Run("passes employee and date through", func(t *testing.T) {
		svc := &fakeScheduleService{
			lookupFn: func(_ context.Context, employeeID string, d time.Time) (schedule.LookupResponse, error) {
				assert.Equal(t, "E001", employeeID)
				assert.Equal(t, time.Date(2024, 2, 19, 0, 0, 0, 0, time.UTC), d)
				return schedule.LookupResponse{Found: false}, nil
			},
		}
		r := newScheduleRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/schedules/lookup?employee_id=E001&date=2024-02-19", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		r := newScheduleRouter(&fakeScheduleService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/schedules/lookup?employee_id=E001&date=02/19/2024", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("requires employee_id", func(t *testing.T) {
		r := newScheduleRouter(&fakeScheduleService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/schedules/lookup?date=2024-02-19", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestScheduleHandler_Board(t *testing.T) {
	t.Run("defaults from and days", func(t *testing.T) {
		svc := &fakeScheduleService{
			boardFn: func(_ context.Context, from time.Time, days int) (schedule.BoardResponse, error) {
				assert.True(t, from.IsZero())
				assert.Equal(t, 30, days)
				return schedule.BoardResponse{}, nil
			},
		}
		r := newScheduleRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/schedules/board", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("honors explicit range", func(t *testing.T) {
		svc := &fakeScheduleService{
			boardFn: func(_ context.Context, from time.Time, days int) (schedule.BoardResponse, error) {
				assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), from)
				assert.Equal(t, 7, days)
				return schedule.BoardResponse{}, nil
			},
		}
		r := newScheduleRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/schedules/board?from=2024-02-15&days=7", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
