package employee_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fjtyk95/work-schedule/internal/employee"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiEnvelope struct {
	Ok   bool            `json:"ok"`
	Data json.RawMessage `json:"data"`
}

func newEmployeeRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	dir := employee.NewStaticDirectory(employee.DefaultRoster())
	employee.RegisterRoutes(r.Group("/api/v1"), employee.NewHandler(dir))
	return r
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	r := newEmployeeRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Ok)

	var employees []employee.EmployeeResponse
	assert.NoError(t, json.Unmarshal(env.Data, &employees))
	assert.Len(t, employees, 3)
	assert.Equal(t, "E001", employees[0].ID)
}

func TestEmployeeHandler_GetById(t *testing.T) {
	r := newEmployeeRouter()

	t.Run("known id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/E002", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/E999", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
