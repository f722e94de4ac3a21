package weekly_schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resilientmind/coaching-platform/internal/service/availability/models"
)

type fakeService struct {
	updated *models.UpdateWeeklyRuleRequest
	err     error
}

func (f *fakeService) GetWeeklySchedule(_ context.Context) (*models.WeeklyScheduleResponse, error) {
	return &models.WeeklyScheduleResponse{}, nil
}

func (f *fakeService) UpdateWeeklyRule(_ context.Context, req *models.UpdateWeeklyRuleRequest) (*models.WeeklyRuleResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.updated = req
	return &models.WeeklyRuleResponse{DayOfWeek: req.DayOfWeek, StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(svc *fakeService) *mux.Router {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/admin/availability/weekly/{day}", h.HandleUpdate).Methods(http.MethodPut)
	return r
}

func TestHandleUpdate_DayComesFromPath(t *testing.T) {
	svc := &fakeService{}
	router := newRouter(svc)

	body := strings.NewReader(`{"startTime":"10:00","endTime":"18:00","isActive":true}`)
	req := httptest.NewRequest(http.MethodPut, "/admin/availability/weekly/3", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.updated)
	assert.Equal(t, 3, svc.updated.DayOfWeek)
	assert.Equal(t, "10:00", svc.updated.StartTime)
	assert.True(t, svc.updated.IsActive)
}

func TestHandleUpdate_NonNumericDay(t *testing.T) {
	svc := &fakeService{}
	router := newRouter(svc)

	body := strings.NewReader(`{"startTime":"10:00","endTime":"18:00"}`)
	req := httptest.NewRequest(http.MethodPut, "/admin/availability/weekly/monday", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.updated)
}
