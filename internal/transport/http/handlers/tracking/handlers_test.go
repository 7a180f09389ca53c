package trackinghandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worktime/internal/domain/employee"
	"worktime/internal/domain/policy"
	"worktime/internal/domain/tracking"
	"worktime/internal/platform/clock"
	"worktime/internal/transport/http/middleware"
)

type stubSessions struct {
	sessions map[string]tracking.Session
}

func stubKey(employeeID string, workDate time.Time) string {
	return employeeID + "|" + workDate.Format("2006-01-02")
}

func (s *stubSessions) GetForDate(_ context.Context, employeeID string, workDate time.Time) (tracking.Session, error) {
	sess, ok := s.sessions[stubKey(employeeID, workDate)]
	if !ok {
		return tracking.Session{}, tracking.ErrNoSession
	}
	return sess, nil
}

func (s *stubSessions) Create(_ context.Context, sess tracking.Session) (tracking.Session, error) {
	key := stubKey(sess.EmployeeID, sess.WorkDate)
	if existing, ok := s.sessions[key]; ok {
		return existing, nil
	}
	s.sessions[key] = sess
	return sess, nil
}

func (s *stubSessions) Mutate(_ context.Context, employeeID string, workDate time.Time, fn func(sess *tracking.Session) error) (tracking.Session, error) {
	key := stubKey(employeeID, workDate)
	sess, ok := s.sessions[key]
	if !ok {
		return tracking.Session{}, tracking.ErrNoSession
	}
	if err := fn(&sess); err != nil {
		return tracking.Session{}, err
	}
	s.sessions[key] = sess
	return sess, nil
}

func (s *stubSessions) SumActiveSeconds(context.Context, string, time.Time, time.Time) (int64, error) {
	return 0, nil
}

func (s *stubSessions) CountSessions(context.Context, string, time.Time, time.Time) (int, error) {
	return 0, nil
}

type stubEmployees struct {
	employees map[string]employee.Employee
}

func (s *stubEmployees) GetEmployee(_ context.Context, employeeID string) (employee.Employee, error) {
	emp, ok := s.employees[employeeID]
	if !ok {
		return employee.Employee{}, employee.ErrNotFound
	}
	return emp, nil
}

func (s *stubEmployees) ListActiveEmployees(context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (s *stubEmployees) ActiveCompensationAsOf(context.Context, string, time.Time) (employee.Compensation, error) {
	return employee.Compensation{}, employee.ErrNoActiveCompensation
}

func newTestRouter(t *testing.T) (chi.Router, *clock.Fixed) {
	t.Helper()
	clk := clock.NewFixed(time.Date(2026, 5, 11, 9, 0, 0, 0, time.UTC))
	employees := &stubEmployees{employees: map[string]employee.Employee{
		"emp-remote": {
			ID:              "emp-remote",
			EmploymentType:  policy.EmploymentFullTime,
			WorkArrangement: policy.ArrangementRemote,
			Status:          employee.StatusActive,
		},
		"emp-onsite": {
			ID:              "emp-onsite",
			EmploymentType:  policy.EmploymentFullTime,
			WorkArrangement: policy.ArrangementOnSite,
			Status:          employee.StatusActive,
		},
	}}
	svc := tracking.NewService(&stubSessions{sessions: map[string]tracking.Session{}}, employees, clk, 0)

	r := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(r)
	return r, clk
}

func doRequest(t *testing.T, r chi.Router, method, path, employeeID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if employeeID != "" {
		req = req.WithContext(middleware.WithUser(req.Context(), middleware.UserContext{
			UserID:     "user-1",
			EmployeeID: employeeID,
		}))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool `json:"success"`
	Data    struct {
		ActiveSeconds int64  `json:"activeSeconds"`
		State         string `json:"state"`
	} `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestStartRequiresAuthentication(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doRequest(t, r, http.MethodPost, "/time/start", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStartRejectsOnSiteEmployee(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doRequest(t, r, http.MethodPost, "/time/start", "emp-onsite")
	require.Equal(t, http.StatusForbidden, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "not_eligible", env.Error.Code)
}

func TestStartHeartbeatStopFlow(t *testing.T) {
	r, clk := newTestRouter(t)

	rec := doRequest(t, r, http.MethodPost, "/time/start", "emp-remote")
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "open", env.Data.State)
	assert.EqualValues(t, 0, env.Data.ActiveSeconds)

	clk.Advance(5 * time.Minute)
	rec = doRequest(t, r, http.MethodPost, "/time/heartbeat", "emp-remote")
	require.Equal(t, http.StatusOK, rec.Code)
	env = decodeEnvelope(t, rec)
	assert.EqualValues(t, 300, env.Data.ActiveSeconds)

	clk.Advance(2 * time.Minute)
	rec = doRequest(t, r, http.MethodPost, "/time/stop", "emp-remote")
	require.Equal(t, http.StatusOK, rec.Code)
	env = decodeEnvelope(t, rec)
	assert.Equal(t, "closed", env.Data.State)
	assert.EqualValues(t, 420, env.Data.ActiveSeconds)

	clk.Advance(time.Minute)
	rec = doRequest(t, r, http.MethodPost, "/time/heartbeat", "emp-remote")
	require.Equal(t, http.StatusConflict, rec.Code)
	env = decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "session_closed", env.Error.Code)
}

func TestHeartbeatForUnknownEmployee(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doRequest(t, r, http.MethodPost, "/time/heartbeat", "emp-ghost")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
