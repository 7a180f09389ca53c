package payrollhandler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"worktime/internal/domain/payroll"
)

func TestWritePayrollErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "bad period key",
			err:        payroll.ErrInvalidPeriodKey,
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid_period",
		},
		{
			name:       "wrapped bad period key",
			err:        errors.Join(errors.New("parse"), payroll.ErrInvalidPeriodKey),
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid_period",
		},
		{
			name:       "missing item",
			err:        payroll.ErrItemNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "not_found",
		},
		{
			name:       "anything else",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "payroll_failed",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/payroll/items", nil)
			writePayrollError(rec, req, tc.err)
			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantBody)
		})
	}
}
