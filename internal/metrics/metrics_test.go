package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	apperrors "monthbook/internal/errors"
)

func TestOutcomeFor(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, OutcomeOK},
		{apperrors.WithMessage(apperrors.ErrInvalidInput, "month_key is required"), OutcomeInvalid},
		{apperrors.ErrReadOnlyMonth, OutcomeReadOnly},
		{apperrors.WithMessage(apperrors.ErrUnknownCategory, `unknown category_id "x"`), OutcomeUnknownCategory},
		{apperrors.ErrVersionConflict, OutcomeConflict},
		{apperrors.Wrap(apperrors.ErrInternalServer, errors.New("db down")), OutcomeError},
		{errors.New("plain"), OutcomeError},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, OutcomeFor(tt.err))
		})
	}
}

func TestObserveSave(t *testing.T) {
	m := New()
	m.ObserveSave(OutcomeOK, 3)
	m.ObserveSave(OutcomeOK, 1)
	m.ObserveSave(OutcomeConflict, 4)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.saveRequests.WithLabelValues(OutcomeOK)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.saveRequests.WithLabelValues(OutcomeConflict)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.saveOperations))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.ObserveSave(OutcomeOK, 1) })
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", http.NoBody))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `monthbook_http_request_duration_seconds_count{method="GET",route="/api/health",status="200"} 1`), body)
}
