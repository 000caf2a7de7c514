package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "monthbook/internal/errors"
	"monthbook/internal/logger"
	"monthbook/internal/middleware"
	"monthbook/internal/save"
	"monthbook/internal/services"
)

// --- mock services ---

type mockSaveService struct {
	saveFn func(ctx context.Context, userID string, body []byte) (*save.Outcome, error)
}

func (m *mockSaveService) Save(ctx context.Context, userID string, body []byte) (*save.Outcome, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, userID, body)
	}
	return &save.Outcome{}, nil
}

var _ services.SaveServicer = (*mockSaveService)(nil)

type mockPinger struct {
	err error
}

func (m mockPinger) Ping(context.Context) error { return m.err }

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

func setupSaveRouter(handler *SaveHandler, userID string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	if userID != "" {
		r.POST("/save", injectUserID(userID), handler.Save)
	} else {
		r.POST("/save", handler.Save)
	}
	return r
}

func injectUserID(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	if result["code"] != code {
		t.Errorf("expected error code %q, got %v (body %v)", code, result["code"], result)
	}
}

// --- tests ---

func TestSaveHandler_Save(t *testing.T) {
	const body = `{"month_key":"2026-02","expected_version":3,"ops":{"delete_entry_ids":["e-1"]}}`

	t.Run("returns 200 with the new version", func(t *testing.T) {
		var gotUser, gotBody string
		svc := &mockSaveService{
			saveFn: func(_ context.Context, userID string, b []byte) (*save.Outcome, error) {
				gotUser, gotBody = userID, string(b)
				return &save.Outcome{MonthKey: "2026-02", NewVersion: 4, Applied: save.Applied{DeletedEntries: 1}}, nil
			},
		}
		r := setupSaveRouter(NewSaveHandler(svc), "user-7")

		rec := doRequest(r, http.MethodPost, "/save", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotUser != "user-7" {
			t.Errorf("expected user-7, got %q", gotUser)
		}
		if gotBody != body {
			t.Errorf("body was not passed through unchanged: %s", gotBody)
		}

		result := parseJSON(t, rec)
		if result["ok"] != true {
			t.Errorf("expected ok=true, got %v", result["ok"])
		}
		if result["month_key"] != "2026-02" {
			t.Errorf("expected month_key 2026-02, got %v", result["month_key"])
		}
		if result["new_version"] != float64(4) {
			t.Errorf("expected new_version 4, got %v", result["new_version"])
		}
		applied, ok := result["applied"].(map[string]interface{})
		if !ok {
			t.Fatalf("expected applied object, got %v", result["applied"])
		}
		if applied["deleted_entries"] != float64(1) {
			t.Errorf("expected deleted_entries 1, got %v", applied["deleted_entries"])
		}
	})

	t.Run("returns 409 conflict shape", func(t *testing.T) {
		svc := &mockSaveService{
			saveFn: func(context.Context, string, []byte) (*save.Outcome, error) {
				return nil, apperrors.ErrVersionConflict
			},
		}
		r := setupSaveRouter(NewSaveHandler(svc), "user-7")

		rec := doRequest(r, http.MethodPost, "/save", body)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["error"] != "Conflict" {
			t.Errorf("expected error Conflict, got %v", result["error"])
		}
		if result["message"] != "Please fetch latest and re-apply changes." {
			t.Errorf("unexpected message %v", result["message"])
		}
		assertErrorCode(t, result, "VERSION_CONFLICT")
	})

	t.Run("returns 400 with the validation message", func(t *testing.T) {
		svc := &mockSaveService{
			saveFn: func(context.Context, string, []byte) (*save.Outcome, error) {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month_key must be YYYY-MM")
			},
		}
		r := setupSaveRouter(NewSaveHandler(svc), "user-7")

		rec := doRequest(r, http.MethodPost, "/save", `{}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["error"] != "month_key must be YYYY-MM" {
			t.Errorf("unexpected error %v", result["error"])
		}
		assertErrorCode(t, result, "INVALID_INPUT")
	})

	t.Run("returns 500 without leaking the cause", func(t *testing.T) {
		svc := &mockSaveService{
			saveFn: func(context.Context, string, []byte) (*save.Outcome, error) {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, errors.New("pq: relation does not exist"))
			},
		}
		r := setupSaveRouter(NewSaveHandler(svc), "user-7")

		rec := doRequest(r, http.MethodPost, "/save", body)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "relation") {
			t.Errorf("internal cause leaked: %s", rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "INTERNAL_ERROR")
	})

	t.Run("returns 401 without a user", func(t *testing.T) {
		called := false
		svc := &mockSaveService{
			saveFn: func(context.Context, string, []byte) (*save.Outcome, error) {
				called = true
				return nil, nil
			},
		}
		r := setupSaveRouter(NewSaveHandler(svc), "")

		rec := doRequest(r, http.MethodPost, "/save", body)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if called {
			t.Error("service must not be called without a user")
		}
		assertErrorCode(t, parseJSON(t, rec), "UNAUTHORIZED")
	})
}

func TestHealthHandler_Health(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		want   string
	}{
		{name: "database answers", status: http.StatusOK, want: "ok"},
		{name: "database down", err: errors.New("dial tcp: refused"), status: http.StatusServiceUnavailable, want: "unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", NewHealthHandler(mockPinger{err: tt.err}).Health)

			rec := doRequest(r, http.MethodGet, "/health", "")
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
			if got := parseJSON(t, rec)["status"]; got != tt.want {
				t.Errorf("expected status %q, got %v", tt.want, got)
			}
		})
	}
}
