package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fitlog/exercise-tracker/internal/core/domain"
	"github.com/fitlog/exercise-tracker/internal/core/ports"
)

func newLogContext(e *echo.Echo, userID string, body string, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/users/"+userID+"/exercises", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/users/:id/exercises")
	c.SetParamNames("id")
	c.SetParamValues(userID)
	return c, rec
}

func TestExerciseHandler_Log_JSON(t *testing.T) {
	e := newEcho()
	stub := &stubTrackerService{
		logExerciseFn: func(ctx context.Context, input ports.LogExerciseInput) (*ports.ExerciseResult, error) {
			if input.UserID != "abc123" || input.Description != "run" || input.Duration != 30 || input.Date != "2023-01-15" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.ExerciseResult{
				UserID:      "abc123",
				Username:    "alice",
				Description: "run",
				Duration:    30,
				Date:        time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	h := NewExerciseHandler(stub)

	c, rec := newLogContext(e, "abc123", `{"description":"run","duration":30,"date":"2023-01-15"}`, echo.MIMEApplicationJSON)
	if err := h.Log(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "alice" {
		t.Fatalf("unexpected username: %v", resp["username"])
	}
	if resp["description"] != "run" {
		t.Fatalf("unexpected description: %v", resp["description"])
	}
	if resp["duration"] != float64(30) {
		t.Fatalf("unexpected duration: %v", resp["duration"])
	}
	if resp["date"] != "Sun Jan 15 2023" {
		t.Fatalf("unexpected date: %v", resp["date"])
	}
	// The response id is the user's id, not the exercise's.
	if resp["id"] != "abc123" {
		t.Fatalf("unexpected id: %v", resp["id"])
	}
}

func TestExerciseHandler_Log_FormWithStringDuration(t *testing.T) {
	e := newEcho()
	stub := &stubTrackerService{
		logExerciseFn: func(ctx context.Context, input ports.LogExerciseInput) (*ports.ExerciseResult, error) {
			if input.Duration != 30 {
				t.Fatalf("expected duration 30, got %d", input.Duration)
			}
			return &ports.ExerciseResult{
				UserID:      "abc123",
				Username:    "alice",
				Description: input.Description,
				Duration:    input.Duration,
				Date:        time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	h := NewExerciseHandler(stub)

	form := url.Values{"description": {"run"}, "duration": {"30"}, "date": {"2023-01-15"}}
	c, rec := newLogContext(e, "abc123", form.Encode(), echo.MIMEApplicationForm)
	if err := h.Log(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestExerciseHandler_Log_StringDurationJSON(t *testing.T) {
	e := newEcho()
	stub := &stubTrackerService{
		logExerciseFn: func(ctx context.Context, input ports.LogExerciseInput) (*ports.ExerciseResult, error) {
			if input.Duration != 45 {
				t.Fatalf("expected duration 45, got %d", input.Duration)
			}
			return &ports.ExerciseResult{UserID: "abc123", Username: "alice", Description: "swim", Duration: 45, Date: time.Now()}, nil
		},
	}
	h := NewExerciseHandler(stub)

	c, rec := newLogContext(e, "abc123", `{"description":"swim","duration":"45"}`, echo.MIMEApplicationJSON)
	if err := h.Log(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestExerciseHandler_Log_NonNumericDuration(t *testing.T) {
	e := newEcho()
	stub := &stubTrackerService{
		logExerciseFn: func(ctx context.Context, input ports.LogExerciseInput) (*ports.ExerciseResult, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	h := NewExerciseHandler(stub)

	c, rec := newLogContext(e, "abc123", `{"description":"run","duration":"lots"}`, echo.MIMEApplicationJSON)
	_ = h.Log(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestExerciseHandler_Log_MissingFields(t *testing.T) {
	e := newEcho()
	stub := &stubTrackerService{
		logExerciseFn: func(ctx context.Context, input ports.LogExerciseInput) (*ports.ExerciseResult, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	h := NewExerciseHandler(stub)

	for _, body := range []string{`{}`, `{"description":"run"}`, `{"duration":30}`} {
		c, rec := newLogContext(e, "abc123", body, echo.MIMEApplicationJSON)
		_ = h.Log(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestExerciseHandler_Log_UnknownUser(t *testing.T) {
	e := newEcho()
	stub := &stubTrackerService{
		logExerciseFn: func(ctx context.Context, input ports.LogExerciseInput) (*ports.ExerciseResult, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewExerciseHandler(stub)

	c, rec := newLogContext(e, "missing", `{"description":"run","duration":30}`, echo.MIMEApplicationJSON)
	_ = h.Log(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "user not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestExerciseHandler_Log_StorageError(t *testing.T) {
	e := newEcho()
	stub := &stubTrackerService{
		logExerciseFn: func(ctx context.Context, input ports.LogExerciseInput) (*ports.ExerciseResult, error) {
			return nil, errors.New("storage down")
		},
	}
	h := NewExerciseHandler(stub)

	c, rec := newLogContext(e, "abc123", `{"description":"run","duration":30}`, echo.MIMEApplicationJSON)
	_ = h.Log(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Server error") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func newLogsContext(e *echo.Echo, userID string, query string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/logs"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/users/:id/logs")
	c.SetParamNames("id")
	c.SetParamValues(userID)
	return c, rec
}

func TestExerciseHandler_Logs(t *testing.T) {
	e := newEcho()
	stub := &stubTrackerService{
		getLogFn: func(ctx context.Context, input ports.GetLogInput) (*ports.LogResult, error) {
			return &ports.LogResult{
				UserID:   "abc123",
				Username: "alice",
				Count:    2,
				Entries: []ports.LogEntry{
					{Description: "swim", Duration: 45, Date: time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)},
					{Description: "run", Duration: 30, Date: time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)},
				},
			}, nil
		},
	}
	h := NewExerciseHandler(stub)

	c, rec := newLogsContext(e, "abc123", "")
	if err := h.Logs(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Username string `json:"username"`
		Count    int    `json:"count"`
		ID       string `json:"id"`
		Log      []struct {
			Description string `json:"description"`
			Duration    int    `json:"duration"`
			Date        string `json:"date"`
		} `json:"log"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Username != "alice" || resp.ID != "abc123" || resp.Count != 2 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if len(resp.Log) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(resp.Log))
	}
	if resp.Log[0].Date != "Wed Feb 01 2023" || resp.Log[1].Date != "Sun Jan 15 2023" {
		t.Fatalf("unexpected dates: %+v", resp.Log)
	}
}

func TestExerciseHandler_Logs_QueryParams(t *testing.T) {
	e := newEcho()
	var got ports.GetLogInput
	stub := &stubTrackerService{
		getLogFn: func(ctx context.Context, input ports.GetLogInput) (*ports.LogResult, error) {
			got = input
			return &ports.LogResult{UserID: "abc123", Username: "alice"}, nil
		},
	}
	h := NewExerciseHandler(stub)

	c, _ := newLogsContext(e, "abc123", "?from=2023-01-10&to=2023-01-31&limit=5")
	if err := h.Logs(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	wantFrom := time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)
	if !got.From.Equal(wantFrom) || !got.To.Equal(wantTo) || got.Limit != 5 {
		t.Fatalf("unexpected filter: %+v", got)
	}
}

func TestExerciseHandler_Logs_LenientQueryParsing(t *testing.T) {
	e := newEcho()
	var got ports.GetLogInput
	stub := &stubTrackerService{
		getLogFn: func(ctx context.Context, input ports.GetLogInput) (*ports.LogResult, error) {
			got = input
			return &ports.LogResult{UserID: "abc123", Username: "alice"}, nil
		},
	}
	h := NewExerciseHandler(stub)

	// Unparseable bounds and a non-numeric limit are ignored, not rejected.
	c, rec := newLogsContext(e, "abc123", "?from=banana&to=2023-13-99&limit=many")
	if err := h.Logs(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !got.From.IsZero() || !got.To.IsZero() || got.Limit != 0 {
		t.Fatalf("expected unconstrained filter, got %+v", got)
	}
}

func TestExerciseHandler_Logs_UnknownUser(t *testing.T) {
	e := newEcho()
	stub := &stubTrackerService{
		getLogFn: func(ctx context.Context, input ports.GetLogInput) (*ports.LogResult, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewExerciseHandler(stub)

	c, rec := newLogsContext(e, "missing", "")
	_ = h.Logs(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestExerciseHandler_Logs_StorageError(t *testing.T) {
	e := newEcho()
	stub := &stubTrackerService{
		getLogFn: func(ctx context.Context, input ports.GetLogInput) (*ports.LogResult, error) {
			return nil, errors.New("storage down")
		},
	}
	h := NewExerciseHandler(stub)

	c, rec := newLogsContext(e, "abc123", "")
	_ = h.Logs(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Server error") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
