package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fitlog/exercise-tracker/internal/api/metrics"
	"github.com/fitlog/exercise-tracker/internal/core/domain"
	"github.com/fitlog/exercise-tracker/internal/core/ports"
)

// ExerciseHandler handles HTTP requests for exercise logging and queries.
type ExerciseHandler struct {
	service ports.TrackerService
}

func NewExerciseHandler(service ports.TrackerService) *ExerciseHandler {
	return &ExerciseHandler{service: service}
}

// Log handles POST /api/users/:id/exercises.
//
// @Summary      Log an exercise against a user
// @Tags         exercises
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "User id"
// @Param        body  body      logExerciseRequest  true  "Exercise details"
// @Success      200   {object}  exerciseResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/users/{id}/exercises [post]
func (h *ExerciseHandler) Log(c echo.Context) error {
	var req logExerciseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := h.service.LogExercise(c.Request().Context(), ports.LogExerciseInput{
		UserID:      c.Param("id"),
		Description: req.Description,
		Duration:    int(req.Duration),
		Date:        req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrInvalidDate):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Server error"})
		}
	}

	metrics.ExercisesLoggedTotal.Inc()
	return c.JSON(http.StatusOK, exerciseResponse{
		Username:    result.Username,
		Description: result.Description,
		Duration:    result.Duration,
		Date:        domain.FormatDate(result.Date),
		ID:          result.UserID,
	})
}

// Logs handles GET /api/users/:id/logs.
//
// @Summary      Query a user's exercise log
// @Tags         exercises
// @Produce      json
// @Param        id     path      string  true   "User id"
// @Param        from   query     string  false  "Lower date bound (YYYY-MM-DD)"
// @Param        to     query     string  false  "Upper date bound (YYYY-MM-DD)"
// @Param        limit  query     int     false  "Max entries returned"
// @Success      200    {object}  logResponse
// @Failure      404    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /api/users/{id}/logs [get]
func (h *ExerciseHandler) Logs(c echo.Context) error {
	var q logsQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid query"})
	}
	input := toGetLogInput(c.Param("id"), q)

	filtered := q.From != "" || q.To != "" || q.Limit != ""
	metrics.LogQueriesTotal.WithLabelValues(strconv.FormatBool(filtered)).Inc()
	timer := prometheus.NewTimer(metrics.LogQueryDuration)
	defer timer.ObserveDuration()

	result, err := h.service.GetLog(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Server error"})
	}

	return c.JSON(http.StatusOK, toLogResponse(result))
}

// toGetLogInput parses the raw query parameters leniently: an unparseable
// from/to leaves that side unbounded and a non-numeric or non-positive limit
// means no cap, mirroring the tolerant query contract.
func toGetLogInput(userID string, q logsQuery) ports.GetLogInput {
	input := ports.GetLogInput{UserID: userID}
	if q.From != "" {
		if t, err := domain.ParseDate(q.From); err == nil {
			input.From = t
		}
	}
	if q.To != "" {
		if t, err := domain.ParseDate(q.To); err == nil {
			input.To = t
		}
	}
	if q.Limit != "" {
		if n, err := strconv.Atoi(q.Limit); err == nil && n > 0 {
			input.Limit = n
		}
	}
	return input
}

func toLogResponse(r *ports.LogResult) logResponse {
	entries := make([]logEntryResponse, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, logEntryResponse{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        domain.FormatDate(e.Date),
		})
	}
	return logResponse{
		Username: r.Username,
		Count:    r.Count,
		ID:       r.UserID,
		Log:      entries,
	}
}
