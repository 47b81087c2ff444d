package handler

import (
	"fmt"
	"strconv"
	"strings"
)

// minutes is an exercise duration. Form posts always carry it as a string;
// JSON bodies may carry it as either a number or a string. Both decode paths
// coerce to an integer and fail on non-numeric input.
type minutes int

// UnmarshalJSON accepts both 30 and "30".
func (m *minutes) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		return nil
	}
	return m.UnmarshalParam(s)
}

// UnmarshalParam satisfies echo.BindUnmarshaler for form and query binding.
func (m *minutes) UnmarshalParam(param string) error {
	if param == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(param))
	if err != nil {
		return fmt.Errorf("duration must be a whole number of minutes")
	}
	*m = minutes(n)
	return nil
}

type logExerciseRequest struct {
	Description string  `json:"description" form:"description" validate:"required"`
	Duration    minutes `json:"duration"    form:"duration"    validate:"required"`
	Date        string  `json:"date"        form:"date"`
}

// logsQuery carries the raw from/to/limit query parameters of the log
// endpoint. All three are optional and parsed leniently in the handler.
type logsQuery struct {
	From  string `query:"from"`
	To    string `query:"to"`
	Limit string `query:"limit"`
}

// exerciseResponse is returned after logging an exercise. ID is the owning
// user's id, not the exercise's.
type exerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"id"`
}

type logEntryResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type logResponse struct {
	Username string             `json:"username"`
	Count    int                `json:"count"`
	ID       string             `json:"id"`
	Log      []logEntryResponse `json:"log"`
}
