package ports

import (
	"context"
	"time"
)

// UserResult is the projection of a user returned by the service.
type UserResult struct {
	ID       string
	Username string
}

// LogExerciseInput carries all data needed to log an exercise against a user.
type LogExerciseInput struct {
	UserID      string
	Description string
	Duration    int
	// Date is the raw caller-supplied date string; empty means "now".
	Date string
}

// ExerciseResult is returned after logging an exercise. UserID and Username
// identify the owning user; the response exposes the user's id, not the
// exercise's.
type ExerciseResult struct {
	UserID      string
	Username    string
	Description string
	Duration    int
	Date        time.Time
}

// GetLogInput carries the parameters for querying a user's exercise log.
type GetLogInput struct {
	UserID string
	From   time.Time // optional
	To     time.Time // optional
	Limit  int       // optional, <= 0 means no cap
}

// LogEntry is a single exercise in a log query result.
type LogEntry struct {
	Description string
	Duration    int
	Date        time.Time
}

// LogResult is the full log view for a user.
type LogResult struct {
	UserID   string
	Username string
	Count    int
	Entries  []LogEntry
}

// TrackerService defines the use-case operations of the exercise tracker.
type TrackerService interface {
	CreateUser(ctx context.Context, username string) (*UserResult, error)
	ListUsers(ctx context.Context) ([]UserResult, error)
	LogExercise(ctx context.Context, input LogExerciseInput) (*ExerciseResult, error)
	GetLog(ctx context.Context, input GetLogInput) (*LogResult, error)
}
