package ports

import (
	"context"
	"time"

	"github.com/fitlog/exercise-tracker/internal/core/domain"
)

// LogFilter carries all query parameters for listing a user's exercises.
// A zero From/To imposes no bound on that side.
type LogFilter struct {
	UserID string
	From   time.Time // optional: date >= From
	To     time.Time // optional: date <= To
	Limit  int64     // optional: max rows, <= 0 means no cap
}

// ExerciseRepository defines persistence operations for exercises.
type ExerciseRepository interface {
	// Create inserts an exercise unconditionally; it does not verify that
	// the referenced user exists.
	Create(ctx context.Context, e *domain.Exercise) error
	// FindByUser returns exercises matching filter, sorted by date
	// descending (most recent first).
	FindByUser(ctx context.Context, filter LogFilter) ([]*domain.Exercise, error)
}
