package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitlog/exercise-tracker/internal/core/domain"
	"github.com/fitlog/exercise-tracker/internal/core/ports"
)

// TrackerService implements the exercise tracker use cases on top of the
// user and exercise repositories.
type TrackerService struct {
	users     ports.UserRepository
	exercises ports.ExerciseRepository
	logger    zerolog.Logger
}

func NewTrackerService(users ports.UserRepository, exercises ports.ExerciseRepository, logger zerolog.Logger) *TrackerService {
	return &TrackerService{users: users, exercises: exercises, logger: logger}
}

// CreateUser creates a new user with the given username. The unique index on
// username is the only cross-request coordination point; a duplicate surfaces
// as domain.ErrUsernameTaken.
func (s *TrackerService) CreateUser(ctx context.Context, username string) (*ports.UserResult, error) {
	user, err := s.users.Create(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrUsernameTaken) {
			s.logger.Error().Err(err).Str("username", username).Msg("failed to create user")
		}
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user created")
	return &ports.UserResult{ID: user.ID, Username: user.Username}, nil
}

// ListUsers returns all users projected to {id, username}. Order is
// storage-native and not guaranteed.
func (s *TrackerService) ListUsers(ctx context.Context) ([]ports.UserResult, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list users")
		return nil, err
	}

	results := make([]ports.UserResult, 0, len(users))
	for _, u := range users {
		results = append(results, ports.UserResult{ID: u.ID, Username: u.Username})
	}
	return results, nil
}

// LogExercise records an exercise against an existing user. The user must
// exist (checked here, not enforced by storage). An empty Date means the
// moment of the call; otherwise the string must parse as a calendar date.
func (s *TrackerService) LogExercise(ctx context.Context, input ports.LogExerciseInput) (*ports.ExerciseResult, error) {
	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	date := time.Now()
	if input.Date != "" {
		date, err = domain.ParseDate(input.Date)
		if err != nil {
			return nil, err
		}
	}

	exercise := &domain.Exercise{
		UserID:      user.ID,
		Description: input.Description,
		Duration:    input.Duration,
		Date:        date,
	}
	if err := s.exercises.Create(ctx, exercise); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to log exercise")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Str("description", exercise.Description).
		Int("duration", exercise.Duration).
		Msg("exercise logged")

	return &ports.ExerciseResult{
		UserID:      user.ID,
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
	}, nil
}

// GetLog returns a user's exercises filtered by the optional date range and
// capped by the optional limit, most recent first.
func (s *TrackerService) GetLog(ctx context.Context, input ports.GetLogInput) (*ports.LogResult, error) {
	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	exercises, err := s.exercises.FindByUser(ctx, ports.LogFilter{
		UserID: user.ID,
		From:   input.From,
		To:     input.To,
		Limit:  int64(input.Limit),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to query exercise log")
		return nil, err
	}

	entries := make([]ports.LogEntry, 0, len(exercises))
	for _, e := range exercises {
		entries = append(entries, ports.LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date,
		})
	}

	return &ports.LogResult{
		UserID:   user.ID,
		Username: user.Username,
		Count:    len(entries),
		Entries:  entries,
	}, nil
}
