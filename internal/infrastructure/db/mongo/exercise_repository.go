package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitlog/exercise-tracker/internal/core/domain"
	"github.com/fitlog/exercise-tracker/internal/core/ports"
)

const collectionExercises = "exercises"

type ExerciseRepository struct {
	col *mongo.Collection
}

func NewExerciseRepository(db *mongo.Database) *ExerciseRepository {
	return &ExerciseRepository{col: db.Collection(collectionExercises)}
}

type mongoExercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Description string             `bson:"description"`
	Duration    int                `bson:"duration"`
	Date        time.Time          `bson:"date"`
}

// Create inserts an exercise document. The user_id reference is not verified
// here; the service layer checks user existence first.
func (r *ExerciseRepository) Create(ctx context.Context, e *domain.Exercise) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, mongoExercise{
		UserID:      e.UserID,
		Description: e.Description,
		Duration:    e.Duration,
		Date:        e.Date,
	})
	if err != nil {
		return fmt.Errorf("insert exercise: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = id.Hex()
	}
	return nil
}

// FindByUser returns the exercises matching filter, sorted by date descending.
// Zero From/To bounds are omitted from the query; Limit <= 0 means no cap.
func (r *ExerciseRepository) FindByUser(ctx context.Context, f ports.LogFilter) ([]*domain.Exercise, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"user_id": f.UserID}
	dateRange := bson.M{}
	if !f.From.IsZero() {
		dateRange["$gte"] = f.From
	}
	if !f.To.IsZero() {
		dateRange["$lte"] = f.To
	}
	if len(dateRange) > 0 {
		filter["date"] = dateRange
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetProjection(bson.M{"user_id": 1, "description": 1, "duration": 1, "date": 1})
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer cursor.Close(ctx)

	var exercises []*domain.Exercise
	for cursor.Next(ctx) {
		var me mongoExercise
		if err := cursor.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode exercise: %w", err)
		}
		exercises = append(exercises, &domain.Exercise{
			ID:          me.ID.Hex(),
			UserID:      me.UserID,
			Description: me.Description,
			Duration:    me.Duration,
			Date:        me.Date,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	return exercises, nil
}

// EnsureIndexes creates the compound index backing the log query.
func (r *ExerciseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}},
	})
	return err
}
