package store

import (
	"context"

	"github.com/kirankuma274/feedback-collection-system/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FeedbackStore is the persistence boundary for feedback records.
// Records are immutable after Insert; the only mutation is Delete.
type FeedbackStore interface {
	Insert(ctx context.Context, fb models.Feedback) error
	// List returns records matching the filter, newest first, with the
	// owning user expanded when the record is not anonymous.
	List(ctx context.Context, filter models.FeedbackFilter) ([]models.FeedbackWithUser, error)
	// Aggregate returns the record count, the raw average rating (0 when
	// the collection is empty) and the per-category counts.
	Aggregate(ctx context.Context) (total int64, avgRating float64, byCategory map[models.Category]int64, err error)
	// Delete removes a record by id. Deleting an absent id is not an error.
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mongoFeedbackStore struct {
	coll *mongo.Collection
}

// NewMongoFeedbackStore returns a FeedbackStore backed by the
// "feedbacks" collection.
func NewMongoFeedbackStore(db *mongo.Database) FeedbackStore {
	return &mongoFeedbackStore{coll: db.Collection("feedbacks")}
}

func (s *mongoFeedbackStore) Insert(ctx context.Context, fb models.Feedback) error {
	_, err := s.coll.InsertOne(ctx, fb)
	return err
}

// BuildFeedbackQuery translates a listing filter into a Mongo query
// document. Conditions combine with AND semantics.
func BuildFeedbackQuery(filter models.FeedbackFilter) bson.M {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.MinRating > 0 || filter.MaxRating > 0 {
		rating := bson.M{}
		if filter.MinRating > 0 {
			rating["$gte"] = filter.MinRating
		}
		if filter.MaxRating > 0 {
			rating["$lte"] = filter.MaxRating
		}
		query["rating"] = rating
	}
	return query
}

func (s *mongoFeedbackStore) List(ctx context.Context, filter models.FeedbackFilter) ([]models.FeedbackWithUser, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: BuildFeedbackQuery(filter)}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user",
			"foreignField": "_id",
			"as":           "user_info",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$user_info",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$sort", Value: bson.M{"created_at": -1}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.FeedbackWithUser
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *mongoFeedbackStore) Aggregate(ctx context.Context) (int64, float64, map[models.Category]int64, error) {
	total, err := s.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, nil, err
	}

	var avgRating float64
	if total > 0 {
		cursor, err := s.coll.Aggregate(ctx, mongo.Pipeline{
			{{Key: "$group", Value: bson.M{
				"_id":     nil,
				"average": bson.M{"$avg": "$rating"},
			}}},
		})
		if err != nil {
			return 0, 0, nil, err
		}
		var avgDocs []struct {
			Average float64 `bson:"average"`
		}
		if err := cursor.All(ctx, &avgDocs); err != nil {
			return 0, 0, nil, err
		}
		if len(avgDocs) > 0 {
			avgRating = avgDocs[0].Average
		}
	}

	cursor, err := s.coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$category",
			"count": bson.M{"$sum": 1},
		}}},
	})
	if err != nil {
		return 0, 0, nil, err
	}
	var catDocs []struct {
		Category models.Category `bson:"_id"`
		Count    int64           `bson:"count"`
	}
	if err := cursor.All(ctx, &catDocs); err != nil {
		return 0, 0, nil, err
	}

	byCategory := make(map[models.Category]int64, len(catDocs))
	for _, doc := range catDocs {
		byCategory[doc.Category] = doc.Count
	}

	return total, avgRating, byCategory, nil
}

func (s *mongoFeedbackStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	// DeletedCount is deliberately ignored: deleting an already-absent
	// record reports success to keep the operation idempotent.
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
