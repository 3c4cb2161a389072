// internal/app/store/students/studentstore.go
package studentstore

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aspirechess/aspirehub/internal/app/system/validators"
	"github.com/aspirechess/aspirehub/internal/domain/models"
)

var ErrDocumentInvalid = errors.New("student document failed collection validation")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("students")}
}

var displayOrderSort = bson.D{
	{Key: "display_order", Value: 1},
	{Key: "created_at", Value: -1},
}

// AdminFilter matches search as a case-insensitive substring of name or
// program, narrowed by status (active/inactive; anything else means all).
func AdminFilter(search, status string) bson.M {
	filter := bson.M{}

	if search != "" {
		pattern := regexp.QuoteMeta(text.Fold(search))
		filter["$or"] = bson.A{
			bson.M{"name_ci": primitive.Regex{Pattern: pattern}},
			bson.M{"program": primitive.Regex{Pattern: pattern, Options: "i"}},
		}
	}

	switch status {
	case "active":
		filter["is_active"] = true
	case "inactive":
		filter["is_active"] = false
	}

	return filter
}

func (s *Store) FindActive(ctx context.Context) ([]models.Student, error) {
	return s.find(ctx, bson.M{"is_active": true}, options.Find().SetSort(displayOrderSort))
}

func (s *Store) FindPage(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Student, error) {
	opts := options.Find().
		SetSort(displayOrderSort).
		SetSkip(skip).
		SetLimit(limit)
	return s.find(ctx, filter, opts)
}

func (s *Store) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Student, error) {
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	students := []models.Student{}
	if err := cur.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Student, error) {
	var st models.Student
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&st); err != nil {
		return models.Student{}, err
	}
	return st, nil
}

func (s *Store) Create(ctx context.Context, st models.Student) (models.Student, error) {
	now := time.Now().UTC()
	st.ID = primitive.NewObjectID()
	st.NameCI = text.Fold(st.Name)
	st.CreatedAt = now
	st.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, st); err != nil {
		if validators.IsDocumentInvalid(err) {
			return models.Student{}, ErrDocumentInvalid
		}
		return models.Student{}, err
	}
	return st, nil
}

func (s *Store) Replace(ctx context.Context, id primitive.ObjectID, st models.Student) (models.Student, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Student{}, err
	}

	st.ID = existing.ID
	st.NameCI = text.Fold(st.Name)
	st.CreatedAt = existing.CreatedAt
	st.UpdatedAt = time.Now().UTC()

	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": id}, st)
	if err != nil {
		if validators.IsDocumentInvalid(err) {
			return models.Student{}, ErrDocumentInvalid
		}
		return models.Student{}, err
	}
	if res.MatchedCount == 0 {
		return models.Student{}, mongo.ErrNoDocuments
	}
	return st, nil
}

func (s *Store) ToggleActive(ctx context.Context, id primitive.ObjectID) (models.Student, error) {
	st, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Student{}, err
	}

	st.IsActive = !st.IsActive
	st.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"is_active":  st.IsActive,
		"updated_at": st.UpdatedAt,
	}}
	if _, err := s.c.UpdateByID(ctx, id, update); err != nil {
		return models.Student{}, err
	}
	return st, nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
