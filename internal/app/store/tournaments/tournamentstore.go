// internal/app/store/tournaments/tournamentstore.go
package tournamentstore

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

var ErrDocumentInvalid = errors.New("tournament document failed collection validation")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("tournaments")}
}

// Public listings run soonest-first; the site splits upcoming from past
// at render time.
var dateSort = bson.D{
	{Key: "date", Value: 1},
	{Key: "created_at", Value: -1},
}

// AdminFilter matches search as a case-insensitive substring of name or
// location, narrowed by status (active/inactive; anything else means all).
func AdminFilter(search, status string) bson.M {
	filter := bson.M{}

	if search != "" {
		pattern := regexp.QuoteMeta(text.Fold(search))
		filter["$or"] = bson.A{
			bson.M{"name_ci": primitive.Regex{Pattern: pattern}},
			bson.M{"location": primitive.Regex{Pattern: pattern, Options: "i"}},
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

func (s *Store) FindActive(ctx context.Context) ([]models.Tournament, error) {
	return s.find(ctx, bson.M{"is_active": true}, options.Find().SetSort(dateSort))
}

func (s *Store) FindPage(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Tournament, error) {
	opts := options.Find().
		SetSort(dateSort).
		SetSkip(skip).
		SetLimit(limit)
	return s.find(ctx, filter, opts)
}

func (s *Store) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Tournament, error) {
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	tournaments := []models.Tournament{}
	if err := cur.All(ctx, &tournaments); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Tournament, error) {
	var t models.Tournament
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		return models.Tournament{}, err
	}
	return t, nil
}

func (s *Store) Create(ctx context.Context, t models.Tournament) (models.Tournament, error) {
	now := time.Now().UTC()
	t.ID = primitive.NewObjectID()
	t.NameCI = text.Fold(t.Name)
	t.CreatedAt = now
	t.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, t); err != nil {
		if validators.IsDocumentInvalid(err) {
			return models.Tournament{}, ErrDocumentInvalid
		}
		return models.Tournament{}, err
	}
	return t, nil
}

func (s *Store) Replace(ctx context.Context, id primitive.ObjectID, t models.Tournament) (models.Tournament, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Tournament{}, err
	}

	t.ID = existing.ID
	t.NameCI = text.Fold(t.Name)
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = time.Now().UTC()

	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": id}, t)
	if err != nil {
		if validators.IsDocumentInvalid(err) {
			return models.Tournament{}, ErrDocumentInvalid
		}
		return models.Tournament{}, err
	}
	if res.MatchedCount == 0 {
		return models.Tournament{}, mongo.ErrNoDocuments
	}
	return t, nil
}

func (s *Store) ToggleActive(ctx context.Context, id primitive.ObjectID) (models.Tournament, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Tournament{}, err
	}

	t.IsActive = !t.IsActive
	t.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"is_active":  t.IsActive,
		"updated_at": t.UpdatedAt,
	}}
	if _, err := s.c.UpdateByID(ctx, id, update); err != nil {
		return models.Tournament{}, err
	}
	return t, nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
