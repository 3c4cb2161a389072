// internal/app/store/programs/programstore.go
package programstore

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

// ErrDocumentInvalid signals that the server-side schema rejected the
// document. It is distinct from a malformed request: by the time a write
// reaches the store the payload was already request-validated, so this
// surfaces drift between the two layers.
var ErrDocumentInvalid = errors.New("program document failed collection validation")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("programs")}
}

// displayOrderSort is the canonical listing order: display_order
// ascending, ties broken by newest first.
var displayOrderSort = bson.D{
	{Key: "display_order", Value: 1},
	{Key: "created_at", Value: -1},
}

// AdminFilter builds the admin list filter. search matches a
// case-insensitive substring of branch or location; status narrows to
// active/inactive, anything else means all.
func AdminFilter(search, status string) bson.M {
	filter := bson.M{}

	if search != "" {
		pattern := regexp.QuoteMeta(text.Fold(search))
		filter["$or"] = bson.A{
			bson.M{"branch_ci": primitive.Regex{Pattern: pattern}},
			bson.M{"location_ci": primitive.Regex{Pattern: pattern}},
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

// FindActive returns all publicly visible programs in display order.
func (s *Store) FindActive(ctx context.Context) ([]models.Program, error) {
	return s.find(ctx, bson.M{"is_active": true}, options.Find().SetSort(displayOrderSort))
}

// FindPage returns one admin page of programs matching filter.
func (s *Store) FindPage(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Program, error) {
	opts := options.Find().
		SetSort(displayOrderSort).
		SetSkip(skip).
		SetLimit(limit)
	return s.find(ctx, filter, opts)
}

func (s *Store) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Program, error) {
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	programs := []models.Program{}
	if err := cur.All(ctx, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

// Count returns the number of programs matching filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Program, error) {
	var p models.Program
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return models.Program{}, err
	}
	return p, nil
}

// Create inserts a new program, assigning identity, folded search fields,
// the default color theme, and timestamps.
func (s *Store) Create(ctx context.Context, p models.Program) (models.Program, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.BranchCI = text.Fold(p.Branch)
	p.LocationCI = text.Fold(p.Location)
	if p.ColorTheme == "" {
		p.ColorTheme = models.DefaultColorTheme
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		if validators.IsDocumentInvalid(err) {
			return models.Program{}, ErrDocumentInvalid
		}
		return models.Program{}, err
	}
	return p, nil
}

// Replace overwrites the stored document with p, keeping the original
// identity and creation time. Concurrent replacements are last-write-wins.
// Returns mongo.ErrNoDocuments when id doesn't exist.
func (s *Store) Replace(ctx context.Context, id primitive.ObjectID, p models.Program) (models.Program, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Program{}, err
	}

	p.ID = existing.ID
	p.BranchCI = text.Fold(p.Branch)
	p.LocationCI = text.Fold(p.Location)
	if p.ColorTheme == "" {
		p.ColorTheme = models.DefaultColorTheme
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": id}, p)
	if err != nil {
		if validators.IsDocumentInvalid(err) {
			return models.Program{}, ErrDocumentInvalid
		}
		return models.Program{}, err
	}
	if res.MatchedCount == 0 {
		return models.Program{}, mongo.ErrNoDocuments
	}
	return p, nil
}

// ToggleActive flips is_active and returns the updated program.
// Returns mongo.ErrNoDocuments when id doesn't exist.
func (s *Store) ToggleActive(ctx context.Context, id primitive.ObjectID) (models.Program, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Program{}, err
	}

	p.IsActive = !p.IsActive
	p.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"is_active":  p.IsActive,
		"updated_at": p.UpdatedAt,
	}}
	if _, err := s.c.UpdateByID(ctx, id, update); err != nil {
		return models.Program{}, err
	}
	return p, nil
}

// SetDisplayOrder assigns a new display position to one program. Returns
// the number of documents matched (0 when id doesn't exist).
func (s *Store) SetDisplayOrder(ctx context.Context, id primitive.ObjectID, order int) (int64, error) {
	update := bson.M{"$set": bson.M{
		"display_order": order,
		"updated_at":    time.Now().UTC(),
	}}
	res, err := s.c.UpdateByID(ctx, id, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Delete hard-deletes a program (its batches, slots, and features are
// embedded, so they go with it). Returns the number deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
