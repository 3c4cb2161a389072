// internal/app/system/validators/validators.go
package validators

// Storage-level constraint enforcement. Each collection gets a
// JSON-Schema validator so a document violating the domain invariants is
// rejected by the server itself, independent of request-level checks.

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/aspirechess/aspirehub/internal/domain/models"
)

// EnsureAll creates collections (if missing) and tries to attach
// JSON-Schema validators. On servers that don't support collMod/validators
// (e.g. some DocumentDB versions), we log and skip gracefully.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	ensure := func(coll string, schema bson.M) {
		if _, err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			if isNoSuchCommand(err) || isNotImplemented(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	ensure("programs", programsSchema())
	ensure("students", studentsSchema())
	ensure("tournaments", tournamentsSchema())

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* ---------------------- collection helpers & logging ---------------------- */

func collectionExists(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// ensureCollection idempotently makes sure <name> exists.
func ensureCollection(ctx context.Context, db *mongo.Database, name string) (created bool, err error) {
	exists, listErr := collectionExists(ctx, db, name)
	if listErr == nil && exists {
		zap.L().Info("collection exists", zap.String("collection", name))
		return false, nil
	}
	if err := db.CreateCollection(ctx, name); err != nil {
		// NamespaceExists / already exists is fine (race or prior run).
		if isNamespaceExistsErr(err) {
			zap.L().Info("collection exists", zap.String("collection", name))
			return false, nil
		}
		zap.L().Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return true, nil
}

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	var out bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&out); err != nil {
		return err
	}
	zap.L().Info("validator ensured", zap.String("collection", name))
	return nil
}

/* ------------------------- error helpers ------------------------- */

// IsDocumentInvalid reports whether err is the server rejecting a write
// because the document failed schema validation (code 121).
func IsDocumentInvalid(err error) bool {
	if err == nil {
		return false
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 121 {
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 121 {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "document failed validation")
}

func isNamespaceExistsErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 48 || strings.Contains(strings.ToLower(ce.Message), "already exists")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}

func isNoSuchCommand(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 59 || strings.Contains(strings.ToLower(ce.Message), "no such command")) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "no such command")
}

func isNotImplemented(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 115 ||
		strings.Contains(strings.ToLower(ce.Message), "not implemented") ||
		strings.Contains(strings.ToLower(ce.Message), "not supported")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "not implemented") || strings.Contains(s, "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

func programsSchema() bson.M {
	themeEnum := bson.A{}
	for _, t := range models.ColorThemes {
		themeEnum = append(themeEnum, t)
	}

	slotSchema := bson.M{
		"bsonType": "object",
		"required": bson.A{"time", "level"},
		"properties": bson.M{
			"time":  bson.M{"bsonType": "string", "minLength": 1, "pattern": `.*\S.*`},
			"level": bson.M{"bsonType": "string", "minLength": 1, "pattern": `.*\S.*`},
		},
	}

	batchSchema := bson.M{
		"bsonType": "object",
		"required": bson.A{"type", "schedule", "slots"},
		"properties": bson.M{
			"type":     bson.M{"bsonType": "string", "minLength": 1, "pattern": `.*\S.*`},
			"schedule": bson.M{"bsonType": "string", "minLength": 1, "pattern": `.*\S.*`},
			"slots":    bson.M{"bsonType": "array", "minItems": 1, "items": slotSchema},
		},
	}

	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"branch", "branch_ci", "location", "batches", "features", "whatsapp_number", "is_active", "display_order"},
			"properties": bson.M{
				"branch":      bson.M{"bsonType": "string", "minLength": 2, "maxLength": 100},
				"branch_ci":   bson.M{"bsonType": "string", "minLength": 1},
				"location":    bson.M{"bsonType": "string", "minLength": 2, "maxLength": 200},
				"location_ci": bson.M{"bsonType": "string", "minLength": 1},
				"batches":     bson.M{"bsonType": "array", "minItems": 1, "items": batchSchema},
				"features": bson.M{
					"bsonType": "array",
					"minItems": 1,
					"items":    bson.M{"bsonType": "string", "minLength": 1, "maxLength": 100},
				},
				"color_theme":     bson.M{"enum": themeEnum},
				"is_active":       bson.M{"bsonType": "bool"},
				"display_order":   bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"whatsapp_number": bson.M{"bsonType": "string", "pattern": `^\+\d{1,4}\d{10}$`},
			},
		},
	}
}

func studentsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "name_ci", "is_active"},
			"properties": bson.M{
				"name":          bson.M{"bsonType": "string", "minLength": 2, "maxLength": 100},
				"name_ci":       bson.M{"bsonType": "string", "minLength": 1},
				"rating":        bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"peak_rating":   bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"is_active":     bson.M{"bsonType": "bool"},
				"display_order": bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
			},
		},
	}
}

func tournamentsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "name_ci", "date", "is_active"},
			"properties": bson.M{
				"name":                 bson.M{"bsonType": "string", "minLength": 2, "maxLength": 200},
				"name_ci":              bson.M{"bsonType": "string", "minLength": 1},
				"date":                 bson.M{"bsonType": "date"},
				"max_participants":     bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"current_participants": bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"is_active":            bson.M{"bsonType": "bool"},
				"display_order":        bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
			},
		},
	}
}
