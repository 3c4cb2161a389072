// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensurePrograms(ctx, db); err != nil {
		problems = append(problems, "programs: "+err.Error())
	}
	if err := ensureStudents(ctx, db); err != nil {
		problems = append(problems, "students: "+err.Error())
	}
	if err := ensureTournaments(ctx, db); err != nil {
		problems = append(problems, "tournaments: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensurePrograms(ctx context.Context, db *mongo.Database) error {
	return ensureSet(ctx, db, "programs", []mongo.IndexModel{
		// Public list: active programs in display order.
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "display_order", Value: 1}}},
		// Admin search over folded branch/location.
		{Keys: bson.D{{Key: "branch_ci", Value: 1}}},
		{Keys: bson.D{{Key: "location_ci", Value: 1}}},
	})
}

func ensureStudents(ctx context.Context, db *mongo.Database) error {
	return ensureSet(ctx, db, "students", []mongo.IndexModel{
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "display_order", Value: 1}}},
		{Keys: bson.D{{Key: "name_ci", Value: 1}}},
	})
}

func ensureTournaments(ctx context.Context, db *mongo.Database) error {
	return ensureSet(ctx, db, "tournaments", []mongo.IndexModel{
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "name_ci", Value: 1}}},
	})
}

// ensureSet creates the desired indexes for one collection. CreateMany is
// a no-op for indexes that already exist with the same keys.
func ensureSet(ctx context.Context, db *mongo.Database, coll string, desired []mongo.IndexModel) error {
	if len(desired) == 0 {
		return nil
	}
	names, err := db.Collection(coll).Indexes().CreateMany(ctx, desired)
	if err != nil {
		return err
	}
	zap.L().Info("indexes ensured",
		zap.String("collection", coll),
		zap.Strings("indexes", names))
	return nil
}
