package bootstrap

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/aspirechess/aspirehub/internal/app/system/seed"
	"github.com/aspirechess/aspirehub/internal/testutil"
)

func TestSeedPrograms_EmptyDatabase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	n, err := seed.Programs(ctx, db, zap.NewNop())
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4 demo programs, got %d", n)
	}

	count, err := db.Collection("programs").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 4 {
		t.Errorf("expected 4 documents, got %d", count)
	}
}

func TestSeedPrograms_SkipsNonEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateProgram(ctx, "Existing", "Somewhere", 0)

	n, err := seed.Programs(ctx, db, zap.NewNop())
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected no inserts into non-empty collection, got %d", n)
	}

	count, err := db.Collection("programs").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 document, got %d", count)
	}
}
