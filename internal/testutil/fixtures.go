package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aspirechess/aspirehub/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateProgram inserts a valid program with one batch and one slot,
// active at the given display order. Returns the stored record.
func (f *Fixtures) CreateProgram(ctx context.Context, branch, location string, order int) models.Program {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Program{
		ID:         primitive.NewObjectID(),
		Branch:     branch,
		BranchCI:   text.Fold(branch),
		Location:   location,
		LocationCI: text.Fold(location),
		Batches: []models.Batch{{
			Type:     "Weekend",
			Schedule: "Sat-Sun",
			Slots:    []models.Slot{{Time: "10:00 AM - 11:30 AM", Level: "Beginner"}},
		}},
		Features:       []string{"Certified coaches"},
		ColorTheme:     models.DefaultColorTheme,
		IsActive:       true,
		DisplayOrder:   order,
		WhatsappNumber: "+911234567890",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := f.db.Collection("programs").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test program: %v", err)
	}
	return p
}

// CreateInactiveProgram inserts a program with is_active false.
func (f *Fixtures) CreateInactiveProgram(ctx context.Context, branch, location string, order int) models.Program {
	f.t.Helper()

	p := f.CreateProgram(ctx, branch, location, order)
	p.IsActive = false
	update := bson.M{"$set": bson.M{"is_active": false}}
	if _, err := f.db.Collection("programs").UpdateByID(ctx, p.ID, update); err != nil {
		f.t.Fatalf("failed to deactivate test program: %v", err)
	}
	return p
}

// CreateStudent inserts an active student for listing tests.
func (f *Fixtures) CreateStudent(ctx context.Context, name, program string, order int) models.Student {
	f.t.Helper()

	now := time.Now().UTC()
	s := models.Student{
		ID:           primitive.NewObjectID(),
		Name:         name,
		NameCI:       text.Fold(name),
		Title:        "State Champion",
		Program:      program,
		Rating:       1450,
		PeakRating:   1500,
		Achievements: []string{"District U-13 winner"},
		JoinDate:     "2023",
		IsActive:     true,
		DisplayOrder: order,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("students").InsertOne(ctx, s); err != nil {
		f.t.Fatalf("failed to create test student: %v", err)
	}
	return s
}

// CreateTournament inserts an active tournament dated as given.
func (f *Fixtures) CreateTournament(ctx context.Context, name string, date time.Time, order int) models.Tournament {
	f.t.Helper()

	now := time.Now().UTC()
	tn := models.Tournament{
		ID:           primitive.NewObjectID(),
		Name:         name,
		NameCI:       text.Fold(name),
		Category:     "open",
		Date:         date,
		TimeLabel:    "9:00 AM",
		Location:     "Academy Hall",
		TimeControl:  "15+10",
		Format:       "Swiss, 7 rounds",
		EntryFee:     "₹500",
		IsActive:     true,
		DisplayOrder: order,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("tournaments").InsertOne(ctx, tn); err != nil {
		f.t.Fatalf("failed to create test tournament: %v", err)
	}
	return tn
}
