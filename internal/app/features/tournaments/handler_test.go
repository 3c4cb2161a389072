package tournaments_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/aspirechess/aspirehub/internal/app/features/tournaments"
	"github.com/aspirechess/aspirehub/internal/app/system/auth"
	"github.com/aspirechess/aspirehub/internal/testutil"
)

func newTestHandler(t *testing.T) (*tournaments.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return tournaments.NewHandler(db, zap.NewNop()), testutil.NewFixtures(t, db)
}

func testRouter(h *tournaments.Handler) http.Handler {
	return tournaments.Routes(h, auth.NewVerifier("test-secret"))
}

func validTournamentBody() map[string]any {
	return map[string]any{
		"name":     "Navi Mumbai Rapid Open",
		"category": "rapid",
		"date":     time.Now().UTC().Add(14 * 24 * time.Hour).Format(time.RFC3339),
		"time":     "9:00 AM onwards",
		"location": "Academy Hall, Kalamboli",
	}
}

func TestListPublic_SortsByDate(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx := context.Background()

	now := time.Now().UTC()
	fx.CreateTournament(ctx, "Later", now.Add(30*24*time.Hour), 0)
	fx.CreateTournament(ctx, "Sooner", now.Add(7*24*time.Hour), 1)

	req := testutil.NewRequest("GET", "/")
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var body struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	rec.DecodeBody(t, &body)

	if len(body.Data) != 2 || body.Data[0].Name != "Sooner" {
		t.Errorf("expected soonest-first order, got %+v", body.Data)
	}
}

func TestListPublic_HidesLapsedListings(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx := context.Background()

	now := time.Now().UTC()
	kept := fx.CreateTournament(ctx, "Recent", now.Add(-7*24*time.Hour), 0)
	keepUntil := now.Add(7 * 24 * time.Hour)
	update := bson.M{"$set": bson.M{"list_until": keepUntil}}
	if _, err := fx.DB().Collection("tournaments").UpdateByID(ctx, kept.ID, update); err != nil {
		t.Fatalf("failed to set list_until: %v", err)
	}

	lapsed := fx.CreateTournament(ctx, "Old", now.Add(-60*24*time.Hour), 1)
	gone := now.Add(-30 * 24 * time.Hour)
	update = bson.M{"$set": bson.M{"list_until": gone}}
	if _, err := fx.DB().Collection("tournaments").UpdateByID(ctx, lapsed.ID, update); err != nil {
		t.Fatalf("failed to set list_until: %v", err)
	}

	req := testutil.NewRequest("GET", "/")
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	var body struct {
		Count int `json:"count"`
		Data  []struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	rec.DecodeBody(t, &body)

	if body.Count != 1 || body.Data[0].Name != "Recent" {
		t.Errorf("expected only the unexpired listing, got %+v", body.Data)
	}
}

func TestCreate_RequiresAuth(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/", validTournamentBody())
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusUnauthorized)
}

func TestCreate_Validation(t *testing.T) {
	h, _ := newTestHandler(t)

	body := validTournamentBody()
	delete(body, "date")
	body["location"] = ""
	body["registrationLink"] = "not a url"

	req := testutil.WithUser(
		testutil.NewJSONRequest(t, "POST", "/", body),
		testutil.AdminUser(),
	)
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Tournament date is required")
	rec.AssertContains(t, "Location is required")
	rec.AssertContains(t, "Registration link must be a valid URL")
}

func TestCreate_Success(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.WithUser(
		testutil.NewJSONRequest(t, "POST", "/", validTournamentBody()),
		testutil.AdminUser(),
	)
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusCreated)
	rec.AssertContains(t, "Tournament created successfully")
}

func TestToggleStatus_RoundTrip(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx := context.Background()

	tn := fx.CreateTournament(ctx, "Open", time.Now().UTC().Add(24*time.Hour), 0)
	path := "/" + tn.ID.Hex() + "/toggle-status"

	req := testutil.NewAuthenticatedRequest("PATCH", path, testutil.AdminUser())
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Tournament deactivated successfully")

	req = testutil.NewAuthenticatedRequest("PATCH", path, testutil.AdminUser())
	rec = testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)
	rec.AssertContains(t, "Tournament activated successfully")
}

func TestListAdmin_StatusFilter(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx := context.Background()

	now := time.Now().UTC()
	fx.CreateTournament(ctx, "Listed", now.Add(24*time.Hour), 0)
	hidden := fx.CreateTournament(ctx, "Hidden", now.Add(48*time.Hour), 1)
	update := bson.M{"$set": bson.M{"is_active": false}}
	if _, err := fx.DB().Collection("tournaments").UpdateByID(ctx, hidden.ID, update); err != nil {
		t.Fatalf("failed to hide tournament: %v", err)
	}

	req := testutil.NewAuthenticatedRequest("GET", "/admin?status=inactive", testutil.AdminUser())
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	var body struct {
		Total int64 `json:"total"`
	}
	rec.DecodeBody(t, &body)
	if body.Total != 1 {
		t.Errorf("total: got %d, want 1", body.Total)
	}
}
