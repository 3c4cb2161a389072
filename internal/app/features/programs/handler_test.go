package programs_test

import (
	"context"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/aspirechess/aspirehub/internal/app/features/programs"
	"github.com/aspirechess/aspirehub/internal/app/system/auth"
	"github.com/aspirechess/aspirehub/internal/testutil"
)

func newTestHandler(t *testing.T) (*programs.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	h := programs.NewHandler(db, zap.NewNop())
	return h, testutil.NewFixtures(t, db)
}

func testRouter(h *programs.Handler) http.Handler {
	return programs.Routes(h, auth.NewVerifier("test-secret"))
}

func TestListPublic_ExcludesInactive(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx := context.Background()

	fx.CreateProgram(ctx, "Kalamboli", "Sector 6, Kalamboli", 0)
	fx.CreateInactiveProgram(ctx, "Kamothe", "Sector 21, Kamothe", 1)

	req := testutil.NewRequest("GET", "/")
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var body struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
		Data    []struct {
			Branch   string `json:"branch"`
			IsActive bool   `json:"isActive"`
		} `json:"data"`
	}
	rec.DecodeBody(t, &body)

	if !body.Success {
		t.Error("expected success=true")
	}
	if body.Count != 1 || len(body.Data) != 1 {
		t.Fatalf("expected exactly one active program, got count=%d len=%d", body.Count, len(body.Data))
	}
	if body.Data[0].Branch != "Kalamboli" {
		t.Errorf("expected Kalamboli, got %q", body.Data[0].Branch)
	}
}

func TestListPublic_DisplayOrder(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx := context.Background()

	fx.CreateProgram(ctx, "Second", "Loc B", 1)
	fx.CreateProgram(ctx, "First", "Loc A", 0)
	fx.CreateProgram(ctx, "Third", "Loc C", 2)

	req := testutil.NewRequest("GET", "/")
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var body struct {
		Data []struct {
			Branch string `json:"branch"`
		} `json:"data"`
	}
	rec.DecodeBody(t, &body)

	got := make([]string, len(body.Data))
	for i, p := range body.Data {
		got[i] = p.Branch
	}
	want := []string{"First", "Second", "Third"}
	for i := range want {
		if i >= len(got) || got[i] != want[i] {
			t.Fatalf("order: got %v, want %v", got, want)
		}
	}
}

func TestGet_InvalidID(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewRequest("GET", "/not-a-hex-id")
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Invalid program ID")
}

func TestGet_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewRequest("GET", "/"+primitive.NewObjectID().Hex())
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Program not found")
}

func TestGet_ReturnsInactive(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx := context.Background()

	p := fx.CreateInactiveProgram(ctx, "Kamothe", "Sector 21, Kamothe", 0)

	req := testutil.NewRequest("GET", "/"+p.ID.Hex())
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Kamothe")
}

func TestListAdmin_RequiresAuth(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewRequest("GET", "/admin")
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusUnauthorized)
	rec.AssertContains(t, "No token, authorization denied")
}

func TestListAdmin_RejectsNonAdmin(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest("GET", "/admin", testutil.ViewerUser())
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusForbidden)
	rec.AssertContains(t, "Admin privileges required")
}

func TestListAdmin_SearchAndStatus(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx := context.Background()

	fx.CreateProgram(ctx, "Kalamboli", "Sector 6, Kalamboli", 0)
	fx.CreateProgram(ctx, "Kamothe", "Sector 21, Kamothe", 1)
	fx.CreateInactiveProgram(ctx, "Kharghar", "Sector 12, Kharghar", 2)

	cases := []struct {
		name  string
		query string
		want  int
	}{
		{"all", "/admin", 3},
		{"search branch", "/admin?search=kalamboli", 1},
		{"search location", "/admin?search=sector+21", 1},
		{"status active", "/admin?status=active", 2},
		{"status inactive", "/admin?status=inactive", 1},
		{"search plus status", "/admin?search=kh&status=inactive", 1},
		{"no match", "/admin?search=nowhere", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.NewAuthenticatedRequest("GET", tc.query, testutil.AdminUser())
			rec := testutil.NewRecorder()
			testRouter(h).ServeHTTP(rec, req)

			rec.AssertStatus(t, http.StatusOK)

			var body struct {
				Total int64 `json:"total"`
			}
			rec.DecodeBody(t, &body)
			if body.Total != int64(tc.want) {
				t.Errorf("total: got %d, want %d", body.Total, tc.want)
			}
		})
	}
}

func TestListAdmin_Pagination(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		fx.CreateProgram(ctx, "Branch", "Location", i)
	}

	req := testutil.NewAuthenticatedRequest("GET", "/admin?page=2&limit=5", testutil.AdminUser())
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var body struct {
		Count       int   `json:"count"`
		Total       int64 `json:"total"`
		TotalPages  int   `json:"totalPages"`
		CurrentPage int   `json:"currentPage"`
	}
	rec.DecodeBody(t, &body)

	if body.Count != 5 || body.Total != 12 || body.TotalPages != 3 || body.CurrentPage != 2 {
		t.Errorf("pagination: got count=%d total=%d pages=%d current=%d",
			body.Count, body.Total, body.TotalPages, body.CurrentPage)
	}
}

func validProgramBody() map[string]any {
	return map[string]any{
		"branch":   "Kalamboli",
		"location": "Sector 6, Kalamboli, Navi Mumbai",
		"batches": []map[string]any{{
			"type":     "Weekend",
			"schedule": "Sat-Sun",
			"slots": []map[string]any{
				{"time": "10:00 AM - 11:30 AM", "level": "Beginner"},
			},
		}},
		"features":       []string{"Certified coaches", "Small batches"},
		"whatsappNumber": "+911234567890",
	}
}

func TestCreate_AppliesDefaults(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.WithUser(
		testutil.NewJSONRequest(t, "POST", "/", validProgramBody()),
		testutil.AdminUser(),
	)
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusCreated)
	rec.AssertContains(t, "Program created successfully")

	var body struct {
		Data struct {
			ColorTheme   string `json:"colorTheme"`
			DisplayOrder int    `json:"displayOrder"`
			IsActive     bool   `json:"isActive"`
		} `json:"data"`
	}
	rec.DecodeBody(t, &body)

	if body.Data.ColorTheme != "blue" {
		t.Errorf("colorTheme default: got %q, want blue", body.Data.ColorTheme)
	}
	if body.Data.DisplayOrder != 0 {
		t.Errorf("displayOrder default: got %d, want 0", body.Data.DisplayOrder)
	}
	if !body.Data.IsActive {
		t.Error("isActive default: got false, want true")
	}
}

func TestCreate_ValidationErrors(t *testing.T) {
	h, _ := newTestHandler(t)

	body := validProgramBody()
	body["branch"] = "K"
	body["batches"] = []map[string]any{}
	body["whatsappNumber"] = "12345"

	req := testutil.WithUser(
		testutil.NewJSONRequest(t, "POST", "/", body),
		testutil.AdminUser(),
	)
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)

	var resp struct {
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	rec.DecodeBody(t, &resp)

	if resp.Message != "Validation failed" {
		t.Errorf("message: got %q", resp.Message)
	}

	wantByField := map[string]string{
		"branch":         "Branch name must be between 2 and 100 characters",
		"batches":        "At least one batch is required",
		"whatsappNumber": "WhatsApp number must be in format +countrycode followed by 10 digits",
	}
	got := map[string]string{}
	for _, e := range resp.Errors {
		got[e.Field] = e.Message
	}
	for field, msg := range wantByField {
		if got[field] != msg {
			t.Errorf("field %s: got %q, want %q", field, got[field], msg)
		}
	}
}

func TestCreate_NestedSlotError(t *testing.T) {
	h, _ := newTestHandler(t)

	body := validProgramBody()
	body["batches"] = []map[string]any{{
		"type":     "Weekend",
		"schedule": "Sat-Sun",
		"slots": []map[string]any{
			{"time": "", "level": "Beginner"},
		},
	}}

	req := testutil.WithUser(
		testutil.NewJSONRequest(t, "POST", "/", body),
		testutil.AdminUser(),
	)
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "batches[0].slots[0].time")
	rec.AssertContains(t, "Slot time is required")
}

func TestUpdate_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.WithUser(
		testutil.NewJSONRequest(t, "PUT", "/"+primitive.NewObjectID().Hex(), validProgramBody()),
		testutil.AdminUser(),
	)
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Program not found")
}

func TestUpdate_ReplacesDocument(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx := context.Background()

	p := fx.CreateProgram(ctx, "Kalamboli", "Sector 6, Kalamboli", 0)

	body := validProgramBody()
	body["branch"] = "Kalamboli Central"
	body["colorTheme"] = "purple"

	req := testutil.WithUser(
		testutil.NewJSONRequest(t, "PUT", "/"+p.ID.Hex(), body),
		testutil.AdminUser(),
	)
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Program updated successfully")
	rec.AssertContains(t, "Kalamboli Central")
	rec.AssertContains(t, "purple")
}

func TestToggleStatus_RoundTrip(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx := context.Background()

	p := fx.CreateProgram(ctx, "Kalamboli", "Sector 6, Kalamboli", 0)
	path := "/" + p.ID.Hex() + "/toggle-status"

	req := testutil.NewAuthenticatedRequest("PATCH", path, testutil.AdminUser())
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Program deactivated successfully")

	req = testutil.NewAuthenticatedRequest("PATCH", path, testutil.AdminUser())
	rec = testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Program activated successfully")
}

func TestDelete_ThenGone(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx := context.Background()

	p := fx.CreateProgram(ctx, "Kalamboli", "Sector 6, Kalamboli", 0)

	req := testutil.NewAuthenticatedRequest("DELETE", "/"+p.ID.Hex(), testutil.AdminUser())
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Program deleted successfully")

	req = testutil.NewRequest("GET", "/"+p.ID.Hex())
	rec = testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest("DELETE", "/"+primitive.NewObjectID().Hex(), testutil.AdminUser())
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
}

func TestReorder_AssignsIndexPositions(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx := context.Background()

	a := fx.CreateProgram(ctx, "A", "Loc A", 0)
	b := fx.CreateProgram(ctx, "B", "Loc B", 1)
	c := fx.CreateProgram(ctx, "C", "Loc C", 2)

	body := map[string]any{
		"programIds": []string{b.ID.Hex(), a.ID.Hex(), c.ID.Hex()},
	}
	req := testutil.WithUser(
		testutil.NewJSONRequest(t, "PATCH", "/reorder", body),
		testutil.AdminUser(),
	)
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Programs reordered successfully")

	req = testutil.NewRequest("GET", "/")
	rec = testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	var list struct {
		Data []struct {
			Branch       string `json:"branch"`
			DisplayOrder int    `json:"displayOrder"`
		} `json:"data"`
	}
	rec.DecodeBody(t, &list)

	want := []string{"B", "A", "C"}
	for i, p := range list.Data {
		if p.Branch != want[i] || p.DisplayOrder != i {
			t.Errorf("position %d: got %s order=%d, want %s order=%d",
				i, p.Branch, p.DisplayOrder, want[i], i)
		}
	}
}

func TestReorder_MissingList(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.WithUser(
		testutil.NewJSONRequest(t, "PATCH", "/reorder", map[string]any{}),
		testutil.AdminUser(),
	)
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Program IDs must be an array")
}

func TestReorder_MalformedID(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx := context.Background()

	a := fx.CreateProgram(ctx, "A", "Loc A", 0)

	body := map[string]any{
		"programIds": []string{a.ID.Hex(), "not-hex"},
	}
	req := testutil.WithUser(
		testutil.NewJSONRequest(t, "PATCH", "/reorder", body),
		testutil.AdminUser(),
	)
	rec := testutil.NewRecorder()
	testRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Invalid program ID")
}

func TestWriteEndpoints_RequireAuth(t *testing.T) {
	h, _ := newTestHandler(t)
	id := primitive.NewObjectID().Hex()

	cases := []struct {
		method string
		path   string
	}{
		{"POST", "/"},
		{"PUT", "/" + id},
		{"PATCH", "/" + id + "/toggle-status"},
		{"PATCH", "/reorder"},
		{"DELETE", "/" + id},
	}

	for _, tc := range cases {
		req := testutil.NewRequest(tc.method, tc.path)
		rec := testutil.NewRecorder()
		testRouter(h).ServeHTTP(rec, req)
		rec.AssertStatus(t, http.StatusUnauthorized)
	}
}
