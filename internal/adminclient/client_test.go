package adminclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aspirechess/aspirehub/internal/adminclient"
)

func TestListPrograms_SendsTokenAndQuery(t *testing.T) {
	var gotAuth, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true, "count": 0, "total": 0,
			"totalPages": 0, "currentPage": 1, "data": []any{},
		})
	}))
	defer srv.Close()

	c := adminclient.New(srv.URL, nil)
	page, err := c.ListPrograms(context.Background(), "tok123", 2, 10, "kamothe", "active")
	if err != nil {
		t.Fatalf("ListPrograms failed: %v", err)
	}

	if gotAuth != "Bearer tok123" {
		t.Errorf("auth header: got %q", gotAuth)
	}
	for _, want := range []string{"page=2", "limit=10", "search=kamothe", "status=active"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}
	if page.CurrentPage != 1 {
		t.Errorf("currentPage: got %d", page.CurrentPage)
	}
}

func TestCreateProgram_ValidationErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "Validation failed",
			"errors": []map[string]string{
				{"field": "branch", "message": "Branch name must be between 2 and 100 characters"},
				{"field": "whatsappNumber", "message": "WhatsApp number is required"},
			},
		})
	}))
	defer srv.Close()

	c := adminclient.New(srv.URL, nil)
	_, err := c.CreateProgram(context.Background(), "tok", map[string]any{"branch": "K"})
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *adminclient.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if !apiErr.IsValidation() || len(apiErr.Errors) != 2 {
		t.Errorf("expected 2 field errors, got %+v", apiErr.Errors)
	}
	if apiErr.Errors[0].Field != "branch" {
		t.Errorf("first error field: got %q", apiErr.Errors[0].Field)
	}
}

func TestUnauthorizedHandlerInvoked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false, "message": "Token is not valid",
		})
	}))
	defer srv.Close()

	var handled bool
	c := adminclient.New(srv.URL, func(e *adminclient.APIError) {
		handled = true
		if e.Message != "Token is not valid" {
			t.Errorf("handler message: got %q", e.Message)
		}
	})

	err := c.DeleteProgram(context.Background(), "stale", "abc")
	if err == nil {
		t.Fatal("expected error")
	}
	if !handled {
		t.Error("expected unauthorized handler to run")
	}
}

func TestReorderPrograms_Body(t *testing.T) {
	var got struct {
		ProgramIDs []string `json:"programIds"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true, "message": "Programs reordered successfully",
		})
	}))
	defer srv.Close()

	c := adminclient.New(srv.URL, nil)
	if err := c.ReorderPrograms(context.Background(), "tok", []string{"b", "a", "c"}); err != nil {
		t.Fatalf("ReorderPrograms failed: %v", err)
	}
	if len(got.ProgramIDs) != 3 || got.ProgramIDs[0] != "b" {
		t.Errorf("body: got %v", got.ProgramIDs)
	}
}
