package programform_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aspirechess/aspirehub/internal/adminclient"
	"github.com/aspirechess/aspirehub/internal/adminclient/programform"
)

func TestNewDraft_DefaultTemplate(t *testing.T) {
	d := programform.NewDraft()

	if len(d.Batches) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(d.Batches))
	}
	for i, b := range d.Batches {
		if len(b.Slots) != 2 {
			t.Errorf("batch %d: expected 2 slots, got %d", i, len(b.Slots))
		}
	}
	if len(d.Features) != 1 {
		t.Errorf("expected 1 feature row, got %d", len(d.Features))
	}
	if d.EditingID != "" {
		t.Error("new draft should not carry an editing id")
	}
}

func TestFeatureOperations(t *testing.T) {
	d := programform.NewDraft()

	d.UpdateFeature(0, "Certified coaches")
	d.AddFeature()
	d.UpdateFeature(1, "Tournament prep")

	if len(d.Features) != 2 || d.Features[1] != "Tournament prep" {
		t.Fatalf("features: got %v", d.Features)
	}

	d.RemoveFeature(0)
	if len(d.Features) != 1 || d.Features[0] != "Tournament prep" {
		t.Errorf("after remove: got %v", d.Features)
	}

	// The last feature row never goes away.
	d.RemoveFeature(0)
	if len(d.Features) != 1 {
		t.Errorf("expected last feature row to remain, got %v", d.Features)
	}
}

func TestBatchAndSlotOperations(t *testing.T) {
	d := programform.NewDraft()

	d.AddBatch()
	if len(d.Batches) != 3 {
		t.Fatalf("expected 3 batches, got %d", len(d.Batches))
	}
	d.UpdateBatch(2, "type", "Evening Batch")
	d.UpdateBatch(2, "schedule", "Tue & Fri")
	if d.Batches[2].Type != "Evening Batch" || d.Batches[2].Schedule != "Tue & Fri" {
		t.Errorf("batch fields: got %+v", d.Batches[2])
	}

	d.AddSlot(2)
	if len(d.Batches[2].Slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(d.Batches[2].Slots))
	}
	d.UpdateSlot(2, 1, "time", "6-7 PM")
	d.UpdateSlot(2, 1, "level", "Intermediate")
	if d.Batches[2].Slots[1].Time != "6-7 PM" {
		t.Errorf("slot time: got %q", d.Batches[2].Slots[1].Time)
	}

	d.RemoveSlot(2, 0)
	if len(d.Batches[2].Slots) != 1 || d.Batches[2].Slots[0].Level != "Intermediate" {
		t.Errorf("after slot remove: got %+v", d.Batches[2].Slots)
	}

	// The last slot of a batch never goes away.
	d.RemoveSlot(2, 0)
	if len(d.Batches[2].Slots) != 1 {
		t.Error("expected last slot to remain")
	}

	d.RemoveBatch(2)
	if len(d.Batches) != 2 {
		t.Errorf("after batch remove: got %d batches", len(d.Batches))
	}
}

func TestNormalize_TrimsAndDropsEmptyFeatures(t *testing.T) {
	d := programform.NewDraft()
	d.Branch = "  Kalamboli  "
	d.Features = []string{" Coaches ", "   ", "Analysis"}
	d.Batches[0].Schedule = " Mon & Thu "

	d.Normalize()

	if d.Branch != "Kalamboli" {
		t.Errorf("branch: got %q", d.Branch)
	}
	if len(d.Features) != 2 || d.Features[0] != "Coaches" || d.Features[1] != "Analysis" {
		t.Errorf("features: got %v", d.Features)
	}
	if d.Batches[0].Schedule != "Mon & Thu" {
		t.Errorf("schedule: got %q", d.Batches[0].Schedule)
	}
}

func fillValid(d *programform.Draft) {
	d.Branch = "Kalamboli"
	d.Location = "Sector 6, Kalamboli"
	d.WhatsappNumber = "+917039184939"
	d.Features = []string{"Certified coaches"}
	for i := range d.Batches {
		d.Batches[i].Schedule = "Mon & Thu"
		for j := range d.Batches[i].Slots {
			d.Batches[i].Slots[j].Time = "8-9 AM"
			d.Batches[i].Slots[j].Level = "Beginner"
		}
	}
}

func TestSubmit_CreateResetsDraft(t *testing.T) {
	var method, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true, "message": "Program created successfully",
			"data": map[string]any{"branch": "Kalamboli"},
		})
	}))
	defer srv.Close()

	client := adminclient.New(srv.URL, nil)
	d := programform.NewDraft()
	fillValid(d)

	res, err := d.Submit(context.Background(), client, "tok")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !res.Saved {
		t.Error("expected Saved=true")
	}
	if method != "POST" || path != "/api/programs" {
		t.Errorf("request: got %s %s", method, path)
	}
	if d.Branch != "" || len(d.Batches) != 2 || len(d.Features) != 1 {
		t.Error("expected draft reset to the default template")
	}
}

func TestSubmit_UpdateUsesEditingID(t *testing.T) {
	var method, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true, "message": "Program updated successfully",
		})
	}))
	defer srv.Close()

	client := adminclient.New(srv.URL, nil)
	d := programform.NewDraft()
	fillValid(d)
	d.EditingID = "66f000000000000000000001"

	res, err := d.Submit(context.Background(), client, "tok")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !res.Saved {
		t.Error("expected Saved=true")
	}
	if method != "PUT" || path != "/api/programs/66f000000000000000000001" {
		t.Errorf("request: got %s %s", method, path)
	}
}

func TestSubmit_ValidationFailureKeepsDraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "Validation failed",
			"errors": []map[string]string{
				{"field": "whatsappNumber", "message": "WhatsApp number is required"},
			},
		})
	}))
	defer srv.Close()

	client := adminclient.New(srv.URL, nil)
	d := programform.NewDraft()
	fillValid(d)
	d.WhatsappNumber = ""

	res, err := d.Submit(context.Background(), client, "tok")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if res.Saved {
		t.Error("expected Saved=false")
	}
	if len(res.Errors) != 1 || res.Errors[0].Field != "whatsappNumber" {
		t.Errorf("errors: got %+v", res.Errors)
	}
	if d.Branch != "Kalamboli" {
		t.Error("expected draft to be kept on validation failure")
	}
}
