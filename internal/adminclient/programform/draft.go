// internal/adminclient/programform/draft.go

// Package programform maintains the in-memory draft an admin edits
// before submitting a program. The draft mirrors the program shape with
// mutable ordered batches, slots, and features; positions renumber on
// removal since none of the nested pieces has independent identity.
package programform

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aspirechess/aspirehub/internal/adminclient"
)

// SlotDraft is one editable time/level row.
type SlotDraft struct {
	Time  string `json:"time"`
	Level string `json:"level"`
}

// BatchDraft is one editable batch with its slots.
type BatchDraft struct {
	Type     string      `json:"type"`
	Schedule string      `json:"schedule"`
	Slots    []SlotDraft `json:"slots"`
}

// Draft is the editable program state. EditingID is empty for a new
// program and holds the record id when editing an existing one.
type Draft struct {
	EditingID      string       `json:"-"`
	Branch         string       `json:"branch"`
	Location       string       `json:"location"`
	Batches        []BatchDraft `json:"batches"`
	Features       []string     `json:"features"`
	ColorTheme     string       `json:"colorTheme,omitempty"`
	WhatsappNumber string       `json:"whatsappNumber"`
	DisplayOrder   *int         `json:"displayOrder,omitempty"`
	IsActive       *bool        `json:"isActive,omitempty"`
}

// NewDraft returns the default template a fresh form starts from: two
// batches (weekday and weekend) with two slots each, and one empty
// feature row for the admin to fill in.
func NewDraft() *Draft {
	return &Draft{
		Batches: []BatchDraft{
			{
				Type:     "Weekday Batch",
				Schedule: "",
				Slots:    []SlotDraft{{}, {}},
			},
			{
				Type:     "Weekend Batch",
				Schedule: "",
				Slots:    []SlotDraft{{}, {}},
			},
		},
		Features: []string{""},
	}
}

// AddFeature appends an empty feature row.
func (d *Draft) AddFeature() {
	d.Features = append(d.Features, "")
}

// RemoveFeature drops the feature at i. The last remaining row stays;
// a program needs at least one feature.
func (d *Draft) RemoveFeature(i int) {
	if len(d.Features) <= 1 || i < 0 || i >= len(d.Features) {
		return
	}
	d.Features = append(d.Features[:i], d.Features[i+1:]...)
}

// UpdateFeature sets the feature text at i.
func (d *Draft) UpdateFeature(i int, value string) {
	if i < 0 || i >= len(d.Features) {
		return
	}
	d.Features[i] = value
}

// AddBatch appends an empty batch with one empty slot.
func (d *Draft) AddBatch() {
	d.Batches = append(d.Batches, BatchDraft{Slots: []SlotDraft{{}}})
}

// RemoveBatch drops the batch at i. The last remaining batch stays.
func (d *Draft) RemoveBatch(i int) {
	if len(d.Batches) <= 1 || i < 0 || i >= len(d.Batches) {
		return
	}
	d.Batches = append(d.Batches[:i], d.Batches[i+1:]...)
}

// UpdateBatch sets a batch field ("type" or "schedule") at i.
func (d *Draft) UpdateBatch(i int, field, value string) {
	if i < 0 || i >= len(d.Batches) {
		return
	}
	switch field {
	case "type":
		d.Batches[i].Type = value
	case "schedule":
		d.Batches[i].Schedule = value
	}
}

// AddSlot appends an empty slot to the batch at bi.
func (d *Draft) AddSlot(bi int) {
	if bi < 0 || bi >= len(d.Batches) {
		return
	}
	d.Batches[bi].Slots = append(d.Batches[bi].Slots, SlotDraft{})
}

// RemoveSlot drops the slot at si in the batch at bi. The last slot of
// a batch stays.
func (d *Draft) RemoveSlot(bi, si int) {
	if bi < 0 || bi >= len(d.Batches) {
		return
	}
	slots := d.Batches[bi].Slots
	if len(slots) <= 1 || si < 0 || si >= len(slots) {
		return
	}
	d.Batches[bi].Slots = append(slots[:si], slots[si+1:]...)
}

// UpdateSlot sets a slot field ("time" or "level") at bi/si.
func (d *Draft) UpdateSlot(bi, si int, field, value string) {
	if bi < 0 || bi >= len(d.Batches) {
		return
	}
	if si < 0 || si >= len(d.Batches[bi].Slots) {
		return
	}
	switch field {
	case "time":
		d.Batches[bi].Slots[si].Time = value
	case "level":
		d.Batches[bi].Slots[si].Level = value
	}
}

// Normalize trims every string field and drops feature rows that are
// empty after trimming. Called before submit so the server never sees
// placeholder rows the admin left blank.
func (d *Draft) Normalize() {
	d.Branch = strings.TrimSpace(d.Branch)
	d.Location = strings.TrimSpace(d.Location)
	d.ColorTheme = strings.TrimSpace(d.ColorTheme)
	d.WhatsappNumber = strings.TrimSpace(d.WhatsappNumber)

	features := d.Features[:0]
	for _, f := range d.Features {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	d.Features = features

	for i := range d.Batches {
		b := &d.Batches[i]
		b.Type = strings.TrimSpace(b.Type)
		b.Schedule = strings.TrimSpace(b.Schedule)
		for j := range b.Slots {
			s := &b.Slots[j]
			s.Time = strings.TrimSpace(s.Time)
			s.Level = strings.TrimSpace(s.Level)
		}
	}
}

// SubmitResult reports the outcome of a submit attempt. On failure the
// draft is untouched so the admin can correct and resubmit; Errors
// carries every validation message the server returned.
type SubmitResult struct {
	Saved  bool
	Errors []adminclient.FieldError
}

// Submit normalizes the draft and sends it to the API: create when
// EditingID is empty, update otherwise. On success the draft resets to
// the default template; on validation failure it stays as submitted.
func (d *Draft) Submit(ctx context.Context, client *adminclient.Client, token string) (SubmitResult, error) {
	d.Normalize()

	var err error
	if d.EditingID == "" {
		_, err = client.CreateProgram(ctx, token, d)
	} else {
		_, err = client.UpdateProgram(ctx, token, d.EditingID, d)
	}

	if err != nil {
		var apiErr *adminclient.APIError
		if errors.As(err, &apiErr) && apiErr.IsValidation() {
			return SubmitResult{Errors: apiErr.Errors}, nil
		}
		return SubmitResult{}, err
	}

	*d = *NewDraft()
	return SubmitResult{Saved: true}, nil
}

// LoadProgram fetches an existing program into a draft for editing.
func LoadProgram(ctx context.Context, client *adminclient.Client, token, id string) (*Draft, error) {
	p, err := client.GetProgram(ctx, token, id)
	if err != nil {
		return nil, fmt.Errorf("load program: %w", err)
	}

	d := &Draft{
		EditingID:      p.ID.Hex(),
		Branch:         p.Branch,
		Location:       p.Location,
		Features:       append([]string{}, p.Features...),
		ColorTheme:     p.ColorTheme,
		WhatsappNumber: p.WhatsappNumber,
		DisplayOrder:   &p.DisplayOrder,
		IsActive:       &p.IsActive,
	}
	for _, b := range p.Batches {
		bd := BatchDraft{Type: b.Type, Schedule: b.Schedule}
		for _, s := range b.Slots {
			bd.Slots = append(bd.Slots, SlotDraft{Time: s.Time, Level: s.Level})
		}
		d.Batches = append(d.Batches, bd)
	}
	return d, nil
}
