// internal/app/features/programs/types.go
package programs

import (
	"github.com/aspirechess/aspirehub/internal/app/system/inputval"
	"github.com/aspirechess/aspirehub/internal/app/system/sanitize"
	"github.com/aspirechess/aspirehub/internal/domain/models"
)

// programPayload is the write body for create and update. Optional fields
// are pointers so an omitted value can be told apart from a zero one and
// given its documented default.
type programPayload struct {
	Branch         string         `json:"branch" validate:"required,min=2,max=100"`
	Location       string         `json:"location" validate:"required,min=2,max=200"`
	Batches        []batchPayload `json:"batches" validate:"required,min=1,dive"`
	Features       []string       `json:"features" validate:"required,min=1,dive,required,max=100"`
	ColorTheme     string         `json:"colorTheme" validate:"omitempty,oneof=green blue purple orange red indigo pink yellow"`
	WhatsappNumber string         `json:"whatsappNumber" validate:"required,whatsapp"`
	DisplayOrder   *int           `json:"displayOrder" validate:"omitempty,min=0"`
	IsActive       *bool          `json:"isActive"`
}

type batchPayload struct {
	Type     string        `json:"type" validate:"required"`
	Schedule string        `json:"schedule" validate:"required"`
	Slots    []slotPayload `json:"slots" validate:"required,min=1,dive"`
}

type slotPayload struct {
	Time  string `json:"time" validate:"required"`
	Level string `json:"level" validate:"required"`
}

// normalize strips markup and surrounding whitespace from every string
// field. Runs before validation so length and emptiness checks see the
// value that would actually be stored.
func (p *programPayload) normalize() {
	p.Branch = sanitize.Text(p.Branch)
	p.Location = sanitize.Text(p.Location)
	p.WhatsappNumber = sanitize.Text(p.WhatsappNumber)
	p.ColorTheme = sanitize.Text(p.ColorTheme)
	p.Features = sanitize.TextSlice(p.Features)
	for i := range p.Batches {
		b := &p.Batches[i]
		b.Type = sanitize.Text(b.Type)
		b.Schedule = sanitize.Text(b.Schedule)
		for j := range b.Slots {
			s := &b.Slots[j]
			s.Time = sanitize.Text(s.Time)
			s.Level = sanitize.Text(s.Level)
		}
	}
}

// toModel builds the domain record, applying defaults for omitted
// optional fields: colorTheme blue, displayOrder 0, isActive true.
func (p *programPayload) toModel() models.Program {
	batches := make([]models.Batch, len(p.Batches))
	for i, b := range p.Batches {
		slots := make([]models.Slot, len(b.Slots))
		for j, s := range b.Slots {
			slots[j] = models.Slot{Time: s.Time, Level: s.Level}
		}
		batches[i] = models.Batch{Type: b.Type, Schedule: b.Schedule, Slots: slots}
	}

	m := models.Program{
		Branch:         p.Branch,
		Location:       p.Location,
		Batches:        batches,
		Features:       p.Features,
		ColorTheme:     p.ColorTheme,
		WhatsappNumber: p.WhatsappNumber,
		IsActive:       true,
		DisplayOrder:   0,
	}
	if m.ColorTheme == "" {
		m.ColorTheme = models.DefaultColorTheme
	}
	if p.DisplayOrder != nil {
		m.DisplayOrder = *p.DisplayOrder
	}
	if p.IsActive != nil {
		m.IsActive = *p.IsActive
	}
	return m
}

// validate runs every request-level rule and returns the accumulated
// violations; it never stops at the first one.
func (p *programPayload) validate() inputval.Result {
	return inputval.Validate(p, programMessages)
}

var programMessages = inputval.Messages{
	"branch|required": "Branch name must be between 2 and 100 characters",
	"branch|min":      "Branch name must be between 2 and 100 characters",
	"branch|max":      "Branch name must be between 2 and 100 characters",

	"location|required": "Location must be between 2 and 200 characters",
	"location|min":      "Location must be between 2 and 200 characters",
	"location|max":      "Location must be between 2 and 200 characters",

	"batches|required": "At least one batch is required",
	"batches|min":      "At least one batch is required",

	"batches[].type|required":     "Batch type is required",
	"batches[].schedule|required": "Batch schedule is required",
	"batches[].slots|required":    "At least one slot is required per batch",
	"batches[].slots|min":         "At least one slot is required per batch",

	"batches[].slots[].time|required":  "Slot time is required",
	"batches[].slots[].level|required": "Slot level is required",

	"features|required": "At least one feature is required",
	"features|min":      "At least one feature is required",

	"features[]|required": "Feature cannot be empty",
	"features[]|max":      "Feature cannot exceed 100 characters",

	"colorTheme|oneof": "Invalid color theme",

	"whatsappNumber|required": "WhatsApp number is required",
	"whatsappNumber|whatsapp": "WhatsApp number must be in format +countrycode followed by 10 digits",

	"displayOrder|min": "Display order must be a non-negative integer",
}

// reorderPayload is the body for the bulk reorder operation. The pointer
// distinguishes a missing/null list from an empty one: the former is a
// malformed request, the latter a no-op.
type reorderPayload struct {
	ProgramIDs *[]string `json:"programIds"`
}
