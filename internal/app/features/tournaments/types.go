// internal/app/features/tournaments/types.go
package tournaments

import (
	"time"

	"github.com/aspirechess/aspirehub/internal/app/system/inputval"
	"github.com/aspirechess/aspirehub/internal/app/system/sanitize"
	"github.com/aspirechess/aspirehub/internal/domain/models"
)

type tournamentPayload struct {
	Name        string    `json:"name" validate:"required,min=2,max=200"`
	Category    string    `json:"category" validate:"required,max=50"`
	Description string    `json:"description" validate:"omitempty,max=2000"`
	Date        time.Time `json:"date" validate:"required"`
	TimeLabel   string    `json:"time" validate:"required,max=100"`

	Location string `json:"location" validate:"required,max=200"`
	Address  string `json:"address" validate:"omitempty,max=500"`

	TimeControl string `json:"timeControl" validate:"omitempty,max=50"`
	Format      string `json:"format" validate:"omitempty,max=100"`
	EntryFee    string `json:"entryFee" validate:"omitempty,max=50"`
	PrizePool   string `json:"prizePool" validate:"omitempty,max=50"`

	MaxParticipants     int `json:"maxParticipants" validate:"omitempty,min=0"`
	CurrentParticipants int `json:"currentParticipants" validate:"omitempty,min=0"`

	RegistrationLink string     `json:"registrationLink" validate:"omitempty,url,max=500"`
	ListUntil        *time.Time `json:"listUntil"`

	Winner       string `json:"winner" validate:"omitempty,max=100"`
	Participants int    `json:"participants" validate:"omitempty,min=0"`
	PosterURL    string `json:"posterUrl" validate:"omitempty,url,max=500"`

	DisplayOrder *int  `json:"displayOrder" validate:"omitempty,min=0"`
	IsActive     *bool `json:"isActive"`
}

func (p *tournamentPayload) normalize() {
	p.Name = sanitize.Text(p.Name)
	p.Category = sanitize.Text(p.Category)
	p.Description = sanitize.Text(p.Description)
	p.TimeLabel = sanitize.Text(p.TimeLabel)
	p.Location = sanitize.Text(p.Location)
	p.Address = sanitize.Text(p.Address)
	p.TimeControl = sanitize.Text(p.TimeControl)
	p.Format = sanitize.Text(p.Format)
	p.EntryFee = sanitize.Text(p.EntryFee)
	p.PrizePool = sanitize.Text(p.PrizePool)
	p.Winner = sanitize.Text(p.Winner)
}

func (p *tournamentPayload) toModel() models.Tournament {
	m := models.Tournament{
		Name:                p.Name,
		Category:            p.Category,
		Description:         p.Description,
		Date:                p.Date,
		TimeLabel:           p.TimeLabel,
		Location:            p.Location,
		Address:             p.Address,
		TimeControl:         p.TimeControl,
		Format:              p.Format,
		EntryFee:            p.EntryFee,
		PrizePool:           p.PrizePool,
		MaxParticipants:     p.MaxParticipants,
		CurrentParticipants: p.CurrentParticipants,
		RegistrationLink:    p.RegistrationLink,
		ListUntil:           p.ListUntil,
		Winner:              p.Winner,
		Participants:        p.Participants,
		PosterURL:           p.PosterURL,
		IsActive:            true,
		DisplayOrder:        0,
	}
	if p.DisplayOrder != nil {
		m.DisplayOrder = *p.DisplayOrder
	}
	if p.IsActive != nil {
		m.IsActive = *p.IsActive
	}
	return m
}

func (p *tournamentPayload) validate() inputval.Result {
	return inputval.Validate(p, tournamentMessages)
}

var tournamentMessages = inputval.Messages{
	"name|required": "Tournament name must be between 2 and 200 characters",
	"name|min":      "Tournament name must be between 2 and 200 characters",
	"name|max":      "Tournament name must be between 2 and 200 characters",

	"category|required": "Category is required",
	"category|max":      "Category cannot exceed 50 characters",

	"description|max": "Description cannot exceed 2000 characters",

	"date|required": "Tournament date is required",

	"time|required": "Tournament time is required",
	"time|max":      "Tournament time cannot exceed 100 characters",

	"location|required": "Location is required",
	"location|max":      "Location cannot exceed 200 characters",
	"address|max":       "Address cannot exceed 500 characters",

	"timeControl|max": "Time control cannot exceed 50 characters",
	"format|max":      "Format cannot exceed 100 characters",
	"entryFee|max":    "Entry fee cannot exceed 50 characters",
	"prizePool|max":   "Prize pool cannot exceed 50 characters",

	"maxParticipants|min":     "Max participants must be a non-negative integer",
	"currentParticipants|min": "Current participants must be a non-negative integer",

	"registrationLink|url": "Registration link must be a valid URL",
	"registrationLink|max": "Registration link cannot exceed 500 characters",

	"winner|max":       "Winner cannot exceed 100 characters",
	"participants|min": "Participants must be a non-negative integer",

	"posterUrl|url": "Poster URL must be a valid URL",
	"posterUrl|max": "Poster URL cannot exceed 500 characters",

	"displayOrder|min": "Display order must be a non-negative integer",
}
