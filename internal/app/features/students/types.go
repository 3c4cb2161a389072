// internal/app/features/students/types.go
package students

import (
	"github.com/aspirechess/aspirehub/internal/app/system/inputval"
	"github.com/aspirechess/aspirehub/internal/app/system/sanitize"
	"github.com/aspirechess/aspirehub/internal/domain/models"
)

type studentPayload struct {
	Name         string   `json:"name" validate:"required,min=2,max=100"`
	Title        string   `json:"title" validate:"required,max=100"`
	Program      string   `json:"program" validate:"required,max=100"`
	Rating       int      `json:"rating" validate:"omitempty,min=0,max=4000"`
	PeakRating   int      `json:"peakRating" validate:"omitempty,min=0,max=4000"`
	Achievements []string `json:"achievements" validate:"omitempty,dive,required,max=200"`
	JoinDate     string   `json:"joinDate" validate:"required,max=50"`
	Testimonial  string   `json:"testimonial" validate:"omitempty,max=1000"`
	Image        string   `json:"image" validate:"omitempty,max=500"`
	Bio          string   `json:"bio" validate:"omitempty,max=2000"`
	DisplayOrder *int     `json:"displayOrder" validate:"omitempty,min=0"`
	IsActive     *bool    `json:"isActive"`
}

func (p *studentPayload) normalize() {
	p.Name = sanitize.Text(p.Name)
	p.Title = sanitize.Text(p.Title)
	p.Program = sanitize.Text(p.Program)
	p.JoinDate = sanitize.Text(p.JoinDate)
	p.Testimonial = sanitize.Text(p.Testimonial)
	p.Image = sanitize.Text(p.Image)
	p.Bio = sanitize.Text(p.Bio)
	p.Achievements = sanitize.TextSlice(p.Achievements)
}

func (p *studentPayload) toModel() models.Student {
	m := models.Student{
		Name:         p.Name,
		Title:        p.Title,
		Program:      p.Program,
		Rating:       p.Rating,
		PeakRating:   p.PeakRating,
		Achievements: p.Achievements,
		JoinDate:     p.JoinDate,
		Testimonial:  p.Testimonial,
		Image:        p.Image,
		Bio:          p.Bio,
		IsActive:     true,
		DisplayOrder: 0,
	}
	if p.DisplayOrder != nil {
		m.DisplayOrder = *p.DisplayOrder
	}
	if p.IsActive != nil {
		m.IsActive = *p.IsActive
	}
	return m
}

func (p *studentPayload) validate() inputval.Result {
	return inputval.Validate(p, studentMessages)
}

var studentMessages = inputval.Messages{
	"name|required": "Student name must be between 2 and 100 characters",
	"name|min":      "Student name must be between 2 and 100 characters",
	"name|max":      "Student name must be between 2 and 100 characters",

	"title|required": "Title is required",
	"title|max":      "Title cannot exceed 100 characters",

	"program|required": "Program is required",
	"program|max":      "Program cannot exceed 100 characters",

	"rating|min":     "Rating must be between 0 and 4000",
	"rating|max":     "Rating must be between 0 and 4000",
	"peakRating|min": "Peak rating must be between 0 and 4000",
	"peakRating|max": "Peak rating must be between 0 and 4000",

	"achievements[]|required": "Achievement cannot be empty",
	"achievements[]|max":      "Achievement cannot exceed 200 characters",

	"joinDate|required": "Join date is required",
	"joinDate|max":      "Join date cannot exceed 50 characters",

	"testimonial|max": "Testimonial cannot exceed 1000 characters",
	"image|max":       "Image URL cannot exceed 500 characters",
	"bio|max":         "Bio cannot exceed 2000 characters",

	"displayOrder|min": "Display order must be a non-negative integer",
}
