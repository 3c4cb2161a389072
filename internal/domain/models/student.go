// internal/domain/models/student.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student is a featured academy student shown on the public site.
type Student struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	Name   string             `bson:"name" json:"name"`
	NameCI string             `bson:"name_ci" json:"-"`

	Title   string `bson:"title" json:"title"`     // e.g. "State Champion U-12"
	Program string `bson:"program" json:"program"` // branch/program label

	Rating     int `bson:"rating" json:"rating"`
	PeakRating int `bson:"peak_rating" json:"peakRating"`

	Achievements []string `bson:"achievements" json:"achievements"`
	JoinDate     string   `bson:"join_date" json:"joinDate"`
	Testimonial  string   `bson:"testimonial" json:"testimonial"`
	Image        string   `bson:"image" json:"image"`
	Bio          string   `bson:"bio" json:"bio"`

	IsActive     bool `bson:"is_active" json:"isActive"`
	DisplayOrder int  `bson:"display_order" json:"displayOrder"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
