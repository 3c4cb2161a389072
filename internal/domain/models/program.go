// internal/domain/models/program.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Program represents one training branch/location offered by the academy.
//
// Batches (and their slots) are embedded value collections owned by the
// program document: they have no identity of their own, and their stored
// order is the display order. Deleting a program removes them with it.
//
// BranchCI and LocationCI hold case/diacritic-folded copies of Branch and
// Location so admin search can match substrings without a collation.
type Program struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Branch   string             `bson:"branch" json:"branch"`
	BranchCI string             `bson:"branch_ci" json:"-"`
	Location string             `bson:"location" json:"location"`
	LocationCI string           `bson:"location_ci" json:"-"`

	Batches  []Batch  `bson:"batches" json:"batches"`
	Features []string `bson:"features" json:"features"`

	ColorTheme     string `bson:"color_theme" json:"colorTheme"`
	IsActive       bool   `bson:"is_active" json:"isActive"`
	DisplayOrder   int    `bson:"display_order" json:"displayOrder"`
	WhatsappNumber string `bson:"whatsapp_number" json:"whatsappNumber"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Batch is a recurring session grouping inside a program
// (e.g., "Weekday Batch" on "Monday & Thursday").
type Batch struct {
	Type     string `bson:"type" json:"type"`
	Schedule string `bson:"schedule" json:"schedule"`
	Slots    []Slot `bson:"slots" json:"slots"`
}

// Slot is a single time/level offering inside a batch. Time and Level are
// free-text labels; no overlap or capacity checking is done on them.
type Slot struct {
	Time  string `bson:"time" json:"time"`
	Level string `bson:"level" json:"level"`
}
