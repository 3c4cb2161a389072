// internal/domain/models/tournament.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tournament is an academy tournament listing, upcoming or past.
// Poster images are uploaded and stored elsewhere; only the URL lives here.
type Tournament struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	Name   string             `bson:"name" json:"name"`
	NameCI string             `bson:"name_ci" json:"-"`

	Category    string    `bson:"category" json:"category"` // e.g. "Rapid", "Classical"
	Description string    `bson:"description" json:"description"`
	Date        time.Time `bson:"date" json:"date"`
	TimeLabel   string    `bson:"time_label" json:"time"` // display label, e.g. "9:30 AM onwards"

	Location string `bson:"location" json:"location"`
	Address  string `bson:"address" json:"address"`

	TimeControl string `bson:"time_control" json:"timeControl"`
	Format      string `bson:"format" json:"format"`
	EntryFee    string `bson:"entry_fee" json:"entryFee"`
	PrizePool   string `bson:"prize_pool" json:"prizePool"`

	MaxParticipants     int `bson:"max_participants" json:"maxParticipants"`
	CurrentParticipants int `bson:"current_participants" json:"currentParticipants"`

	RegistrationLink string     `bson:"registration_link" json:"registrationLink"`
	ListUntil        *time.Time `bson:"list_until,omitempty" json:"listUntil,omitempty"`

	// Filled in once the tournament is over.
	Winner       string `bson:"winner,omitempty" json:"winner,omitempty"`
	Participants int    `bson:"participants,omitempty" json:"participants,omitempty"`

	PosterURL string `bson:"poster_url,omitempty" json:"posterUrl,omitempty"`

	IsActive     bool `bson:"is_active" json:"isActive"`
	DisplayOrder int  `bson:"display_order" json:"displayOrder"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsUpcoming reports whether the tournament date is still in the future
// relative to now.
func (t *Tournament) IsUpcoming(now time.Time) bool {
	return t.Date.After(now)
}
