// internal/app/system/seed/seed.go

// Package seed loads demo programs into an empty database so a fresh
// install has content to show. It never touches a collection that
// already has documents.
package seed

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	programstore "github.com/aspirechess/aspirehub/internal/app/store/programs"
	"github.com/aspirechess/aspirehub/internal/domain/models"
)

// Programs inserts the demo branch programs when the programs collection
// is empty. Returns the number of records inserted.
func Programs(ctx context.Context, db *mongo.Database, logger *zap.Logger) (int, error) {
	store := programstore.New(db)

	n, err := store.Count(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.Info("seed: programs collection not empty, skipping",
			zap.Int64("existing", n))
		return 0, nil
	}

	inserted := 0
	for _, p := range demoPrograms() {
		if _, err := store.Create(ctx, p); err != nil {
			return inserted, err
		}
		inserted++
	}
	logger.Info("seed: demo programs loaded", zap.Int("count", inserted))
	return inserted, nil
}

func demoBatches() []models.Batch {
	return []models.Batch{
		{
			Type:     "Weekday Batch",
			Schedule: "Monday & Thursday",
			Slots: []models.Slot{
				{Time: "8-9 AM", Level: "Beginner Level"},
				{Time: "9-10 AM", Level: "Advanced Level"},
			},
		},
		{
			Type:     "Weekend Batch",
			Schedule: "Saturday & Sunday",
			Slots: []models.Slot{
				{Time: "8-9 AM", Level: "Beginner Level"},
				{Time: "9-10 AM", Level: "Advanced Level"},
			},
		},
	}
}

func demoPrograms() []models.Program {
	const whatsapp = "+917039184939"

	return []models.Program{
		{
			Branch:   "Kalamboli Branch",
			Location: "Main Branch",
			Batches:  demoBatches(),
			Features: []string{
				"Personal coach assignment",
				"Progress tracking",
				"Practice games",
				"Study materials",
			},
			ColorTheme:     "green",
			WhatsappNumber: whatsapp,
			DisplayOrder:   0,
			IsActive:       true,
		},
		{
			Branch:   "Kamothe Branch",
			Location: "Associated with Vibe House Studio",
			Batches:  demoBatches(),
			Features: []string{
				"Group coaching",
				"Interactive sessions",
				"Game analysis",
				"Tournament prep",
			},
			ColorTheme:     "blue",
			WhatsappNumber: whatsapp,
			DisplayOrder:   1,
			IsActive:       true,
		},
		{
			Branch:   "Roadpali Branch",
			Location: "Associated with Rhythm Revolution Studio",
			Batches:  demoBatches(),
			Features: []string{
				"Professional coaching",
				"Tactical training",
				"Position analysis",
				"Opening theory",
			},
			ColorTheme:     "purple",
			WhatsappNumber: whatsapp,
			DisplayOrder:   2,
			IsActive:       true,
		},
		{
			Branch:   "Online Mode",
			Location: "Learn from Anywhere",
			Batches:  demoBatches(),
			Features: []string{
				"1-on-1 coaching",
				"Flexible timings",
				"Digital resources",
				"Online tournaments",
			},
			ColorTheme:     "orange",
			WhatsappNumber: whatsapp,
			DisplayOrder:   3,
			IsActive:       true,
		},
	}
}
