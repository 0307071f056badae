package projects

import (
	"context"
	"fmt"
	"time"
)

// Seed loads the reference projects used by local runs and demos. Inserts
// are idempotent: seeding twice replaces the same two records.
func Seed(ctx context.Context, repo *Repository) error {
	demo := []*Project{
		{
			ID:              "project-1",
			Name:            "Sundarbans Mangrove Restoration",
			Location:        Coordinate{Lat: 21.9497, Lng: 89.1833},
			LocationName:    "Sundarbans, West Bengal",
			RestorationType: Reforestation,
			PlantationDate:  time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
			Description:     "Restoring the critical mangrove ecosystem in the Sundarbans delta to protect against cyclones and sequester carbon.",
			NGO: NGORef{
				ID:      "ngo_1",
				Name:    "Green Bengal Foundation",
				LogoURL: "https://picsum.photos/seed/ngo1/50/50",
			},
			Status:                 StatusVerified,
			ImageURL:               "https://picsum.photos/seed/sundarbans/800/600",
			ImageHint:              "mangrove forest",
			CreditsAvailable:       5000,
			NDVI:                   0.75,
			EstimatedCarbonCapture: 25.5,
		},
		{
			ID:              "project-2",
			Name:            "Kerala Backwaters Blue Carbon",
			Location:        Coordinate{Lat: 9.9312, Lng: 76.2673},
			LocationName:    "Kochi, Kerala",
			RestorationType: Reforestation,
			PlantationDate:  time.Date(2023, time.March, 10, 0, 0, 0, 0, time.UTC),
			Description:     "Preserving seagrass beds and mangroves along the Kerala coast to enhance marine biodiversity.",
			NGO: NGORef{
				ID:      "ngo_2",
				Name:    "Kerala Coastal Trust",
				LogoURL: "https://picsum.photos/seed/ngo2/50/50",
			},
			Status:                 StatusPendingVerification,
			ImageURL:               "https://picsum.photos/seed/kerala/800/600",
			ImageHint:              "kerala backwaters",
			CreditsAvailable:       0,
			NDVI:                   0.68,
			EstimatedCarbonCapture: 18.2,
		},
	}

	for _, p := range demo {
		if err := repo.Update(ctx, p); err != nil {
			return fmt.Errorf("seed project %s: %w", p.ID, err)
		}
	}
	return nil
}
