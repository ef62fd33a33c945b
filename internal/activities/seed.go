package activities

import (
	"context"
	"fmt"

	"github.com/mergington-high/backend/internal/models"
)

// defaultActivities is inserted on first startup against an empty store.
var defaultActivities = []models.Activity{
	{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
	},
	{
		Name:            "Programming Class",
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
	},
	{
		Name:            "Gym Class",
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
	},
}

// SeedDefaults inserts the default activities if the store holds none.
// The unique name column makes a racing second seeder a no-op rather than a
// source of duplicates.
func (r *Repository) SeedDefaults(ctx context.Context) error {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM activities`).Scan(&count); err != nil {
		return fmt.Errorf("count activities: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, a := range defaultActivities {
		_, err := r.pool.Exec(ctx, `INSERT INTO activities (name, description, schedule, max_participants)
			VALUES ($1, $2, $3, $4) ON CONFLICT (name) DO NOTHING`,
			a.Name, a.Description, a.Schedule, a.MaxParticipants)
		if err != nil {
			return fmt.Errorf("seed activity %q: %w", a.Name, err)
		}
	}
	return nil
}
