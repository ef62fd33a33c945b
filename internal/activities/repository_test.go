package activities

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington-high/backend/pkg/database"
)

// newTestRepository connects to the database named by TEST_DATABASE_URL and
// resets both tables. Tests are skipped when no test database is available.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, database.Migrate(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE participants, activities RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return NewRepository(pool)
}

func insertActivity(t *testing.T, r *Repository, name string, maxParticipants int) {
	t.Helper()
	_, err := r.pool.Exec(context.Background(),
		`INSERT INTO activities (name, max_participants) VALUES ($1, $2)`, name, maxParticipants)
	require.NoError(t, err)
}

func rosterByName(t *testing.T, r *Repository, name string) Roster {
	t.Helper()
	rosters, err := r.ListRosters(context.Background())
	require.NoError(t, err)
	for _, ros := range rosters {
		if ros.Name == name {
			return ros
		}
	}
	t.Fatalf("activity %q not listed", name)
	return Roster{}
}

func TestSeedDefaultsIdempotent(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, r.SeedDefaults(ctx))
	require.NoError(t, r.SeedDefaults(ctx))

	rosters, err := r.ListRosters(ctx)
	require.NoError(t, err)
	require.Len(t, rosters, 3)
	assert.Equal(t, "Chess Club", rosters[0].Name)
	assert.Equal(t, 12, rosters[0].MaxParticipants)
	assert.Equal(t, "Programming Class", rosters[1].Name)
	assert.Equal(t, "Gym Class", rosters[2].Name)
}

func TestSignupRoundTrip(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	insertActivity(t, r, "Chess Club", 12)

	require.NoError(t, r.Signup(ctx, "Chess Club", "a@x.com"))
	assert.Equal(t, []string{"a@x.com"}, rosterByName(t, r, "Chess Club").Participants)

	require.NoError(t, r.Unregister(ctx, "Chess Club", "a@x.com"))
	assert.Empty(t, rosterByName(t, r, "Chess Club").Participants)
}

func TestSignupDuplicate(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	insertActivity(t, r, "Chess Club", 12)

	require.NoError(t, r.Signup(ctx, "Chess Club", "a@x.com"))
	require.ErrorIs(t, r.Signup(ctx, "Chess Club", "a@x.com"), ErrAlreadySignedUp)
	assert.Len(t, rosterByName(t, r, "Chess Club").Participants, 1)
}

func TestSignupCapacity(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	insertActivity(t, r, "Art Club", 3)

	for i := 0; i < 3; i++ {
		require.NoError(t, r.Signup(ctx, "Art Club", fmt.Sprintf("s%d@x.com", i)))
	}
	require.ErrorIs(t, r.Signup(ctx, "Art Club", "late@x.com"), ErrActivityFull)
	assert.Len(t, rosterByName(t, r, "Art Club").Participants, 3)
}

func TestSignupUnknownActivityRepo(t *testing.T) {
	r := newTestRepository(t)
	require.ErrorIs(t, r.Signup(context.Background(), "Drama Club", "a@x.com"), ErrActivityNotFound)
}

func TestUnregisterErrorsRepo(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	insertActivity(t, r, "Chess Club", 12)

	require.ErrorIs(t, r.Unregister(ctx, "Drama Club", "a@x.com"), ErrActivityNotFound)
	require.ErrorIs(t, r.Unregister(ctx, "Chess Club", "a@x.com"), ErrNotSignedUp)
}

func TestParticipantsListedInSignupOrder(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	insertActivity(t, r, "Chess Club", 12)

	emails := []string{"c@x.com", "a@x.com", "b@x.com"}
	for _, e := range emails {
		require.NoError(t, r.Signup(ctx, "Chess Club", e))
	}
	assert.Equal(t, emails, rosterByName(t, r, "Chess Club").Participants)
}
