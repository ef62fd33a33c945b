package activities

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mergington-high/backend/internal/models"
)

// Roster is one activity together with its signed-up emails, in signup order.
type Roster struct {
	models.Activity
	Participants []string
}

// Repository handles activity and participant persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an activities repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListRosters returns every activity with its participant emails.
func (r *Repository) ListRosters(ctx context.Context) ([]Roster, error) {
	const q = `SELECT a.id, a.name, a.description, a.schedule, a.max_participants, p.email
		FROM activities a
		LEFT JOIN participants p ON p.activity_id = a.id
		ORDER BY a.id, p.id`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var list []Roster
	for rows.Next() {
		var a models.Activity
		var email *string
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Schedule, &a.MaxParticipants, &email); err != nil {
			return nil, fmt.Errorf("scan roster row: %w", err)
		}
		if n := len(list); n == 0 || list[n-1].ID != a.ID {
			list = append(list, Roster{Activity: a, Participants: []string{}})
		}
		if email != nil {
			cur := &list[len(list)-1]
			cur.Participants = append(cur.Participants, *email)
		}
	}
	return list, rows.Err()
}

// Signup registers email for the named activity. The whole check-then-insert
// runs in one transaction with the activity row locked, so two requests racing
// for the last seat cannot both commit; the unique (activity_id, email) pair
// backstops the duplicate check.
func (r *Repository) Signup(ctx context.Context, activityName, email string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin signup: %w", err)
	}
	defer tx.Rollback(ctx)

	var activityID int64
	var maxParticipants int
	err = tx.QueryRow(ctx, `SELECT id, max_participants FROM activities WHERE name = $1 FOR UPDATE`, activityName).
		Scan(&activityID, &maxParticipants)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrActivityNotFound
	}
	if err != nil {
		return fmt.Errorf("lookup activity: %w", err)
	}

	var signedUp bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM participants WHERE activity_id = $1 AND email = $2)`,
		activityID, email).Scan(&signedUp); err != nil {
		return fmt.Errorf("check existing signup: %w", err)
	}
	if signedUp {
		return ErrAlreadySignedUp
	}

	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM participants WHERE activity_id = $1`, activityID).Scan(&count); err != nil {
		return fmt.Errorf("count participants: %w", err)
	}
	if count >= maxParticipants {
		return ErrActivityFull
	}

	if _, err := tx.Exec(ctx, `INSERT INTO participants (email, activity_id) VALUES ($1, $2)`, email, activityID); err != nil {
		return fmt.Errorf("insert participant: %w", err)
	}
	return tx.Commit(ctx)
}

// Unregister removes email's signup for the named activity.
func (r *Repository) Unregister(ctx context.Context, activityName, email string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin unregister: %w", err)
	}
	defer tx.Rollback(ctx)

	var activityID int64
	err = tx.QueryRow(ctx, `SELECT id FROM activities WHERE name = $1`, activityName).Scan(&activityID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrActivityNotFound
	}
	if err != nil {
		return fmt.Errorf("lookup activity: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM participants WHERE activity_id = $1 AND email = $2`, activityID, email)
	if err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotSignedUp
	}
	return tx.Commit(ctx)
}
