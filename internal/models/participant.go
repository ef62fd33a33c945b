package models

// Participant links a student email to one activity. An email may appear in
// many activities but at most once per activity.
type Participant struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	ActivityID int64  `json:"activity_id"`
}
