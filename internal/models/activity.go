package models

// Activity is a school-offered extracurricular with a capacity limit.
// Name is the external-facing key for every endpoint and never changes.
type Activity struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Schedule        string `json:"schedule"`
	MaxParticipants int    `json:"max_participants"`
}
