package activities

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mergington-high/backend/pkg/response"
)

// Store is the persistence surface the handlers use. *Repository implements it.
type Store interface {
	ListRosters(ctx context.Context) ([]Roster, error)
	Signup(ctx context.Context, activityName, email string) error
	Unregister(ctx context.Context, activityName, email string) error
}

// Detail is the per-activity value in the GET /activities response map.
type Detail struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Handler handles activity HTTP endpoints.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler creates an activities handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, logger: logger}
}

// List handles GET /activities. Returns a map keyed by activity name.
func (h *Handler) List(c *gin.Context) {
	rosters, err := h.store.ListRosters(c.Request.Context())
	if err != nil {
		h.logger.Error("list activities failed", zap.Error(err))
		response.Internal(c, "failed to list activities")
		return
	}
	out := make(map[string]Detail, len(rosters))
	for _, r := range rosters {
		out[r.Name] = Detail{
			Description:     r.Description,
			Schedule:        r.Schedule,
			MaxParticipants: r.MaxParticipants,
			Participants:    r.Participants,
		}
	}
	response.OK(c, out)
}

// Signup handles POST /activities/:name/signup?email=...
func (h *Handler) Signup(c *gin.Context) {
	name := c.Param("name")
	email := c.Query("email")
	if email == "" {
		response.BadRequest(c, "email is required")
		return
	}

	err := h.store.Signup(c.Request.Context(), name, email)
	switch {
	case err == nil:
		response.Message(c, fmt.Sprintf("Signed up %s for %s", email, name))
	case errors.Is(err, ErrActivityNotFound):
		response.NotFound(c, "Activity not found")
	case errors.Is(err, ErrAlreadySignedUp):
		response.BadRequest(c, "Student is already signed up")
	case errors.Is(err, ErrActivityFull):
		response.BadRequest(c, "Activity is full")
	default:
		h.logger.Error("signup failed", zap.Error(err), zap.String("activity", name))
		response.Internal(c, "failed to sign up")
	}
}

// Unregister handles DELETE /activities/:name/unregister?email=...
func (h *Handler) Unregister(c *gin.Context) {
	name := c.Param("name")
	email := c.Query("email")
	if email == "" {
		response.BadRequest(c, "email is required")
		return
	}

	err := h.store.Unregister(c.Request.Context(), name, email)
	switch {
	case err == nil:
		response.Message(c, fmt.Sprintf("Unregistered %s from %s", email, name))
	case errors.Is(err, ErrActivityNotFound):
		response.NotFound(c, "Activity not found")
	case errors.Is(err, ErrNotSignedUp):
		response.BadRequest(c, "Student is not signed up for this activity")
	default:
		h.logger.Error("unregister failed", zap.Error(err), zap.String("activity", name))
		response.Internal(c, "failed to unregister")
	}
}
