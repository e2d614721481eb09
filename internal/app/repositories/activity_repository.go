package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/yigit/mergington/internal/app/models"
	"github.com/yigit/mergington/internal/pkg/apperrors"
)

// ActivityRepository holds the activity roster in memory.
// All mutations are serialized by mu so capacity checks and inserts are atomic.
type ActivityRepository struct {
	mu         sync.RWMutex
	activities map[string]*models.Activity
}

// NewActivityRepository creates an empty ActivityRepository
func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{
		activities: make(map[string]*models.Activity),
	}
}

// Load replaces the roster with the given activities.
// The roster is left untouched when any activity is invalid.
func (r *ActivityRepository) Load(ctx context.Context, activities []*models.Activity) error {
	next := make(map[string]*models.Activity, len(activities))
	for _, a := range activities {
		if err := checkActivity(a); err != nil {
			return err
		}
		if _, exists := next[a.Name]; exists {
			return apperrors.NewRosterError(fmt.Sprintf("duplicate activity %q", a.Name))
		}
		next[a.Name] = a.Clone()
	}

	r.mu.Lock()
	r.activities = next
	r.mu.Unlock()
	return nil
}

func checkActivity(a *models.Activity) error {
	if a == nil {
		return apperrors.NewRosterError("nil activity")
	}
	if a.Name == "" {
		return apperrors.NewRosterError("activity name is required")
	}
	if a.MaxParticipants <= 0 {
		return apperrors.NewRosterError(fmt.Sprintf("activity %q: max_participants must be positive", a.Name))
	}
	if len(a.Participants) > a.MaxParticipants {
		return apperrors.NewRosterError(fmt.Sprintf("activity %q: %d participants exceed capacity %d",
			a.Name, len(a.Participants), a.MaxParticipants))
	}
	seen := make(map[string]struct{}, len(a.Participants))
	for _, email := range a.Participants {
		if _, dup := seen[email]; dup {
			return apperrors.NewRosterError(fmt.Sprintf("activity %q: duplicate participant %q", a.Name, email))
		}
		seen[email] = struct{}{}
	}
	return nil
}

// List returns copies of all activities ordered by name
func (r *ActivityRepository) List(ctx context.Context) ([]*models.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activities := make([]*models.Activity, 0, len(r.activities))
	for _, a := range r.activities {
		activities = append(activities, a.Clone())
	}
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Name < activities[j].Name
	})
	return activities, nil
}

// Get returns a copy of the named activity
func (r *ActivityRepository) Get(ctx context.Context, name string) (*models.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return nil, apperrors.NewActivityNotFoundError(name)
	}
	return a.Clone(), nil
}

// AddParticipant enrolls email in the named activity and returns the updated activity
func (r *ActivityRepository) AddParticipant(ctx context.Context, name, email string) (*models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return nil, apperrors.NewActivityNotFoundError(name)
	}
	if a.HasParticipant(email) {
		return nil, fmt.Errorf("signup %s for %q: %w", email, name, apperrors.ErrAlreadyRegistered)
	}
	if a.IsFull() {
		return nil, fmt.Errorf("signup %s for %q: %w", email, name, apperrors.ErrCapacityExceeded)
	}

	a.Participants = append(a.Participants, email)
	return a.Clone(), nil
}

// RemoveParticipant drops email from the named activity and returns the updated activity
func (r *ActivityRepository) RemoveParticipant(ctx context.Context, name, email string) (*models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return nil, apperrors.NewActivityNotFoundError(name)
	}
	if !a.RemoveParticipant(email) {
		return nil, fmt.Errorf("unregister %s from %q: %w", email, name, apperrors.ErrNotRegistered)
	}
	return a.Clone(), nil
}

// Count returns the number of activities in the roster
func (r *ActivityRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.activities)
}
