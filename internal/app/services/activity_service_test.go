package services

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/mergington/internal/app/models"
	"github.com/yigit/mergington/internal/app/repositories"
	"github.com/yigit/mergington/internal/observability"
	"github.com/yigit/mergington/internal/pkg/apperrors"
	"github.com/yigit/mergington/internal/pkg/logger"
)

func newTestService(t *testing.T) (ActivityService, *repositories.ActivityRepository) {
	t.Helper()
	repo := repositories.NewActivityRepository()
	require.NoError(t, repo.Load(context.Background(), []*models.Activity{
		{
			Name:            "Drama Club",
			Description:     "Act, direct, and produce school plays and performances",
			Schedule:        "Tuesdays, 5:00 PM - 6:30 PM",
			MaxParticipants: 3,
			Participants:    []string{"jack@mergington.edu", "grace@mergington.edu"},
		},
	}))
	return NewActivityService(repo, logger.Nop()), repo
}

const (
	signupsMetric         = "mergington_roster_signups_total"
	unregistrationsMetric = "mergington_roster_unregistrations_total"
	participantsMetric    = "mergington_roster_participants"
)

// metricValue reads one sample from the default registry, 0 when absent
func metricValue(t *testing.T, name, label, value string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() != label || lp.GetValue() != value {
					continue
				}
				if c := m.GetCounter(); c != nil {
					return c.GetValue()
				}
				return m.GetGauge().GetValue()
			}
		}
	}
	return 0
}

func signups(t *testing.T, outcome string) float64 {
	t.Helper()
	return metricValue(t, signupsMetric, "outcome", outcome)
}

func unregistrations(t *testing.T, outcome string) float64 {
	t.Helper()
	return metricValue(t, unregistrationsMetric, "outcome", outcome)
}

func TestListActivities(t *testing.T) {
	svc, _ := newTestService(t)

	list, err := svc.ListActivities(context.Background())
	require.NoError(t, err)
	require.Contains(t, list, "Drama Club")

	drama := list["Drama Club"]
	assert.Equal(t, "Tuesdays, 5:00 PM - 6:30 PM", drama.Schedule)
	assert.Equal(t, 3, drama.MaxParticipants)
	assert.Equal(t, 2, drama.ParticipantCount)
	assert.Equal(t, 1, drama.SpotsLeft)
	assert.Equal(t, []string{"jack@mergington.edu", "grace@mergington.edu"}, drama.Participants)
}

func TestSignupMessageAndMetrics(t *testing.T) {
	svc, _ := newTestService(t)
	before := signups(t, observability.OutcomeSuccess)

	resp, err := svc.Signup(context.Background(), "Drama Club", "temp@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, "Signed up temp@mergington.edu for Drama Club", resp.Message)

	assert.Equal(t, before+1, signups(t, observability.OutcomeSuccess))
	assert.Equal(t, float64(3), metricValue(t, participantsMetric, "activity", "Drama Club"))
}

func TestSignupRejectionsAreCounted(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		activity string
		email    string
		target   error
		outcome  string
	}{
		{"unknown activity", "Nonexistent Club", "student@mergington.edu", apperrors.ErrActivityNotFound, observability.OutcomeNotFound},
		{"duplicate", "Drama Club", "jack@mergington.edu", apperrors.ErrAlreadyRegistered, observability.OutcomeAlreadyRegistered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := signups(t, tt.outcome)
			_, err := svc.Signup(ctx, tt.activity, tt.email)
			require.ErrorIs(t, err, tt.target)
			assert.Equal(t, before+1, signups(t, tt.outcome))
		})
	}
}

func TestSignupWhenFull(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Drama Club", "third@mergington.edu")
	require.NoError(t, err)

	before := signups(t, observability.OutcomeCapacityExceeded)
	_, err = svc.Signup(ctx, "Drama Club", "fourth@mergington.edu")
	require.ErrorIs(t, err, apperrors.ErrCapacityExceeded)
	assert.Equal(t, before+1, signups(t, observability.OutcomeCapacityExceeded))

	drama, err := repo.Get(ctx, "Drama Club")
	require.NoError(t, err)
	assert.Equal(t, 3, drama.ParticipantCount())
}

func TestUnregister(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	before := unregistrations(t, observability.OutcomeSuccess)
	resp, err := svc.Unregister(ctx, "Drama Club", "jack@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, "Unregistered jack@mergington.edu from Drama Club", resp.Message)
	assert.Equal(t, before+1, unregistrations(t, observability.OutcomeSuccess))

	drama, err := repo.Get(ctx, "Drama Club")
	require.NoError(t, err)
	assert.False(t, drama.HasParticipant("jack@mergington.edu"))
}

func TestUnregisterNotRegistered(t *testing.T) {
	svc, _ := newTestService(t)

	before := unregistrations(t, observability.OutcomeNotRegistered)
	_, err := svc.Unregister(context.Background(), "Drama Club", "nobody@mergington.edu")
	require.ErrorIs(t, err, apperrors.ErrNotRegistered)
	assert.Equal(t, before+1, unregistrations(t, observability.OutcomeNotRegistered))
}

func TestPublishRoster(t *testing.T) {
	_, repo := newTestService(t)

	require.NoError(t, PublishRoster(context.Background(), repo))
	assert.Equal(t, float64(2), metricValue(t, participantsMetric, "activity", "Drama Club"))
}

func TestUnknownActivityWinsOverMalformedEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Nonexistent Club", "not-an-email")
	require.ErrorIs(t, err, apperrors.ErrActivityNotFound)

	_, err = svc.Unregister(ctx, "Nonexistent Club", "not-an-email")
	require.ErrorIs(t, err, apperrors.ErrActivityNotFound)
}

func TestMalformedEmailLeavesRosterUnchanged(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Drama Club", "grace-at-mergington")
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	drama, err := repo.Get(ctx, "Drama Club")
	require.NoError(t, err)
	assert.Equal(t, 2, drama.ParticipantCount())
}

func TestNewServices(t *testing.T) {
	repos := repositories.NewRepositories()
	require.NoError(t, repos.ActivityRepository.Load(context.Background(), []*models.Activity{
		{Name: "Art Workshop", MaxParticipants: 2},
	}))

	svcs := NewServices(repos, logger.Nop())
	resp, err := svcs.ActivityService.Signup(context.Background(), "Art Workshop", "amelia@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, "Signed up amelia@mergington.edu for Art Workshop", resp.Message)
}
