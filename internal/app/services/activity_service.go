package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/mergington/internal/app/models"
	"github.com/yigit/mergington/internal/app/models/dto"
	"github.com/yigit/mergington/internal/app/repositories"
	"github.com/yigit/mergington/internal/observability"
	"github.com/yigit/mergington/internal/pkg/apperrors"
	"github.com/yigit/mergington/internal/pkg/validation"
)

// ActivityService defines the interface for roster operations
type ActivityService interface {
	ListActivities(ctx context.Context) (dto.ActivityListResponse, error)
	Signup(ctx context.Context, activityName, email string) (*dto.SuccessResponse, error)
	Unregister(ctx context.Context, activityName, email string) (*dto.SuccessResponse, error)
}

// activityServiceImpl implements ActivityService
type activityServiceImpl struct {
	activityRepo *repositories.ActivityRepository
	logger       zerolog.Logger
}

// NewActivityService creates a new ActivityService
func NewActivityService(activityRepo *repositories.ActivityRepository, logger zerolog.Logger) ActivityService {
	return &activityServiceImpl{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// ListActivities returns every activity with its participants
func (s *activityServiceImpl) ListActivities(ctx context.Context) (dto.ActivityListResponse, error) {
	activities, err := s.activityRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list activities")
		return nil, fmt.Errorf("error listing activities: %w", err)
	}

	s.logger.Debug().Int("count", len(activities)).Msg("Listed activities")
	return dto.NewActivityListResponse(activities), nil
}

// Signup enrolls a student in an activity
func (s *activityServiceImpl) Signup(ctx context.Context, activityName, email string) (*dto.SuccessResponse, error) {
	activity, err := s.enroll(ctx, activityName, email)
	if err != nil {
		observability.RecordSignup(outcomeOf(err))
		s.logger.Info().Err(err).
			Str("activity", activityName).
			Str("email", email).
			Msg("Signup rejected")
		return nil, err
	}

	observability.RecordSignup(observability.OutcomeSuccess)
	publishRoster(activity)
	s.logger.Info().
		Str("activity", activityName).
		Str("email", email).
		Int("participants", activity.ParticipantCount()).
		Msg("Student signed up")

	return &dto.SuccessResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activityName),
	}, nil
}

// Unregister removes a student from an activity
func (s *activityServiceImpl) Unregister(ctx context.Context, activityName, email string) (*dto.SuccessResponse, error) {
	activity, err := s.withdraw(ctx, activityName, email)
	if err != nil {
		observability.RecordUnregister(outcomeOf(err))
		s.logger.Info().Err(err).
			Str("activity", activityName).
			Str("email", email).
			Msg("Unregister rejected")
		return nil, err
	}

	observability.RecordUnregister(observability.OutcomeSuccess)
	publishRoster(activity)
	s.logger.Info().
		Str("activity", activityName).
		Str("email", email).
		Int("participants", activity.ParticipantCount()).
		Msg("Student unregistered")

	return &dto.SuccessResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activityName),
	}, nil
}

// checkRequest resolves the activity before looking at the email, so an unknown
// activity is reported as not found whatever the email looks like.
func (s *activityServiceImpl) checkRequest(ctx context.Context, activityName, email string) error {
	if _, err := s.activityRepo.Get(ctx, activityName); err != nil {
		return err
	}
	return validation.Email(email)
}

func (s *activityServiceImpl) enroll(ctx context.Context, activityName, email string) (*models.Activity, error) {
	if err := s.checkRequest(ctx, activityName, email); err != nil {
		return nil, err
	}
	return s.activityRepo.AddParticipant(ctx, activityName, email)
}

func (s *activityServiceImpl) withdraw(ctx context.Context, activityName, email string) (*models.Activity, error) {
	if err := s.checkRequest(ctx, activityName, email); err != nil {
		return nil, err
	}
	return s.activityRepo.RemoveParticipant(ctx, activityName, email)
}

// PublishRoster sets the roster gauges for every activity in repo
func PublishRoster(ctx context.Context, repo *repositories.ActivityRepository) error {
	activities, err := repo.List(ctx)
	if err != nil {
		return err
	}
	for _, a := range activities {
		publishRoster(a)
	}
	return nil
}

func publishRoster(a *models.Activity) {
	observability.SetRoster(a.Name, a.ParticipantCount(), a.MaxParticipants)
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrActivityNotFound):
		return observability.OutcomeNotFound
	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		return observability.OutcomeAlreadyRegistered
	case errors.Is(err, apperrors.ErrNotRegistered):
		return observability.OutcomeNotRegistered
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		return observability.OutcomeCapacityExceeded
	case errors.Is(err, apperrors.ErrValidationFailed):
		return observability.OutcomeInvalidEmail
	default:
		return observability.OutcomeError
	}
}
