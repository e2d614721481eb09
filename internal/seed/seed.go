package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	appModels "github.com/yigit/mergington/internal/app/models"
	appRepos "github.com/yigit/mergington/internal/app/repositories"
	"github.com/yigit/mergington/internal/pkg/apperrors"
	"github.com/yigit/mergington/internal/pkg/validation"
)

// RosterFile is the on-disk roster format
type RosterFile struct {
	Activities []RosterEntry `yaml:"activities" validate:"required,min=1,dive"`
}

// RosterEntry describes one seeded activity
type RosterEntry struct {
	Name            string   `yaml:"name" validate:"required,max=100"`
	Description     string   `yaml:"description" validate:"max=500"`
	Schedule        string   `yaml:"schedule" validate:"max=200"`
	MaxParticipants int      `yaml:"max_participants" validate:"gt=0,lte=1000"`
	Participants    []string `yaml:"participants" validate:"unique,dive,email"`
}

// CreateDefaultData loads the roster into repo: the YAML file at rosterPath
// when set, the built-in Mergington roster otherwise.
func CreateDefaultData(ctx context.Context, repo *appRepos.ActivityRepository, rosterPath string, lgr zerolog.Logger) error {
	var (
		activities []*appModels.Activity
		err        error
	)

	if rosterPath == "" {
		lgr.Info().Msg("Loading built-in activity roster...")
		activities = DefaultActivities()
	} else {
		lgr.Info().Str("path", rosterPath).Msg("Loading activity roster from file...")
		activities, err = LoadRosterFile(rosterPath)
		if err != nil {
			lgr.Error().Err(err).Str("path", rosterPath).Msg("Error reading roster file")
			return err
		}
	}

	if err := repo.Load(ctx, activities); err != nil {
		lgr.Error().Err(err).Msg("Error loading roster into store")
		return fmt.Errorf("failed to load roster: %w", err)
	}

	lgr.Info().Int("activities", len(activities)).Msg("Activity roster loaded.")
	return nil
}

// LoadRosterFile reads and validates a YAML roster
func LoadRosterFile(path string) ([]*appModels.Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	return ParseRoster(data)
}

// ParseRoster decodes and validates YAML roster data
func ParseRoster(data []byte) ([]*appModels.Activity, error) {
	var file RosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidRoster, "failed to parse roster: "+err.Error())
	}

	if err := validation.Struct(file); err != nil {
		return nil, apperrors.NewRosterError(err.Error())
	}

	activities := make([]*appModels.Activity, 0, len(file.Activities))
	for _, e := range file.Activities {
		if len(e.Participants) > e.MaxParticipants {
			return nil, apperrors.NewRosterError(fmt.Sprintf("activity %q: %d participants exceed capacity %d",
				e.Name, len(e.Participants), e.MaxParticipants))
		}
		participants := make([]string, len(e.Participants))
		copy(participants, e.Participants)
		activities = append(activities, &appModels.Activity{
			Name:            e.Name,
			Description:     e.Description,
			Schedule:        e.Schedule,
			MaxParticipants: e.MaxParticipants,
			Participants:    participants,
		})
	}
	return activities, nil
}

// DefaultActivities returns a fresh copy of the built-in roster
func DefaultActivities() []*appModels.Activity {
	return []*appModels.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Soccer Team",
			Description:     "Join the school soccer team and compete in matches",
			Schedule:        "Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"lucas@mergington.edu", "mia@mergington.edu"},
		},
		{
			Name:            "Basketball Club",
			Description:     "Practice basketball skills and play friendly games",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"liam@mergington.edu", "ava@mergington.edu"},
		},
		{
			Name:            "Art Workshop",
			Description:     "Explore painting, drawing, and sculpture techniques",
			Schedule:        "Mondays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"ella@mergington.edu", "noah@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Act, direct, and produce school plays and performances",
			Schedule:        "Tuesdays, 5:00 PM - 6:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"jack@mergington.edu", "grace@mergington.edu"},
		},
		{
			Name:            "Mathletes",
			Description:     "Compete in math competitions and solve challenging problems",
			Schedule:        "Fridays, 4:00 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"ben@mergington.edu", "chloe@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Conduct experiments and explore scientific concepts",
			Schedule:        "Wednesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 14,
			Participants:    []string{"ethan@mergington.edu", "zoe@mergington.edu"},
		},
	}
}
