package dto

import "github.com/yigit/mergington/internal/app/models"

// --- Request DTOs ---

// ParticipantRequest carries the student email for signup and unregister.
// It binds from the query string or from a JSON body. Only presence is checked
// here; the email format is checked once the activity is known to exist.
type ParticipantRequest struct {
	Email string `form:"email" json:"email" binding:"required" example:"newstudent@mergington.edu"`
}

// --- Response DTOs ---

// ActivityResponse represents one activity as listed by the API
type ActivityResponse struct {
	Description      string   `json:"description" example:"Learn strategies and compete in chess tournaments"`
	Schedule         string   `json:"schedule" example:"Fridays, 3:30 PM - 5:00 PM"`
	MaxParticipants  int      `json:"max_participants" example:"12"`
	Participants     []string `json:"participants"`
	ParticipantCount int      `json:"participant_count" example:"2"`
	SpotsLeft        int      `json:"spots_left" example:"10"`
}

// ActivityListResponse maps activity names to their details
type ActivityListResponse map[string]ActivityResponse

// NewActivityResponse converts a model into its API representation
func NewActivityResponse(a *models.Activity) ActivityResponse {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	return ActivityResponse{
		Description:      a.Description,
		Schedule:         a.Schedule,
		MaxParticipants:  a.MaxParticipants,
		Participants:     participants,
		ParticipantCount: a.ParticipantCount(),
		SpotsLeft:        a.SpotsLeft(),
	}
}

// NewActivityListResponse builds the name-keyed listing
func NewActivityListResponse(activities []*models.Activity) ActivityListResponse {
	resp := make(ActivityListResponse, len(activities))
	for _, a := range activities {
		resp[a.Name] = NewActivityResponse(a)
	}
	return resp
}
