package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivityCapacity(t *testing.T) {
	a := &Activity{Name: "Gym Class", MaxParticipants: 2, Participants: []string{"john@mergington.edu"}}

	assert.Equal(t, 1, a.ParticipantCount())
	assert.Equal(t, 1, a.SpotsLeft())
	assert.False(t, a.IsFull())

	a.Participants = append(a.Participants, "olivia@mergington.edu")
	assert.Zero(t, a.SpotsLeft())
	assert.True(t, a.IsFull())
}

func TestActivityCloneIsDeep(t *testing.T) {
	a := &Activity{Name: "Art Workshop", MaxParticipants: 3, Participants: []string{"a@x.io"}}
	c := a.Clone()

	c.Participants[0] = "b@x.io"
	c.MaxParticipants = 1
	assert.Equal(t, "a@x.io", a.Participants[0])
	assert.Equal(t, 3, a.MaxParticipants)

	empty := (&Activity{Name: "Empty"}).Clone()
	assert.NotNil(t, empty.Participants)
}

func TestActivityRemoveParticipant(t *testing.T) {
	a := &Activity{MaxParticipants: 5, Participants: []string{"a@x.io", "b@x.io", "c@x.io"}}

	assert.True(t, a.RemoveParticipant("b@x.io"))
	assert.Equal(t, []string{"a@x.io", "c@x.io"}, a.Participants)
	assert.False(t, a.HasParticipant("b@x.io"))

	assert.False(t, a.RemoveParticipant("b@x.io"))
	assert.Len(t, a.Participants, 2)
}
