package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services/dto"
)

func TestContactLifecycle(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.services.ContactService.Create(&dto.CreateContactRequest{
		Name:    "Ngozi Eze",
		Email:   "ngozi@example.com",
		Subject: "Partnership",
		Message: "We would like to discuss a partnership.",
		Reason:  "business",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusNew, created.Status)
	assert.Nil(t, created.AssignedToID)

	// First status change assigns the handling staff member.
	updated, err := env.services.ContactService.UpdateStatus(created.ID, &dto.UpdateContactStatusRequest{Status: "inProgress"}, "staff-1")
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusInProgress, updated.Status)
	require.NotNil(t, updated.AssignedToID)
	assert.Equal(t, "staff-1", *updated.AssignedToID)

	// A later change keeps the original assignee.
	updated, err = env.services.ContactService.UpdateStatus(created.ID, &dto.UpdateContactStatusRequest{Status: "resolved"}, "staff-2")
	require.NoError(t, err)
	assert.Equal(t, "staff-1", *updated.AssignedToID)
}

func TestContactNotesAndResponsesAppend(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.services.ContactService.Create(&dto.CreateContactRequest{
		Name: "A", Email: "a@example.com", Subject: "s", Message: "m",
	})
	require.NoError(t, err)

	_, err = env.services.ContactService.AddNote(created.ID, &dto.AddContactNoteRequest{Note: "first look"}, "staff@test.local")
	require.NoError(t, err)
	noted, err := env.services.ContactService.AddNote(created.ID, &dto.AddContactNoteRequest{Note: "needs legal"}, "staff@test.local")
	require.NoError(t, err)
	require.Len(t, noted.InternalNotes, 2)
	assert.Equal(t, "first look", noted.InternalNotes[0].Note)

	responded, err := env.services.ContactService.Respond(created.ID, &dto.RespondToContactRequest{Message: "Thanks, we are on it"}, "staff@test.local")
	require.NoError(t, err)
	require.Len(t, responded.ResponsesSent, 1)
	assert.Equal(t, "staff@test.local", responded.ResponsesSent[0].SentBy)
	// Responding to a fresh message moves it into progress.
	assert.Equal(t, models.ContactStatusInProgress, responded.Status)
}

func TestContactListFiltersByStatus(t *testing.T) {
	env := newTestEnv(t)

	for _, subject := range []string{"one", "two"} {
		_, err := env.services.ContactService.Create(&dto.CreateContactRequest{
			Name: "A", Email: "a@example.com", Subject: subject, Message: "m",
		})
		require.NoError(t, err)
	}

	all, pagination, err := env.services.ContactService.List(&dto.ContactListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, int64(2), pagination.TotalRecords)

	resolved, _, err := env.services.ContactService.List(&dto.ContactListQuery{Status: "resolved", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, resolved, 0)
}

func TestContactGetByIDNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.services.ContactService.GetByID("missing")
	require.Error(t, err)
}
