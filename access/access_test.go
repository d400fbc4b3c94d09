package access

import (
	"testing"

	"devhub/listing"
	"devhub/models"

	"github.com/stretchr/testify/assert"
)

var (
	student      = &models.Viewer{ID: "student1", Role: models.RoleStudent}
	professional = &models.Viewer{ID: "professional1", Role: models.RoleProfessional}
	company      = &models.Viewer{ID: "company1", Role: models.RoleCompany}
)

func TestCanCreateEvents(t *testing.T) {
	assert.False(t, CanCreateEvents(nil))
	assert.False(t, CanCreateEvents(student))
	assert.True(t, CanCreateEvents(professional))
	assert.True(t, CanCreateEvents(company))
	assert.False(t, CanCreateEvents(&models.Viewer{ID: "x", Role: "admin"}))
}

func TestCanManageEvent(t *testing.T) {
	own := models.Event{ID: "1", OrganizerID: "company1"}
	other := models.Event{ID: "2", OrganizerID: "company2"}
	assert.True(t, CanManageEvent(company, own))
	assert.False(t, CanManageEvent(company, other))
	assert.False(t, CanManageEvent(nil, own))

	// organizer match alone is not enough without the company role
	prof := models.Event{ID: "4", OrganizerID: "professional1"}
	assert.False(t, CanManageEvent(professional, prof))
}

func TestCanShareProjects(t *testing.T) {
	assert.True(t, CanShareProjects(student))
	assert.True(t, CanShareProjects(professional))
	assert.False(t, CanShareProjects(company))
	assert.False(t, CanShareProjects(nil))
}

func TestScopeOptions(t *testing.T) {
	assert.Equal(t, []listing.EventScope{listing.ScopeAllEvents}, EventScopeOptions(nil))
	assert.Equal(t, []listing.EventScope{listing.ScopeAllEvents, listing.ScopeJoined}, EventScopeOptions(student))
	assert.Equal(t, []listing.EventScope{listing.ScopeAllEvents, listing.ScopeJoined, listing.ScopeMyEvents}, EventScopeOptions(company))

	assert.Equal(t, []listing.ProjectScope{listing.ScopeAllProjects}, ProjectScopeOptions(nil))
	assert.Equal(t, []listing.ProjectScope{listing.ScopeAllProjects, listing.ScopeMyProjects}, ProjectScopeOptions(company))
}

func TestEventAction(t *testing.T) {
	own := models.Event{ID: "1", OrganizerID: "company1"}
	assert.Equal(t, ActionManage, EventAction(company, own, 90))
	assert.Equal(t, ActionFull, EventAction(company, own, 100))
	assert.Equal(t, ActionRegister, EventAction(student, own, 90))
	assert.Equal(t, ActionRegister, EventAction(nil, own, 0))
}

func TestTagline(t *testing.T) {
	assert.Equal(t, "", Tagline(PageEvents, nil))
	assert.Equal(t, "Host events, engage with talent, and build your brand", Tagline(PageEvents, company))
	assert.Equal(t, "Showcase your work and get feedback from the community", Tagline(PageProjects, student))
}
