// Package access decides what a viewer may do on the listing pages.
package access

import (
	"devhub/display"
	"devhub/listing"
	"devhub/models"
)

// CanCreateEvents is true for professionals and companies.
func CanCreateEvents(v *models.Viewer) bool {
	if v == nil {
		return false
	}
	switch v.Role {
	case models.RoleProfessional, models.RoleCompany:
		return true
	case models.RoleStudent:
		return false
	}
	return false
}

// CanManageEvent is true when a company views its own event.
func CanManageEvent(v *models.Viewer, e models.Event) bool {
	if v == nil {
		return false
	}
	switch v.Role {
	case models.RoleCompany:
		return v.ID == e.OrganizerID
	case models.RoleStudent, models.RoleProfessional:
		return false
	}
	return false
}

// CanShareProjects is true for students and professionals.
func CanShareProjects(v *models.Viewer) bool {
	if v == nil {
		return false
	}
	switch v.Role {
	case models.RoleStudent, models.RoleProfessional:
		return true
	case models.RoleCompany:
		return false
	}
	return false
}

func EventScopeOptions(v *models.Viewer) []listing.EventScope {
	opts := []listing.EventScope{listing.ScopeAllEvents}
	if v != nil {
		opts = append(opts, listing.ScopeJoined)
	}
	if CanCreateEvents(v) {
		opts = append(opts, listing.ScopeMyEvents)
	}
	return opts
}

func ProjectScopeOptions(v *models.Viewer) []listing.ProjectScope {
	opts := []listing.ProjectScope{listing.ScopeAllProjects}
	if v != nil {
		opts = append(opts, listing.ScopeMyProjects)
	}
	return opts
}

type Action string

const (
	ActionRegister Action = "register"
	ActionManage   Action = "manage"
	ActionFull     Action = "full"
)

// EventAction picks the button shown on an event card.
func EventAction(v *models.Viewer, e models.Event, pct float64) Action {
	if display.IsFull(pct) {
		return ActionFull
	}
	if CanManageEvent(v, e) {
		return ActionManage
	}
	return ActionRegister
}

type Page string

const (
	PageEvents   Page = "events"
	PageProjects Page = "projects"
)

var taglines = map[Page]map[models.Role]string{
	PageEvents: {
		models.RoleStudent:      "Discover workshops, networking events, and learning opportunities",
		models.RoleProfessional: "Share knowledge, attend events, and grow your network",
		models.RoleCompany:      "Host events, engage with talent, and build your brand",
	},
	PageProjects: {
		models.RoleStudent:      "Showcase your work and get feedback from the community",
		models.RoleProfessional: "Share your expertise and discover innovative projects",
		models.RoleCompany:      "Discover talent through their project portfolios",
	},
}

// Tagline returns the page subtitle for the viewer's role, or "" for
// anonymous visitors.
func Tagline(p Page, v *models.Viewer) string {
	if v == nil {
		return ""
	}
	return taglines[p][v.Role]
}
