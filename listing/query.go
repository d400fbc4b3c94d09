package listing

import (
	"fmt"
	"strings"

	"devhub/models"
)

// All is the selector value that disables a filter dimension.
const All = "all"

// EventScope restricts events to those related to the viewer.
type EventScope string

const (
	ScopeAllEvents EventScope = All
	ScopeJoined    EventScope = "joined"
	ScopeMyEvents  EventScope = "my-events"
)

func ParseEventScope(s string) (EventScope, error) {
	switch EventScope(s) {
	case "", ScopeAllEvents:
		return ScopeAllEvents, nil
	case ScopeJoined, ScopeMyEvents:
		return EventScope(s), nil
	}
	return "", fmt.Errorf("unknown event scope %q", s)
}

// ProjectScope restricts projects to those authored by the viewer.
type ProjectScope string

const (
	ScopeAllProjects ProjectScope = All
	ScopeMyProjects  ProjectScope = "my-projects"
)

func ParseProjectScope(s string) (ProjectScope, error) {
	switch ProjectScope(s) {
	case "", ScopeAllProjects:
		return ScopeAllProjects, nil
	case ScopeMyProjects:
		return ScopeMyProjects, nil
	}
	return "", fmt.Errorf("unknown project scope %q", s)
}

// TypeFilter selects a single event category, or every category when empty
// or "all". Unknown categories are allowed and simply match records carrying
// the same raw value.
type TypeFilter string

func (f TypeFilter) Matches(c models.EventCategory) bool {
	return f == "" || f == All || models.EventCategory(f) == c
}

type EventQuery struct {
	Search string
	Type   TypeFilter
	Scope  EventScope
}

type ProjectQuery struct {
	Search string
	Scope  ProjectScope
}

// containsFold reports whether the lowercased needle occurs in the lowercased
// haystack. needle must already be lowercased.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
