package listing

import (
	"strings"

	"devhub/membership"
	"devhub/models"
)

// FilterEvents returns the events matching q for viewer, in their original
// order. The input slice is never modified. joined may be nil, in which case
// the "joined" scope matches nothing.
func FilterEvents(events []models.Event, q EventQuery, viewer *models.Viewer, joined membership.JoinedSet) []models.Event {
	term := strings.ToLower(q.Search)
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if !eventMatchesSearch(e, term) || !q.Type.Matches(e.Type) {
			continue
		}
		if !eventInScope(e, q.Scope, viewer, joined) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func eventMatchesSearch(e models.Event, term string) bool {
	if term == "" {
		return true
	}
	return containsFold(e.Title, term) ||
		containsFold(e.Description, term) ||
		containsFold(e.Organizer, term)
}

func eventInScope(e models.Event, scope EventScope, viewer *models.Viewer, joined membership.JoinedSet) bool {
	switch scope {
	case ScopeMyEvents:
		return viewer != nil && viewer.ID == e.OrganizerID
	case ScopeJoined:
		return joined != nil && joined.Contains(e.ID)
	default:
		return true
	}
}
