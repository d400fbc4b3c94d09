package listing

import (
	"strings"

	"devhub/models"
)

// FilterProjects returns the projects matching q for viewer, in their
// original order. Search covers title, description and every technology tag.
func FilterProjects(projects []models.Project, q ProjectQuery, viewer *models.Viewer) []models.Project {
	term := strings.ToLower(q.Search)
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if !projectMatchesSearch(p, term) {
			continue
		}
		if q.Scope == ScopeMyProjects && (viewer == nil || viewer.ID != p.AuthorID) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func projectMatchesSearch(p models.Project, term string) bool {
	if term == "" {
		return true
	}
	if containsFold(p.Title, term) || containsFold(p.Description, term) {
		return true
	}
	for _, tech := range p.Technologies {
		if containsFold(tech, term) {
			return true
		}
	}
	return false
}
