package listing

import (
	"context"
	"strconv"
	"testing"

	"devhub/models"
	"devhub/store"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectIDs(projects []models.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterProjects(t *testing.T) {
	projects, err := store.Seed{}.FetchProjects(context.Background())
	require.NoError(t, err)

	tests := []struct {
		name   string
		query  ProjectQuery
		viewer *models.Viewer
		want   []string
	}{
		{"no filters", ProjectQuery{}, nil, []string{"1", "2", "3"}},
		{"technology tag", ProjectQuery{Search: "mapbox"}, nil, []string{"3"}},
		{"tag shared by two projects", ProjectQuery{Search: "react"}, nil, []string{"1", "3"}},
		{"description", ProjectQuery{Search: "drag-and-drop"}, nil, []string{"2"}},
		{"author is not searched", ProjectQuery{Search: "alex chen"}, nil, []string{}},
		{"my projects", ProjectQuery{Scope: ScopeMyProjects}, &models.Viewer{ID: "user2", Role: models.RoleProfessional}, []string{"2"}},
		{"my projects anonymous", ProjectQuery{Scope: ScopeMyProjects}, nil, []string{}},
		{"my projects with search", ProjectQuery{Search: "weather", Scope: ScopeMyProjects}, &models.Viewer{ID: "user2"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProjects(projects, tt.query, tt.viewer)
			assert.Equal(t, tt.want, projectIDs(got))
		})
	}
}

func TestParseProjectScope(t *testing.T) {
	s, err := ParseProjectScope("my-projects")
	require.NoError(t, err)
	assert.Equal(t, ScopeMyProjects, s)

	s, err = ParseProjectScope("")
	require.NoError(t, err)
	assert.Equal(t, ScopeAllProjects, s)

	_, err = ParseProjectScope("my-events")
	assert.Error(t, err)
}

func genProject() gopter.Gen {
	return gopter.CombineGens(genText(10), genText(10), gen.SliceOf(genText(6))).Map(func(v []interface{}) models.Project {
		return models.Project{Title: v[0].(string), Description: v[1].(string), Technologies: v[2].([]string)}
	})
}

func TestProperty_ProjectSearch(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("result is the ordered subsequence of records matching title, description or a tag", prop.ForAll(
		func(projects []models.Project, term string) bool {
			for i := range projects {
				projects[i].ID = strconv.Itoa(i)
			}
			got := FilterProjects(projects, ProjectQuery{Search: term}, nil)

			var want []string
			for _, p := range projects {
				match := foldContains(p.Title, term) || foldContains(p.Description, term)
				for _, tech := range p.Technologies {
					match = match || foldContains(tech, term)
				}
				if match {
					want = append(want, p.ID)
				}
			}
			if want == nil {
				want = []string{}
			}
			return assert.ObjectsAreEqual(want, projectIDs(got))
		},
		gen.SliceOf(genProject()),
		genText(2),
	))

	properties.TestingRun(t)
}
