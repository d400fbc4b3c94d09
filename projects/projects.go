package projects

import (
	"context"
	"log"
	"net/http"
	"time"

	"devhub/access"
	"devhub/display"
	"devhub/listing"
	"devhub/metrics"
	"devhub/models"
	"devhub/store"
	"devhub/utils"

	"github.com/julienschmidt/httprouter"
)

const previewTechs = 3

// Handler serves the projects listing.
type Handler struct {
	Projects store.ProjectProvider
	Loc      *time.Location
	Metrics  *metrics.Metrics
}

type Card struct {
	models.Project
	TechPreview []string `json:"techPreview"`
	MoreTechs   int      `json:"moreTechs"`
	Initials    string   `json:"initials"`
	Created     string   `json:"created"`
}

func NewCard(p models.Project, loc *time.Location) Card {
	preview, more := display.TechPreview(p.Technologies, previewTechs)
	return Card{
		Project:     p,
		TechPreview: preview,
		MoreTechs:   more,
		Initials:    display.Initials(p.Title),
		Created:     display.FormatCreated(p.CreatedAt, loc),
	}
}

type ListResponse struct {
	Projects []Card   `json:"projects"`
	Count    int      `json:"count"`
	Scopes   []string `json:"scopes"`
	CanShare bool     `json:"canShare"`
	Tagline  string   `json:"tagline,omitempty"`
	Empty    string   `json:"empty,omitempty"`
}

func (h *Handler) GetProjects(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	params := utils.ParseListingParams(r)
	scope, err := listing.ParseProjectScope(params.Scope)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	viewer := utils.GetViewerFromRequest(r)

	all, err := h.Projects.FetchProjects(ctx)
	if err != nil {
		log.Printf("[%s] FetchProjects error: %v", utils.GetRequestID(r), err)
		h.Metrics.ProviderError("projects")
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}

	filtered := listing.FilterProjects(all, listing.ProjectQuery{Search: params.Search, Scope: scope}, viewer)
	h.Metrics.ObserveListing("projects", string(scope), len(filtered))

	cards := make([]Card, 0, len(filtered))
	for _, p := range filtered {
		cards = append(cards, NewCard(p, h.Loc))
	}

	resp := ListResponse{
		Projects: cards,
		Count:    len(cards),
		CanShare: access.CanShareProjects(viewer),
		Tagline:  access.Tagline(access.PageProjects, viewer),
	}
	for _, s := range access.ProjectScopeOptions(viewer) {
		resp.Scopes = append(resp.Scopes, string(s))
	}
	if len(cards) == 0 {
		resp.Empty = display.EmptyMessage("projects", params.Search)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
