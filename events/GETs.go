package events

import (
	"context"
	"log"
	"net/http"
	"time"

	"devhub/access"
	"devhub/display"
	"devhub/listing"
	"devhub/membership"
	"devhub/store"
	"devhub/utils"

	"github.com/julienschmidt/httprouter"
)

func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	params := utils.ParseListingParams(r)
	scope, err := listing.ParseEventScope(params.Scope)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	viewer := utils.GetViewerFromRequest(r)

	all, err := h.Events.FetchEvents(ctx)
	if err != nil {
		log.Printf("[%s] FetchEvents error: %v", utils.GetRequestID(r), err)
		h.Metrics.ProviderError("events")
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}

	var joined membership.JoinedSet
	if scope == listing.ScopeJoined && h.Joined != nil {
		joined, err = h.Joined.JoinedFor(ctx, viewer)
		if err != nil {
			log.Printf("[%s] JoinedFor error: %v", utils.GetRequestID(r), err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch joined events")
			return
		}
	}

	q := listing.EventQuery{
		Search: params.Search,
		Type:   listing.TypeFilter(params.Type),
		Scope:  scope,
	}
	filtered := listing.FilterEvents(all, q, viewer, joined)
	h.Metrics.ObserveListing("events", string(scope), len(filtered))

	cards := make([]Card, 0, len(filtered))
	for _, e := range filtered {
		cards = append(cards, NewCard(e, viewer, h.Loc))
	}

	resp := ListResponse{
		Events:    cards,
		Count:     len(cards),
		Options:   options(viewer),
		CanCreate: access.CanCreateEvents(viewer),
		Tagline:   access.Tagline(access.PageEvents, viewer),
	}
	if len(cards) == 0 {
		resp.Empty = display.EmptyMessage("events", params.Search)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("eventid")
	e, ok, err := store.FindEvent(ctx, h.Events, id)
	if err != nil {
		log.Printf("[%s] FindEvent error: %v", utils.GetRequestID(r), err)
		h.Metrics.ProviderError("events")
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch event")
		return
	}
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, NewCard(e, utils.GetViewerFromRequest(r), h.Loc))
}
