// Package store supplies the listing collections to the handlers.
package store

import (
	"context"

	"devhub/models"
)

type EventProvider interface {
	FetchEvents(ctx context.Context) ([]models.Event, error)
}

type ProjectProvider interface {
	FetchProjects(ctx context.Context) ([]models.Project, error)
}

// Provider supplies both collections.
type Provider interface {
	EventProvider
	ProjectProvider
}

// FindEvent looks up a single event by ID.
func FindEvent(ctx context.Context, p EventProvider, id string) (models.Event, bool, error) {
	events, err := p.FetchEvents(ctx)
	if err != nil {
		return models.Event{}, false, err
	}
	for _, e := range events {
		if e.ID == id {
			return e, true, nil
		}
	}
	return models.Event{}, false, nil
}
