package events

import (
	"time"

	"devhub/access"
	"devhub/display"
	"devhub/membership"
	"devhub/metrics"
	"devhub/models"
	"devhub/store"
)

// Handler serves the events listing.
type Handler struct {
	Events  store.EventProvider
	Joined  membership.Source
	Loc     *time.Location
	Metrics *metrics.Metrics
}

// Card is an event with the fields derived for display.
type Card struct {
	models.Event
	DateInfo   display.DateInfo `json:"dateInfo"`
	Attendance float64          `json:"attendance"`
	Percent    int              `json:"percent"`
	Level      string           `json:"level"`
	Style      string           `json:"style"`
	Icon       string           `json:"icon"`
	Label      string           `json:"label"`
	Online     bool             `json:"online"`
	Action     access.Action    `json:"action"`
}

func NewCard(e models.Event, viewer *models.Viewer, loc *time.Location) Card {
	pct := display.AttendancePercentage(e.CurrentAttendees, e.MaxAttendees)
	return Card{
		Event:      e,
		DateInfo:   display.FormatDate(e.Date, loc),
		Attendance: pct,
		Percent:    display.RoundedPercent(pct),
		Level:      display.AttendanceLevel(pct),
		Style:      display.CategoryStyle(e.Type),
		Icon:       display.CategoryIcon(e.Type),
		Label:      display.CategoryLabel(e.Type),
		Online:     display.IsOnline(e.Location),
		Action:     access.EventAction(viewer, e, pct),
	}
}

// Options lists the selector values offered to the viewer.
type Options struct {
	Scopes []string `json:"scopes"`
	Types  []string `json:"types"`
}

func options(viewer *models.Viewer) Options {
	opts := Options{Types: []string{"all"}}
	for _, s := range access.EventScopeOptions(viewer) {
		opts.Scopes = append(opts.Scopes, string(s))
	}
	for _, c := range models.Categories {
		opts.Types = append(opts.Types, string(c))
	}
	return opts
}

type ListResponse struct {
	Events    []Card  `json:"events"`
	Count     int     `json:"count"`
	Options   Options `json:"options"`
	CanCreate bool    `json:"canCreate"`
	Tagline   string  `json:"tagline,omitempty"`
	Empty     string  `json:"empty,omitempty"`
}
