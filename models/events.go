package models

import "time"

// EventCategory is the kind of an event. Values outside the known set are
// kept as-is and treated as "other".
type EventCategory string

const (
	CategoryWorkshop   EventCategory = "workshop"
	CategoryNetworking EventCategory = "networking"
	CategoryHackathon  EventCategory = "hackathon"
	CategorySeminar    EventCategory = "seminar"
)

// Categories lists the known categories in the order the type selector offers them.
var Categories = []EventCategory{
	CategoryWorkshop,
	CategoryNetworking,
	CategoryHackathon,
	CategorySeminar,
}

// OnlineLocation is the location sentinel for remote events.
const OnlineLocation = "Online"

type Event struct {
	ID               string        `json:"id" bson:"id" yaml:"id"`
	Title            string        `json:"title" bson:"title" yaml:"title"`
	Description      string        `json:"description" bson:"description" yaml:"description"`
	Organizer        string        `json:"organizer" bson:"organizer" yaml:"organizer"`
	OrganizerID      string        `json:"organizerId" bson:"organizer_id" yaml:"organizerId"`
	Date             time.Time     `json:"date" bson:"date" yaml:"date"`
	Location         string        `json:"location" bson:"location" yaml:"location"`
	Type             EventCategory `json:"type" bson:"type" yaml:"type"`
	MaxAttendees     *int          `json:"maxAttendees,omitempty" bson:"max_attendees,omitempty" yaml:"maxAttendees,omitempty"`
	CurrentAttendees int           `json:"currentAttendees" bson:"current_attendees" yaml:"currentAttendees"`
	ImageURL         string        `json:"imageUrl,omitempty" bson:"image_url,omitempty" yaml:"imageUrl,omitempty"`
}
