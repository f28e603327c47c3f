// Package queue carries activity events over RabbitMQ: the web server
// publishes one after every successful write and a separate consumer
// appends them to an activity log.
package queue

import (
	"time"

	"github.com/google/uuid"
)

// Kinds of activity.
const (
	VenueCreated  = "venue.created"
	VenueUpdated  = "venue.updated"
	VenueDeleted  = "venue.deleted"
	ArtistCreated = "artist.created"
	ArtistUpdated = "artist.updated"
	ArtistDeleted = "artist.deleted"
	ShowCreated   = "show.created"
)

// ActivityEvent describes one committed write. Downstream consumers log it
// without querying the database. Venue and artist events set EntityID;
// shows have no id of their own and set VenueID and ArtistID instead.
type ActivityEvent struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	EntityID   int64     `json:"entity_id,omitempty"`
	VenueID    int64     `json:"venue_id,omitempty"`
	ArtistID   int64     `json:"artist_id,omitempty"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent stamps an event with a fresh id.
func NewEvent(kind string, entityID int64, name string, at time.Time) ActivityEvent {
	return ActivityEvent{
		ID:         uuid.NewString(),
		Kind:       kind,
		EntityID:   entityID,
		Name:       name,
		OccurredAt: at.UTC(),
	}
}

// NewShowEvent stamps a show.created event for the show's venue and artist.
func NewShowEvent(venueID, artistID int64, startsAt string, at time.Time) ActivityEvent {
	ev := NewEvent(ShowCreated, 0, startsAt, at)
	ev.VenueID, ev.ArtistID = venueID, artistID
	return ev
}
