package model

import "time"

// Show links one venue and one artist at a start time. The three columns
// together form the primary key, so an artist plays a venue at most once
// per exact timestamp. Shows are never edited after creation.
type Show struct {
	VenueID   int64     `db:"venue_id"`
	ArtistID  int64     `db:"artist_id"`
	StartTime Timestamp `db:"start_time"`
}

// StartsAt returns the show's start instant.
func (s Show) StartsAt() time.Time { return s.StartTime.Time }

// ShowListing is a show joined with the display fields of its venue and
// artist.
type ShowListing struct {
	Show
	VenueName       string `db:"venue_name"`
	VenueImageLink  string `db:"venue_image_link"`
	ArtistName      string `db:"artist_name"`
	ArtistImageLink string `db:"artist_image_link"`
}
