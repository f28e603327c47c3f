package view

import (
	"time"

	"github.com/iliyamo/stagebook/internal/model"
)

// ShowRow is one entry of the shows page.
type ShowRow struct {
	VenueID         int64
	VenueName       string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

func NewShowRows(shows []model.ShowListing) []ShowRow {
	out := make([]ShowRow, 0, len(shows))
	for _, s := range shows {
		out = append(out, ShowRow{
			VenueID:         s.VenueID,
			VenueName:       s.VenueName,
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       s.StartsAt(),
		})
	}
	return out
}
