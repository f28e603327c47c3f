package view

import (
	"time"

	"github.com/iliyamo/stagebook/internal/listing"
	"github.com/iliyamo/stagebook/internal/model"
)

// ArtistRow is one entry of the artists page.
type ArtistRow struct {
	ID   int64
	Name string
}

func NewArtistRows(artists []*model.Artist) []ArtistRow {
	out := make([]ArtistRow, 0, len(artists))
	for _, a := range artists {
		out = append(out, ArtistRow{ID: a.ID, Name: a.Name})
	}
	return out
}

type ArtistProfile struct {
	ID                 int64
	Name               string
	Genres             []string
	City               string
	State              string
	Phone              string
	Website            string
	FacebookLink       string
	SeekingVenue       bool
	SeekingDescription string
	ImageLink          string
}

func NewArtistProfile(a *model.Artist) ArtistProfile {
	genres := []string(a.Genres)
	if genres == nil {
		genres = []string{}
	}
	return ArtistProfile{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             genres,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
	}
}

// ArtistShow is a show as listed on its artist's page.
type ArtistShow struct {
	VenueID        int64
	VenueName      string
	VenueImageLink string
	StartTime      time.Time
}

type ArtistDetail struct {
	ArtistProfile
	PastShows          []ArtistShow
	UpcomingShows      []ArtistShow
	PastShowsCount     int
	UpcomingShowsCount int
}

func NewArtistDetail(a *model.Artist, shows []model.ShowListing, now time.Time) ArtistDetail {
	past, upcoming := listing.PartitionShows(shows, now)
	return ArtistDetail{
		ArtistProfile:      NewArtistProfile(a),
		PastShows:          artistShows(past),
		UpcomingShows:      artistShows(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

func artistShows(shows []model.ShowListing) []ArtistShow {
	out := make([]ArtistShow, 0, len(shows))
	for _, s := range shows {
		out = append(out, ArtistShow{
			VenueID:        s.VenueID,
			VenueName:      s.VenueName,
			VenueImageLink: s.VenueImageLink,
			StartTime:      s.StartsAt(),
		})
	}
	return out
}
