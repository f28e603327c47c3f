package view

import (
	"time"

	"github.com/iliyamo/stagebook/internal/listing"
	"github.com/iliyamo/stagebook/internal/model"
)

// Summary is one row of a listing or search result.
type Summary struct {
	ID               int64
	Name             string
	NumUpcomingShows int
}

// Area is a (state, city) group on the venues page.
type Area struct {
	State  string
	City   string
	Venues []Summary
}

// NewAreas converts grouped venues, attaching upcoming show counts keyed by
// venue id.
func NewAreas(areas []listing.Area, upcoming map[int64]int) []Area {
	out := make([]Area, 0, len(areas))
	for _, a := range areas {
		venues := make([]Summary, 0, len(a.Venues))
		for _, v := range a.Venues {
			venues = append(venues, Summary{ID: v.ID, Name: v.Name, NumUpcomingShows: upcoming[v.ID]})
		}
		out = append(out, Area{State: a.State, City: a.City, Venues: venues})
	}
	return out
}

// SearchResults backs both search pages.
type SearchResults struct {
	Count      int
	Data       []Summary
	SearchTerm string
}

func NewSearchResults(term string, data []Summary) SearchResults {
	if data == nil {
		data = []Summary{}
	}
	return SearchResults{Count: len(data), Data: data, SearchTerm: term}
}

// VenueProfile is the venue's own fields, without shows.
type VenueProfile struct {
	ID                 int64
	Name               string
	Genres             []string
	Address            string
	City               string
	State              string
	Phone              string
	Website            string
	FacebookLink       string
	SeekingTalent      bool
	SeekingDescription string
	ImageLink          string
}

func NewVenueProfile(v *model.Venue) VenueProfile {
	genres := []string(v.Genres)
	if genres == nil {
		genres = []string{}
	}
	return VenueProfile{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             genres,
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
	}
}

// VenueShow is a show as listed on its venue's page.
type VenueShow struct {
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// VenueDetail backs the venue page.
type VenueDetail struct {
	VenueProfile
	PastShows          []VenueShow
	UpcomingShows      []VenueShow
	PastShowsCount     int
	UpcomingShowsCount int
}

// NewVenueDetail splits the venue's shows at now.
func NewVenueDetail(v *model.Venue, shows []model.ShowListing, now time.Time) VenueDetail {
	past, upcoming := listing.PartitionShows(shows, now)
	return VenueDetail{
		VenueProfile:       NewVenueProfile(v),
		PastShows:          venueShows(past),
		UpcomingShows:      venueShows(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

func venueShows(shows []model.ShowListing) []VenueShow {
	out := make([]VenueShow, 0, len(shows))
	for _, s := range shows {
		out = append(out, VenueShow{
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       s.StartsAt(),
		})
	}
	return out
}
