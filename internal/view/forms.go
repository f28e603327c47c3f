package view

import (
	"slices"
	"time"

	"github.com/iliyamo/stagebook/internal/model"
)

// GenreChoices are the genres offered by the venue and artist forms.
var GenreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

// StateChoices are the US state codes offered by the forms.
var StateChoices = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI",
	"ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "MD", "MA", "MI", "MN",
	"MS", "MO", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA",
	"WV", "WI", "WY",
}

// VenueForm carries the values shown in the venue create and edit forms.
type VenueForm struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Genres             []string
	FacebookLink       string
	Website            string
	ImageLink          string
	SeekingTalent      bool
	SeekingDescription string
	StateChoices       []string
	GenreChoices       []string
}

// NewVenueForm pre-fills the form from v; a nil venue gives an empty form.
func NewVenueForm(v *model.Venue) VenueForm {
	f := VenueForm{StateChoices: StateChoices, GenreChoices: GenreChoices, Genres: []string{}}
	if v == nil {
		return f
	}
	f.Name, f.City, f.State, f.Address, f.Phone = v.Name, v.City, v.State, v.Address, v.Phone
	f.Genres = NewVenueProfile(v).Genres
	f.FacebookLink, f.Website, f.ImageLink = v.FacebookLink, v.Website, v.ImageLink
	f.SeekingTalent, f.SeekingDescription = v.SeekingTalent, v.SeekingDescription
	f.StateChoices = withStored(StateChoices, f.State)
	f.GenreChoices = withStored(GenreChoices, f.Genres...)
	return f
}

// VenueEdit backs the venue edit page.
type VenueEdit struct {
	Form  VenueForm
	Venue VenueProfile
}

type ArtistForm struct {
	Name               string
	City               string
	State              string
	Phone              string
	Genres             []string
	FacebookLink       string
	Website            string
	ImageLink          string
	SeekingVenue       bool
	SeekingDescription string
	StateChoices       []string
	GenreChoices       []string
}

func NewArtistForm(a *model.Artist) ArtistForm {
	f := ArtistForm{StateChoices: StateChoices, GenreChoices: GenreChoices, Genres: []string{}}
	if a == nil {
		return f
	}
	f.Name, f.City, f.State, f.Phone = a.Name, a.City, a.State, a.Phone
	f.Genres = NewArtistProfile(a).Genres
	f.FacebookLink, f.Website, f.ImageLink = a.FacebookLink, a.Website, a.ImageLink
	f.SeekingVenue, f.SeekingDescription = a.SeekingVenue, a.SeekingDescription
	f.StateChoices = withStored(StateChoices, f.State)
	f.GenreChoices = withStored(GenreChoices, f.Genres...)
	return f
}

// withStored appends stored values missing from choices, so an edit that
// overwrites every field resubmits them unchanged.
func withStored(choices []string, stored ...string) []string {
	out := choices
	for _, s := range stored {
		if s == "" || slices.Contains(out, s) {
			continue
		}
		if len(out) == len(choices) {
			out = slices.Clone(choices)
		}
		out = append(out, s)
	}
	return out
}

type ArtistEdit struct {
	Form   ArtistForm
	Artist ArtistProfile
}

// ShowForm backs the new show page. StartTime defaults to the current
// time in UTC, the zone a zone-less start_time is read back in.
type ShowForm struct {
	ArtistID  string
	VenueID   string
	StartTime string
}

func NewShowForm(now time.Time) ShowForm {
	return ShowForm{StartTime: now.UTC().Format("2006-01-02 15:04:05")}
}
