package handler

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/stagebook/internal/model"
)

// Validator adapts go-playground/validator to echo.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{v: validator.New(validator.WithRequiredStructEnabled())}
}

func (cv *Validator) Validate(i any) error {
	if err := cv.v.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}

// Limits mirror the column sizes in the bootstrap schema.

// VenueInput is the venue create/edit form.
type VenueInput struct {
	Name               string   `form:"name" validate:"required,max=255"`
	City               string   `form:"city" validate:"max=120"`
	State              string   `form:"state" validate:"max=120"`
	Address            string   `form:"address" validate:"max=120"`
	Phone              string   `form:"phone" validate:"max=120"`
	Genres             []string `form:"genres" validate:"max=50,dive,max=100"`
	FacebookLink       string   `form:"facebook_link" validate:"max=120"`
	Website            string   `form:"website" validate:"max=120"`
	ImageLink          string   `form:"image_link" validate:"max=500"`
	SeekingTalent      string   `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" validate:"max=1000"`
}

// ArtistInput is the artist create/edit form.
type ArtistInput struct {
	Name               string   `form:"name" validate:"required,max=255"`
	City               string   `form:"city" validate:"max=120"`
	State              string   `form:"state" validate:"max=120"`
	Phone              string   `form:"phone" validate:"max=120"`
	Genres             []string `form:"genres" validate:"max=50,dive,max=100"`
	FacebookLink       string   `form:"facebook_link" validate:"max=120"`
	Website            string   `form:"website" validate:"max=120"`
	ImageLink          string   `form:"image_link" validate:"max=500"`
	SeekingVenue       string   `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" validate:"max=1000"`
}

// ShowInput is the show create form. Ids stay strings so a malformed id
// takes the same failure path as an unknown one.
type ShowInput struct {
	ArtistID  string `form:"artist_id"`
	VenueID   string `form:"venue_id"`
	StartTime string `form:"start_time"`
}

type input interface {
	normalize()
}

// bindForm binds the submitted form into dst, trims it and validates it.
func bindForm(c echo.Context, dst input) error {
	if err := c.Bind(dst); err != nil {
		return err
	}
	dst.normalize()
	return c.Validate(dst)
}

func (in *VenueInput) normalize()  { in.Name = strings.TrimSpace(in.Name) }
func (in *ArtistInput) normalize() { in.Name = strings.TrimSpace(in.Name) }
func (in *ShowInput) normalize() {
	in.ArtistID = strings.TrimSpace(in.ArtistID)
	in.VenueID = strings.TrimSpace(in.VenueID)
	in.StartTime = strings.TrimSpace(in.StartTime)
}

// checked reads a checkbox value.
func checked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "y", "yes", "true", "on", "1":
		return true
	}
	return false
}

// genres keeps the submitted order and drops blanks.
func genres(in []string) model.Genres {
	out := model.Genres{}
	for _, g := range in {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}

// apply overwrites every editable field of v.
func (in VenueInput) apply(v *model.Venue) {
	v.Name = in.Name
	v.City = in.City
	v.State = in.State
	v.Address = in.Address
	v.Phone = in.Phone
	v.Genres = genres(in.Genres)
	v.FacebookLink = in.FacebookLink
	v.Website = in.Website
	v.ImageLink = in.ImageLink
	v.SeekingTalent = checked(in.SeekingTalent)
	v.SeekingDescription = in.SeekingDescription
}

func (in ArtistInput) apply(a *model.Artist) {
	a.Name = in.Name
	a.City = in.City
	a.State = in.State
	a.Phone = in.Phone
	a.Genres = genres(in.Genres)
	a.FacebookLink = in.FacebookLink
	a.Website = in.Website
	a.ImageLink = in.ImageLink
	a.SeekingVenue = checked(in.SeekingVenue)
	a.SeekingDescription = in.SeekingDescription
}
