package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/stagebook/internal/flash"
	"github.com/iliyamo/stagebook/internal/listing"
	"github.com/iliyamo/stagebook/internal/model"
	"github.com/iliyamo/stagebook/internal/queue"
	"github.com/iliyamo/stagebook/internal/repository"
	"github.com/iliyamo/stagebook/internal/view"
)

func venueName(v *model.Venue) string { return v.Name }
func byVenue(s model.ShowListing) int64 { return s.VenueID }

// ListVenues shows every venue grouped by (state, city) with its number of
// upcoming shows.
func (h *Handler) ListVenues(c echo.Context) error {
	ctx := c.Request().Context()
	venues, err := h.Venues.ListAll(ctx)
	if err != nil {
		return err
	}
	shows, err := h.Shows.ListAll(ctx)
	if err != nil {
		return err
	}
	upcoming := listing.CountUpcoming(shows, h.Now(), byVenue)
	return c.Render(http.StatusOK, "pages/venues", view.NewAreas(listing.GroupVenuesByLocation(venues), upcoming))
}

// SearchVenues matches search_term against venue names, ignoring case.
func (h *Handler) SearchVenues(c echo.Context) error {
	ctx := c.Request().Context()
	term := c.FormValue("search_term")
	venues, err := h.Venues.ListAll(ctx)
	if err != nil {
		return err
	}
	shows, err := h.Shows.ListAll(ctx)
	if err != nil {
		return err
	}
	upcoming := listing.CountUpcoming(shows, h.Now(), byVenue)
	matches := listing.FilterByName(venues, term, venueName)
	data := make([]view.Summary, 0, len(matches))
	for _, v := range matches {
		data = append(data, view.Summary{ID: v.ID, Name: v.Name, NumUpcomingShows: upcoming[v.ID]})
	}
	return c.Render(http.StatusOK, "pages/search_venues", view.NewSearchResults(term, data))
}

// ShowVenue renders one venue with its past and upcoming shows.
func (h *Handler) ShowVenue(c echo.Context) error {
	v, err := h.loadVenue(c)
	if err != nil {
		return err
	}
	shows, err := h.Shows.ListByVenue(c.Request().Context(), v.ID)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "pages/show_venue", view.NewVenueDetail(v, shows, h.Now()))
}

func (h *Handler) CreateVenueForm(c echo.Context) error {
	return c.Render(http.StatusOK, "forms/new_venue", view.NewVenueForm(nil))
}

// CreateVenueSubmission inserts a venue and renders the home page with the
// outcome as a flash message.
func (h *Handler) CreateVenueSubmission(c echo.Context) error {
	var in VenueInput
	err := bindForm(c, &in)
	v := &model.Venue{}
	in.apply(v)
	if err == nil {
		err = h.Venues.Create(c.Request().Context(), v)
	}
	if err != nil {
		logger(c).WithError(err).WithField("name", v.Name).Error("create venue")
		h.Flash.Add(c, flash.Error, fmt.Sprintf("An error occurred. Venue %s could not be listed.", v.Name))
		return c.Render(http.StatusOK, "pages/home", nil)
	}
	h.afterWrite(c, h.event(queue.VenueCreated, v.ID, v.Name))
	h.Flash.Add(c, flash.Info, fmt.Sprintf("Venue %s was successfully listed!", v.Name))
	return c.Render(http.StatusOK, "pages/home", nil)
}

// DeleteVenue removes a venue and its shows, then sends the browser home.
// Deleting an id that does not exist is not an error.
func (h *Handler) DeleteVenue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.Venues.DeleteByID(c.Request().Context(), id); err != nil {
		logger(c).WithError(err).WithField("venue_id", id).Error("delete venue")
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	h.afterWrite(c, h.event(queue.VenueDeleted, id, ""))
	h.Flash.Add(c, flash.Info, fmt.Sprintf("Venue with id %d was deleted successfully", id))
	return h.redirect(c, "/")
}

// EditVenue renders the edit form pre-filled with the stored venue.
func (h *Handler) EditVenue(c echo.Context) error {
	v, err := h.loadVenue(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "forms/edit_venue", view.VenueEdit{
		Form:  view.NewVenueForm(v),
		Venue: view.NewVenueProfile(v),
	})
}

// EditVenueSubmission overwrites every editable field of the venue and
// redirects to its page.
func (h *Handler) EditVenueSubmission(c echo.Context) error {
	v, err := h.loadVenue(c)
	if err != nil {
		return err
	}
	var in VenueInput
	if err := bindForm(c, &in); err != nil {
		logger(c).WithError(err).WithField("venue_id", v.ID).Error("edit venue: invalid form")
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	in.apply(v)
	if err := h.Venues.Update(c.Request().Context(), v); err != nil {
		logger(c).WithError(err).WithField("venue_id", v.ID).Error("edit venue")
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	h.afterWrite(c, h.event(queue.VenueUpdated, v.ID, v.Name))
	return h.redirect(c, fmt.Sprintf("/venues/%d", v.ID))
}

func (h *Handler) loadVenue(c echo.Context) (*model.Venue, error) {
	id, err := pathID(c)
	if err != nil {
		return nil, err
	}
	v, err := h.Venues.GetByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrVenueNotFound) {
		return nil, echo.ErrNotFound
	}
	return v, err
}
