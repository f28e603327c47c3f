package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/stagebook/internal/flash"
	"github.com/iliyamo/stagebook/internal/model"
	"github.com/iliyamo/stagebook/internal/queue"
	"github.com/iliyamo/stagebook/internal/view"
)

// ListShows renders every show, soonest first.
func (h *Handler) ListShows(c echo.Context) error {
	shows, err := h.Shows.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "pages/shows", view.NewShowRows(shows))
}

func (h *Handler) CreateShowForm(c echo.Context) error {
	return c.Render(http.StatusOK, "forms/new_show", view.NewShowForm(h.Now()))
}

// CreateShowSubmission lists a show. Venue and artist are not looked up
// first; the foreign keys reject ids that do not exist.
func (h *Handler) CreateShowSubmission(c echo.Context) error {
	var in ShowInput
	s, err := h.bindShow(c, &in)
	if err == nil {
		err = h.Shows.Create(c.Request().Context(), s)
	}
	if err != nil {
		logger(c).WithError(err).WithFields(logrus.Fields{
			"venue_id":   in.VenueID,
			"artist_id":  in.ArtistID,
			"start_time": in.StartTime,
		}).Error("create show")
		h.Flash.Add(c, flash.Error, "An error occurred. Show could not be listed.")
		return c.Render(http.StatusOK, "pages/home", nil)
	}
	h.afterWrite(c, queue.NewShowEvent(s.VenueID, s.ArtistID, s.StartTime.String(), h.Now()))
	h.Flash.Add(c, flash.Info, "Show was successfully listed!")
	return c.Render(http.StatusOK, "pages/home", nil)
}

func (h *Handler) bindShow(c echo.Context, in *ShowInput) (*model.Show, error) {
	if err := bindForm(c, in); err != nil {
		return nil, err
	}
	venueID, err := strconv.ParseInt(in.VenueID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("venue_id %q: %w", in.VenueID, err)
	}
	artistID, err := strconv.ParseInt(in.ArtistID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("artist_id %q: %w", in.ArtistID, err)
	}
	start, err := model.ParseTimestamp(in.StartTime)
	if err != nil {
		return nil, err
	}
	return &model.Show{VenueID: venueID, ArtistID: artistID, StartTime: start}, nil
}
