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

func artistName(a *model.Artist) string { return a.Name }
func byArtist(s model.ShowListing) int64 { return s.ArtistID }

// ListArtists renders the flat artist list.
func (h *Handler) ListArtists(c echo.Context) error {
	artists, err := h.Artists.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "pages/artists", view.NewArtistRows(artists))
}

func (h *Handler) SearchArtists(c echo.Context) error {
	ctx := c.Request().Context()
	term := c.FormValue("search_term")
	artists, err := h.Artists.ListAll(ctx)
	if err != nil {
		return err
	}
	shows, err := h.Shows.ListAll(ctx)
	if err != nil {
		return err
	}
	upcoming := listing.CountUpcoming(shows, h.Now(), byArtist)
	matches := listing.FilterByName(artists, term, artistName)
	data := make([]view.Summary, 0, len(matches))
	for _, a := range matches {
		data = append(data, view.Summary{ID: a.ID, Name: a.Name, NumUpcomingShows: upcoming[a.ID]})
	}
	return c.Render(http.StatusOK, "pages/search_artists", view.NewSearchResults(term, data))
}

func (h *Handler) ShowArtist(c echo.Context) error {
	a, err := h.loadArtist(c)
	if err != nil {
		return err
	}
	shows, err := h.Shows.ListByArtist(c.Request().Context(), a.ID)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "pages/show_artist", view.NewArtistDetail(a, shows, h.Now()))
}

func (h *Handler) CreateArtistForm(c echo.Context) error {
	return c.Render(http.StatusOK, "forms/new_artist", view.NewArtistForm(nil))
}

func (h *Handler) CreateArtistSubmission(c echo.Context) error {
	var in ArtistInput
	err := bindForm(c, &in)
	a := &model.Artist{}
	in.apply(a)
	if err == nil {
		err = h.Artists.Create(c.Request().Context(), a)
	}
	if err != nil {
		logger(c).WithError(err).WithField("name", a.Name).Error("create artist")
		h.Flash.Add(c, flash.Error, fmt.Sprintf("An error occurred. Artist %s could not be listed.", a.Name))
		return c.Render(http.StatusOK, "pages/home", nil)
	}
	h.afterWrite(c, h.event(queue.ArtistCreated, a.ID, a.Name))
	h.Flash.Add(c, flash.Info, fmt.Sprintf("Artist %s was successfully listed!", a.Name))
	return c.Render(http.StatusOK, "pages/home", nil)
}

func (h *Handler) DeleteArtist(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.Artists.DeleteByID(c.Request().Context(), id); err != nil {
		logger(c).WithError(err).WithField("artist_id", id).Error("delete artist")
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	h.afterWrite(c, h.event(queue.ArtistDeleted, id, ""))
	h.Flash.Add(c, flash.Info, fmt.Sprintf("Artist with id %d was deleted successfully", id))
	return h.redirect(c, "/")
}

func (h *Handler) EditArtist(c echo.Context) error {
	a, err := h.loadArtist(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "forms/edit_artist", view.ArtistEdit{
		Form:   view.NewArtistForm(a),
		Artist: view.NewArtistProfile(a),
	})
}

func (h *Handler) EditArtistSubmission(c echo.Context) error {
	a, err := h.loadArtist(c)
	if err != nil {
		return err
	}
	var in ArtistInput
	if err := bindForm(c, &in); err != nil {
		logger(c).WithError(err).WithField("artist_id", a.ID).Error("edit artist: invalid form")
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	in.apply(a)
	if err := h.Artists.Update(c.Request().Context(), a); err != nil {
		logger(c).WithError(err).WithField("artist_id", a.ID).Error("edit artist")
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	h.afterWrite(c, h.event(queue.ArtistUpdated, a.ID, a.Name))
	return h.redirect(c, fmt.Sprintf("/artists/%d", a.ID))
}

func (h *Handler) loadArtist(c echo.Context) (*model.Artist, error) {
	id, err := pathID(c)
	if err != nil {
		return nil, err
	}
	a, err := h.Artists.GetByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrArtistNotFound) {
		return nil, echo.ErrNotFound
	}
	return a, err
}
