// Package handler holds one HTTP handler per route. Handlers render HTML
// through echo's renderer and report failures the way the pages expect:
// a flash message for failed creates, the 404/500 pages otherwise.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/stagebook/internal/flash"
	"github.com/iliyamo/stagebook/internal/logging"
	"github.com/iliyamo/stagebook/internal/queue"
	"github.com/iliyamo/stagebook/internal/repository"
)

// Purger drops cached pages after a write.
type Purger interface {
	Purge(ctx context.Context) error
}

// Handler bundles what the route handlers need.
type Handler struct {
	Venues  *repository.VenueRepo
	Artists *repository.ArtistRepo
	Shows   *repository.ShowRepo
	Flash   *flash.Store
	Events  queue.Publisher
	Cache   Purger
	Now     func() time.Time // clock read once per request
}

// New builds a Handler and panics if a repository or the flash store is
// missing. events and cache may be nil.
func New(venues *repository.VenueRepo, artists *repository.ArtistRepo, shows *repository.ShowRepo,
	flashes *flash.Store, events queue.Publisher, cache Purger) *Handler {
	if venues == nil || artists == nil || shows == nil || flashes == nil {
		panic("handler: nil dependency passed to New")
	}
	if events == nil {
		events = queue.NopPublisher{}
	}
	return &Handler{
		Venues:  venues,
		Artists: artists,
		Shows:   shows,
		Flash:   flashes,
		Events:  events,
		Cache:   cache,
		Now:     time.Now,
	}
}

// Home renders the landing page along with any pending flash messages.
func (h *Handler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "pages/home", nil)
}

// Health is a simple health check for load balancers.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func logger(c echo.Context) *logrus.Entry {
	return logging.FromContext(c.Request().Context())
}

// pathID parses the :id parameter. Anything that is not a positive integer
// is treated as a missing record.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.ErrNotFound
	}
	return id, nil
}

// afterWrite runs once a write has committed: cached pages are dropped and
// an activity event goes out. Neither failure affects the response.
func (h *Handler) afterWrite(c echo.Context, ev queue.ActivityEvent) {
	ctx := c.Request().Context()
	if h.Cache != nil {
		if err := h.Cache.Purge(ctx); err != nil {
			logger(c).WithError(err).Warn("purge page cache")
		}
	}
	if err := h.Events.Publish(ctx, ev); err != nil {
		logger(c).WithError(err).WithField("kind", ev.Kind).Warn("publish activity event")
	}
}

func (h *Handler) event(kind string, id int64, name string) queue.ActivityEvent {
	return queue.NewEvent(kind, id, name, h.Now())
}

// redirect stores queued flash messages in the cookie and answers 303 so
// browsers follow with a GET.
func (h *Handler) redirect(c echo.Context, to string) error {
	if err := h.Flash.Save(c); err != nil {
		logger(c).WithError(err).Warn("save flash cookie")
	}
	return c.Redirect(http.StatusSeeOther, to)
}
