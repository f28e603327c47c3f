// Package router wires the echo instance: global middleware, error pages
// and the route table.
package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/stagebook/internal/handler"
	"github.com/iliyamo/stagebook/internal/middleware"
)

// Options collects what New needs. Cache and RateLimit may be nil.
type Options struct {
	Handler   *handler.Handler
	Renderer  echo.Renderer
	Log       *logrus.Logger
	Cache     *middleware.ResponseCache
	RateLimit echo.MiddlewareFunc
}

// New returns an echo instance serving every route.
func New(o Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = o.Renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = handler.ErrorHandler(o.Log)

	// HTML forms cannot send DELETE; they post _method=DELETE instead.
	e.Pre(echomw.MethodOverrideWithConfig(echomw.MethodOverrideConfig{
		Getter: echomw.MethodFromForm("_method"),
	}))
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(o.Log))
	e.Use(echomw.Recover())

	RegisterRoutes(e)
	RegisterPages(e, o.Handler, o.Cache.Middleware())
	writes := o.RateLimit
	if writes == nil {
		writes = func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	RegisterVenues(e, o.Handler, writes)
	RegisterArtists(e, o.Handler, o.Cache.Middleware(), writes)
	RegisterShows(e, o.Handler, o.Cache.Middleware(), writes)
	return e
}

// RegisterRoutes registers routes that serve no pages.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPages registers the landing page. It is cached like any listing
// unless the request carries flash messages.
func RegisterPages(e *echo.Echo, h *handler.Handler, cache echo.MiddlewareFunc) {
	e.GET("/", h.Home, cache)
}

// RegisterVenues maps the venue pages. Pages that split shows into past
// and upcoming are never cached; the split is taken at request time. Every
// write goes through the rate limiter.
func RegisterVenues(e *echo.Echo, h *handler.Handler, writes echo.MiddlewareFunc) {
	g := e.Group("/venues")
	g.GET("", h.ListVenues)
	g.POST("/search", h.SearchVenues)
	g.GET("/create", h.CreateVenueForm)
	g.POST("/create", h.CreateVenueSubmission, writes)
	g.GET("/:id", h.ShowVenue)
	g.DELETE("/:id", h.DeleteVenue, writes)
	g.GET("/:id/edit", h.EditVenue)
	g.POST("/:id/edit", h.EditVenueSubmission, writes)
}

// RegisterArtists mirrors RegisterVenues. The flat artist list carries no
// show data and is cached.
func RegisterArtists(e *echo.Echo, h *handler.Handler, cache, writes echo.MiddlewareFunc) {
	g := e.Group("/artists")
	g.GET("", h.ListArtists, cache)
	g.POST("/search", h.SearchArtists)
	g.GET("/create", h.CreateArtistForm)
	g.POST("/create", h.CreateArtistSubmission, writes)
	g.GET("/:id", h.ShowArtist)
	g.DELETE("/:id", h.DeleteArtist, writes)
	g.GET("/:id/edit", h.EditArtist)
	g.POST("/:id/edit", h.EditArtistSubmission, writes)
}

func RegisterShows(e *echo.Echo, h *handler.Handler, cache, writes echo.MiddlewareFunc) {
	g := e.Group("/shows")
	g.GET("", h.ListShows, cache)
	g.GET("/create", h.CreateShowForm)
	g.POST("/create", h.CreateShowSubmission, writes)
}
