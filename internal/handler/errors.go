package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ErrorHandler renders the 404 page for missing records and unmatched
// routes (405 included) and the 500 page for everything else. Statuses a
// handler set on purpose, such as 429 or 400, are kept but answered with
// plain text.
func ErrorHandler(log *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
		}

		var page string
		switch code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			code, page = http.StatusNotFound, "errors/404"
		case http.StatusInternalServerError:
			page = "errors/500"
			log.WithError(err).WithField("uri", c.Request().RequestURI).Error("internal error")
		}

		if page == "" {
			if rerr := c.String(code, http.StatusText(code)); rerr != nil {
				log.WithError(rerr).Warn("write error response")
			}
			return
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		if rerr := c.Render(code, page, nil); rerr != nil {
			log.WithError(rerr).Error("render error page")
			_ = c.String(code, http.StatusText(code))
		}
	}
}
