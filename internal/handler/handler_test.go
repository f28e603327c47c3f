package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/stagebook/internal/database"
	"github.com/iliyamo/stagebook/internal/flash"
	"github.com/iliyamo/stagebook/internal/handler"
	"github.com/iliyamo/stagebook/internal/model"
	"github.com/iliyamo/stagebook/internal/queue"
	"github.com/iliyamo/stagebook/internal/repository"
	"github.com/iliyamo/stagebook/internal/router"
	"github.com/iliyamo/stagebook/internal/view"
)

var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

// recorder stands in for the HTML renderer and keeps what each page got.
type recorder struct {
	flashes *flash.Store
	name    string
	data    any
	shown   []flash.Message
}

func (r *recorder) Render(w io.Writer, name string, data any, c echo.Context) error {
	r.name, r.data = name, data
	r.shown = r.flashes.Pop(c)
	_, err := io.WriteString(w, name)
	return err
}

type events struct{ got []queue.ActivityEvent }

func (e *events) Publish(_ context.Context, ev queue.ActivityEvent) error {
	e.got = append(e.got, ev)
	return nil
}

type purges struct{ n int }

func (p *purges) Purge(context.Context) error { p.n++; return nil }

type app struct {
	e       *echo.Echo
	h       *handler.Handler
	r       *recorder
	events  *events
	purges  *purges
	venues  *repository.VenueRepo
	artists *repository.ArtistRepo
	shows   *repository.ShowRepo
}

func newApp(t *testing.T) *app {
	t.Helper()
	db, err := database.Open(database.SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(context.Background(), db))

	log := logrus.New()
	log.SetOutput(io.Discard)

	a := &app{
		events:  &events{},
		purges:  &purges{},
		venues:  repository.NewVenueRepo(db),
		artists: repository.NewArtistRepo(db),
		shows:   repository.NewShowRepo(db),
	}
	flashes := flash.NewStore("test-secret", false)
	a.r = &recorder{flashes: flashes}
	h := handler.New(a.venues, a.artists, a.shows, flashes, a.events, a.purges)
	h.Now = func() time.Time { return testNow }
	a.h = h
	a.e = router.New(router.Options{Handler: h, Renderer: a.r, Log: log})
	return a
}

func (a *app) do(t *testing.T, method, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *app) venue(t *testing.T, name, city, state string) int64 {
	t.Helper()
	v := &model.Venue{Name: name, City: city, State: state}
	require.NoError(t, a.venues.Create(context.Background(), v))
	return v.ID
}

func (a *app) artist(t *testing.T, name string) int64 {
	t.Helper()
	ar := &model.Artist{Name: name}
	require.NoError(t, a.artists.Create(context.Background(), ar))
	return ar.ID
}

func (a *app) show(t *testing.T, venueID, artistID int64, start string) {
	t.Helper()
	ts, err := model.ParseTimestamp(start)
	require.NoError(t, err)
	require.NoError(t, a.shows.Create(context.Background(), &model.Show{VenueID: venueID, ArtistID: artistID, StartTime: ts}))
}

func flashCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == flash.CookieName {
			return c
		}
	}
	return nil
}

func fillmoreForm() url.Values {
	return url.Values{
		"name":          {"The Fillmore"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"address":       {"1805 Geary Blvd"},
		"phone":         {"415-346-6000"},
		"genres":        {"Rock", "Jazz"},
		"facebook_link": {"https://facebook.com/fillmore"},
	}
}

func TestCreateVenueThenShow(t *testing.T) {
	a := newApp(t)

	rec := a.do(t, http.MethodPost, "/venues/create", fillmoreForm())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pages/home", a.r.name)
	assert.Equal(t, []flash.Message{{Category: flash.Info, Text: "Venue The Fillmore was successfully listed!"}}, a.r.shown)

	venues, err := a.venues.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, venues, 1)
	id := venues[0].ID

	rec = a.do(t, http.MethodGet, "/venues/"+itoa(id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	detail, ok := a.r.data.(view.VenueDetail)
	require.True(t, ok)
	assert.Equal(t, []string{"Rock", "Jazz"}, detail.Genres)
	assert.Equal(t, 0, detail.PastShowsCount)
	assert.Equal(t, 0, detail.UpcomingShowsCount)
	assert.Empty(t, detail.UpcomingShows)

	require.Len(t, a.events.got, 1)
	assert.Equal(t, queue.VenueCreated, a.events.got[0].Kind)
	assert.Equal(t, id, a.events.got[0].EntityID)
	assert.Equal(t, 1, a.purges.n)
}

func TestCreateVenueDuplicateName(t *testing.T) {
	a := newApp(t)
	a.venue(t, "The Fillmore", "SF", "CA")

	rec := a.do(t, http.MethodPost, "/venues/create", fillmoreForm())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pages/home", a.r.name)
	assert.Equal(t, []flash.Message{{Category: flash.Error, Text: "An error occurred. Venue The Fillmore could not be listed."}}, a.r.shown)
	n, err := a.venues.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Empty(t, a.events.got)
}

func TestCreateVenueWithoutName(t *testing.T) {
	a := newApp(t)
	form := fillmoreForm()
	form.Set("name", "   ")

	a.do(t, http.MethodPost, "/venues/create", form)

	require.Len(t, a.r.shown, 1)
	assert.Equal(t, flash.Error, a.r.shown[0].Category)
	n, err := a.venues.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMissingRecordsAre404(t *testing.T) {
	a := newApp(t)
	for _, target := range []string{"/venues/99", "/venues/99/edit", "/artists/99", "/artists/99/edit", "/venues/abc", "/nowhere"} {
		rec := a.do(t, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Equal(t, "errors/404", a.r.name, target)
	}

	rec := a.do(t, http.MethodPost, "/venues/99/edit", fillmoreForm())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShowClassification(t *testing.T) {
	a := newApp(t)
	vid := a.venue(t, "The Fillmore", "SF", "CA")
	aid := a.artist(t, "Guns N Petals")
	a.show(t, vid, aid, "2030-01-01T20:00:00")
	a.show(t, vid, aid, "2019-05-21T21:30:00")

	a.do(t, http.MethodGet, "/venues/"+itoa(vid), nil)
	vd := a.r.data.(view.VenueDetail)
	require.Len(t, vd.UpcomingShows, 1)
	require.Len(t, vd.PastShows, 1)
	assert.Equal(t, 2030, vd.UpcomingShows[0].StartTime.Year())
	assert.Equal(t, 2019, vd.PastShows[0].StartTime.Year())
	assert.Equal(t, "Guns N Petals", vd.UpcomingShows[0].ArtistName)

	a.do(t, http.MethodGet, "/artists/"+itoa(aid), nil)
	ad := a.r.data.(view.ArtistDetail)
	assert.Equal(t, 1, ad.UpcomingShowsCount)
	assert.Equal(t, 1, ad.PastShowsCount)
	assert.Equal(t, "The Fillmore", ad.UpcomingShows[0].VenueName)

	a.do(t, http.MethodGet, "/venues", nil)
	areas := a.r.data.([]view.Area)
	require.Len(t, areas, 1)
	assert.Equal(t, 1, areas[0].Venues[0].NumUpcomingShows)
}

func TestListVenuesGroupsByLocation(t *testing.T) {
	a := newApp(t)
	a.venue(t, "The Musical Hop", "San Francisco", "CA")
	a.venue(t, "The Dueling Pianos Bar", "New York", "NY")
	a.venue(t, "Park Square Live Music & Coffee", "San Francisco", "CA")

	rec := a.do(t, http.MethodGet, "/venues", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	areas := a.r.data.([]view.Area)
	require.Len(t, areas, 2)
	assert.Equal(t, "CA", areas[0].State)
	assert.Len(t, areas[0].Venues, 2)
	assert.Equal(t, "New York", areas[1].City)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	a := newApp(t)
	a.venue(t, "The Musical Hop", "SF", "CA")
	a.venue(t, "Park Square Live Music & Coffee", "SF", "CA")
	a.venue(t, "The Dueling Pianos Bar", "NY", "NY")

	a.do(t, http.MethodPost, "/venues/search", url.Values{"search_term": {"MUSIC"}})

	res := a.r.data.(view.SearchResults)
	assert.Equal(t, "MUSIC", res.SearchTerm)
	assert.Equal(t, 2, res.Count)

	a.do(t, http.MethodPost, "/venues/search", url.Values{"search_term": {""}})
	assert.Equal(t, 3, a.r.data.(view.SearchResults).Count)
}

func TestSearchArtists(t *testing.T) {
	a := newApp(t)
	vid := a.venue(t, "The Fillmore", "SF", "CA")
	aid := a.artist(t, "Guns N Petals")
	a.artist(t, "Matt Quevedo")
	a.show(t, vid, aid, "2030-01-01T20:00:00")

	a.do(t, http.MethodPost, "/artists/search", url.Values{"search_term": {"a"}})

	res := a.r.data.(view.SearchResults)
	require.Equal(t, 2, res.Count)
	assert.Equal(t, view.Summary{ID: aid, Name: "Guns N Petals", NumUpcomingShows: 1}, res.Data[0])
}

func TestDeleteVenue(t *testing.T) {
	a := newApp(t)
	vid := a.venue(t, "The Fillmore", "SF", "CA")
	aid := a.artist(t, "Guns N Petals")
	a.show(t, vid, aid, "2030-01-01T20:00:00")

	rec := a.do(t, http.MethodPost, "/venues/"+itoa(vid), url.Values{"_method": {"DELETE"}})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	n, err := a.shows.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	ck := flashCookie(rec)
	require.NotNil(t, ck)
	a.do(t, http.MethodGet, "/", nil, ck)
	assert.Equal(t, "pages/home", a.r.name)
	assert.Equal(t, []flash.Message{{Category: flash.Info, Text: "Venue with id " + itoa(vid) + " was deleted successfully"}}, a.r.shown)
}

func TestDeleteMissingVenueRedirects(t *testing.T) {
	a := newApp(t)

	rec := a.do(t, http.MethodDelete, "/venues/4242", nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestDeleteArtist(t *testing.T) {
	a := newApp(t)
	aid := a.artist(t, "Guns N Petals")

	rec := a.do(t, http.MethodDelete, "/artists/"+itoa(aid), nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	n, err := a.artists.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	require.Len(t, a.events.got, 1)
	assert.Equal(t, queue.ArtistDeleted, a.events.got[0].Kind)
}

func TestEditVenue(t *testing.T) {
	a := newApp(t)
	vid := a.venue(t, "The Fillmore", "SF", "CA")

	a.do(t, http.MethodGet, "/venues/"+itoa(vid)+"/edit", nil)
	edit := a.r.data.(view.VenueEdit)
	assert.Equal(t, "The Fillmore", edit.Form.Name)
	assert.Equal(t, "CA", edit.Form.State)

	form := fillmoreForm()
	form.Set("name", "The Fillmore West")
	form.Set("seeking_talent", "y")
	rec := a.do(t, http.MethodPost, "/venues/"+itoa(vid)+"/edit", form)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/venues/"+itoa(vid), rec.Header().Get(echo.HeaderLocation))
	v, err := a.venues.GetByID(context.Background(), vid)
	require.NoError(t, err)
	assert.Equal(t, "The Fillmore West", v.Name)
	assert.Equal(t, "San Francisco", v.City)
	assert.Equal(t, model.Genres{"Rock", "Jazz"}, v.Genres)
	assert.True(t, v.SeekingTalent)
}

func TestEditVenueResubmitKeepsStoredValues(t *testing.T) {
	a := newApp(t)
	v := &model.Venue{Name: "The Fillmore", City: "SF", Genres: model.Genres{"Rock", "Jazz"}}
	require.NoError(t, a.venues.Create(context.Background(), v))

	a.do(t, http.MethodGet, "/venues/"+itoa(v.ID)+"/edit", nil)
	form := a.r.data.(view.VenueEdit).Form
	assert.Contains(t, form.GenreChoices, "Rock")

	rec := a.do(t, http.MethodPost, "/venues/"+itoa(v.ID)+"/edit", url.Values{
		"name":   {form.Name},
		"city":   {form.City},
		"state":  {form.State},
		"genres": form.Genres,
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	got, err := a.venues.GetByID(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Genres{"Rock", "Jazz"}, got.Genres)
	assert.Empty(t, got.State)
}

func TestEditVenueCommitFailure(t *testing.T) {
	a := newApp(t)
	a.venue(t, "The Fillmore", "SF", "CA")
	vid := a.venue(t, "The Musical Hop", "SF", "CA")

	rec := a.do(t, http.MethodPost, "/venues/"+itoa(vid)+"/edit", fillmoreForm())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "errors/500", a.r.name)
}

func TestEditArtist(t *testing.T) {
	a := newApp(t)
	aid := a.artist(t, "Guns N Petals")

	rec := a.do(t, http.MethodPost, "/artists/"+itoa(aid)+"/edit", url.Values{
		"name":          {"Guns N Petals"},
		"city":          {"San Francisco"},
		"genres":        {"Rock n Roll"},
		"seeking_venue": {"on"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	ar, err := a.artists.GetByID(context.Background(), aid)
	require.NoError(t, err)
	assert.Equal(t, "San Francisco", ar.City)
	assert.True(t, ar.SeekingVenue)
	assert.Equal(t, model.Genres{"Rock n Roll"}, ar.Genres)
}

func TestCreateArtist(t *testing.T) {
	a := newApp(t)

	a.do(t, http.MethodPost, "/artists/create", url.Values{"name": {"Matt Quevedo"}, "genres": {"Jazz"}})

	assert.Equal(t, []flash.Message{{Category: flash.Info, Text: "Artist Matt Quevedo was successfully listed!"}}, a.r.shown)
	a.do(t, http.MethodGet, "/artists", nil)
	rows := a.r.data.([]view.ArtistRow)
	require.Len(t, rows, 1)
	assert.Equal(t, "Matt Quevedo", rows[0].Name)
}

func TestCreateShow(t *testing.T) {
	a := newApp(t)
	vid := a.venue(t, "The Fillmore", "SF", "CA")
	aid := a.artist(t, "Guns N Petals")

	a.do(t, http.MethodPost, "/shows/create", url.Values{
		"venue_id":   {itoa(vid)},
		"artist_id":  {itoa(aid)},
		"start_time": {"2030-01-01 20:00:00"},
	})

	assert.Equal(t, []flash.Message{{Category: flash.Info, Text: "Show was successfully listed!"}}, a.r.shown)
	a.do(t, http.MethodGet, "/shows", nil)
	rows := a.r.data.([]view.ShowRow)
	require.Len(t, rows, 1)
	assert.Equal(t, "The Fillmore", rows[0].VenueName)
	assert.True(t, time.Date(2030, 1, 1, 20, 0, 0, 0, time.UTC).Equal(rows[0].StartTime))

	require.Len(t, a.events.got, 1)
	ev := a.events.got[0]
	assert.Equal(t, queue.ShowCreated, ev.Kind)
	assert.Zero(t, ev.EntityID)
	assert.Equal(t, vid, ev.VenueID)
	assert.Equal(t, aid, ev.ArtistID)
}

func TestShowFormDefaultRoundTripsOnNonUTCClock(t *testing.T) {
	a := newApp(t)
	berlin := time.FixedZone("CEST", 2*60*60)
	submitted := time.Date(2026, 10, 15, 14, 0, 0, 0, berlin)
	a.h.Now = func() time.Time { return submitted }
	vid := a.venue(t, "The Fillmore", "SF", "CA")
	aid := a.artist(t, "Guns N Petals")

	a.do(t, http.MethodGet, "/shows/create", nil)
	def := a.r.data.(view.ShowForm).StartTime
	assert.Equal(t, "2026-10-15 12:00:00", def)

	a.do(t, http.MethodPost, "/shows/create", url.Values{
		"venue_id":   {itoa(vid)},
		"artist_id":  {itoa(aid)},
		"start_time": {def},
	})

	shows, err := a.shows.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.True(t, submitted.Equal(shows[0].StartsAt()), "stored %s", shows[0].StartsAt())

	a.do(t, http.MethodGet, "/venues/"+itoa(vid), nil)
	vd := a.r.data.(view.VenueDetail)
	assert.Equal(t, 1, vd.UpcomingShowsCount, "a show starting at the submit instant is upcoming")
	assert.Zero(t, vd.PastShowsCount)
}

func TestCreateShowFailures(t *testing.T) {
	a := newApp(t)
	vid := a.venue(t, "The Fillmore", "SF", "CA")
	aid := a.artist(t, "Guns N Petals")

	cases := map[string]url.Values{
		"unknown venue": {"venue_id": {"999"}, "artist_id": {itoa(aid)}, "start_time": {"2030-01-01 20:00:00"}},
		"bad id":        {"venue_id": {"abc"}, "artist_id": {itoa(aid)}, "start_time": {"2030-01-01 20:00:00"}},
		"bad time":      {"venue_id": {itoa(vid)}, "artist_id": {itoa(aid)}, "start_time": {"next tuesday"}},
	}
	for name, form := range cases {
		t.Run(name, func(t *testing.T) {
			rec := a.do(t, http.MethodPost, "/shows/create", form)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, []flash.Message{{Category: flash.Error, Text: "An error occurred. Show could not be listed."}}, a.r.shown)
		})
	}
	n, err := a.shows.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFormsRender(t *testing.T) {
	a := newApp(t)
	for target, page := range map[string]string{
		"/venues/create":  "forms/new_venue",
		"/artists/create": "forms/new_artist",
		"/shows/create":   "forms/new_show",
	} {
		rec := a.do(t, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, page, a.r.name)
	}
	assert.Equal(t, "2026-10-15 12:00:00", a.r.data.(view.ShowForm).StartTime)
}

func TestHealth(t *testing.T) {
	a := newApp(t)
	rec := a.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
