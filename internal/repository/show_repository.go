package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/stagebook/internal/model"
)

// Shows joined with the display fields of their venue and artist. The
// canonical RFC 3339 start_time text sorts chronologically.
const showListingQuery = `SELECT
		s.venue_id,
		s.artist_id,
		s.start_time,
		v.name       AS venue_name,
		v.image_link AS venue_image_link,
		a.name       AS artist_name,
		a.image_link AS artist_image_link
	FROM shows s
	JOIN venues v  ON v.id = s.venue_id
	JOIN artists a ON a.id = s.artist_id`

const showListingOrder = ` ORDER BY s.start_time, s.venue_id, s.artist_id`

// ShowRepo encapsulates all database queries related to shows.
type ShowRepo struct {
	db *sqlx.DB
}

func NewShowRepo(db *sqlx.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a show. The venue and artist are not checked first: the
// foreign keys reject ids that do not exist, and the composite primary key
// rejects a second show for the same venue, artist and start time.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	const q = `INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)`
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, tx.Rebind(q), s.VenueID, s.ArtistID, s.StartTime); err != nil {
			return fmt.Errorf("insert show venue=%d artist=%d start=%s: %w", s.VenueID, s.ArtistID, s.StartTime, err)
		}
		return nil
	})
}

// ListAll returns every show ordered by start time.
func (r *ShowRepo) ListAll(ctx context.Context) ([]model.ShowListing, error) {
	return r.list(ctx, showListingQuery+showListingOrder)
}

// ListByVenue returns the shows hosted by a venue.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID int64) ([]model.ShowListing, error) {
	return r.list(ctx, showListingQuery+` WHERE s.venue_id = ?`+showListingOrder, venueID)
}

// ListByArtist returns the shows played by an artist.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID int64) ([]model.ShowListing, error) {
	return r.list(ctx, showListingQuery+` WHERE s.artist_id = ?`+showListingOrder, artistID)
}

func (r *ShowRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "shows")
}

func (r *ShowRepo) list(ctx context.Context, q string, args ...any) ([]model.ShowListing, error) {
	var out []model.ShowListing
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return tx.SelectContext(ctx, &out, tx.Rebind(q), args...)
	})
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	return out, nil
}
