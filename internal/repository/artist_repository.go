package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/stagebook/internal/model"
)

const artistColumns = `id, name, city, state, phone, genres, website,
	seeking_venue, seeking_description, image_link, facebook_link`

// ArtistRepo encapsulates all database queries related to artists.
type ArtistRepo struct {
	db *sqlx.DB
}

func NewArtistRepo(db *sqlx.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// Create inserts a new artist and sets a.ID.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	const q = `INSERT INTO artists (name, city, state, phone, genres, website,
		seeking_venue, seeking_description, image_link, facebook_link)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		id, err := insertID(ctx, tx, q,
			a.Name, a.City, a.State, a.Phone, a.Genres, a.Website,
			a.SeekingVenue, a.SeekingDescription, a.ImageLink, a.FacebookLink)
		if err != nil {
			return fmt.Errorf("insert artist %q: %w", a.Name, err)
		}
		a.ID = id
		return nil
	})
}

// GetByID returns ErrArtistNotFound if no row matches.
func (r *ArtistRepo) GetByID(ctx context.Context, id int64) (*model.Artist, error) {
	var a model.Artist
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return tx.GetContext(ctx, &a, tx.Rebind(`SELECT `+artistColumns+` FROM artists WHERE id = ?`), id)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, fmt.Errorf("get artist %d: %w", id, err)
	}
	return &a, nil
}

func (r *ArtistRepo) ListAll(ctx context.Context) ([]*model.Artist, error) {
	var out []*model.Artist
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return tx.SelectContext(ctx, &out, `SELECT `+artistColumns+` FROM artists ORDER BY id`)
	})
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return out, nil
}

// Update overwrites every column of the artist row identified by a.ID.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	const q = `UPDATE artists
		SET name = ?, city = ?, state = ?, phone = ?, genres = ?, website = ?,
		    seeking_venue = ?, seeking_description = ?, image_link = ?, facebook_link = ?
		WHERE id = ?`
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, tx.Rebind(q),
			a.Name, a.City, a.State, a.Phone, a.Genres, a.Website,
			a.SeekingVenue, a.SeekingDescription, a.ImageLink, a.FacebookLink, a.ID)
		if err != nil {
			return fmt.Errorf("update artist %d: %w", a.ID, err)
		}
		return nil
	})
}

// DeleteByID removes an artist and the shows they play. A missing id is
// not an error.
func (r *ArtistRepo) DeleteByID(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM shows WHERE artist_id = ?`), id); err != nil {
			return fmt.Errorf("delete shows of artist %d: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM artists WHERE id = ?`), id); err != nil {
			return fmt.Errorf("delete artist %d: %w", id, err)
		}
		return nil
	})
}

func (r *ArtistRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "artists")
}
