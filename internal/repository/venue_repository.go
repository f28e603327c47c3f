// Package repository contains data access logic separated from HTTP
// handlers. This file holds the venue queries.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/stagebook/internal/model"
)

const venueColumns = `id, name, city, state, address, phone, genres, website,
	seeking_talent, seeking_description, image_link, facebook_link`

// VenueRepo encapsulates all database queries related to venues.
type VenueRepo struct {
	db *sqlx.DB
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.
func NewVenueRepo(db *sqlx.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Create inserts a new venue. On success v.ID holds the generated id. A
// duplicate name violates the unique constraint and nothing is written.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	const q = `INSERT INTO venues (name, city, state, address, phone, genres, website,
		seeking_talent, seeking_description, image_link, facebook_link)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		id, err := insertID(ctx, tx, q,
			v.Name, v.City, v.State, v.Address, v.Phone, v.Genres, v.Website,
			v.SeekingTalent, v.SeekingDescription, v.ImageLink, v.FacebookLink)
		if err != nil {
			return fmt.Errorf("insert venue %q: %w", v.Name, err)
		}
		v.ID = id
		return nil
	})
}

// GetByID fetches a venue by id. It returns ErrVenueNotFound if no row
// matches.
func (r *VenueRepo) GetByID(ctx context.Context, id int64) (*model.Venue, error) {
	var v model.Venue
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return tx.GetContext(ctx, &v, tx.Rebind(`SELECT `+venueColumns+` FROM venues WHERE id = ?`), id)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("get venue %d: %w", id, err)
	}
	return &v, nil
}

// ListAll returns every venue ordered by id.
func (r *VenueRepo) ListAll(ctx context.Context) ([]*model.Venue, error) {
	var out []*model.Venue
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return tx.SelectContext(ctx, &out, `SELECT `+venueColumns+` FROM venues ORDER BY id`)
	})
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return out, nil
}

// Update overwrites every column of the venue row identified by v.ID with
// the values in v. Updating a row that no longer exists is not an error.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	const q = `UPDATE venues
		SET name = ?, city = ?, state = ?, address = ?, phone = ?, genres = ?, website = ?,
		    seeking_talent = ?, seeking_description = ?, image_link = ?, facebook_link = ?
		WHERE id = ?`
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, tx.Rebind(q),
			v.Name, v.City, v.State, v.Address, v.Phone, v.Genres, v.Website,
			v.SeekingTalent, v.SeekingDescription, v.ImageLink, v.FacebookLink, v.ID)
		if err != nil {
			return fmt.Errorf("update venue %d: %w", v.ID, err)
		}
		return nil
	})
}

// DeleteByID removes a venue and the shows it hosts. Deleting an id that
// does not exist affects no rows and still succeeds.
func (r *VenueRepo) DeleteByID(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM shows WHERE venue_id = ?`), id); err != nil {
			return fmt.Errorf("delete shows of venue %d: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM venues WHERE id = ?`), id); err != nil {
			return fmt.Errorf("delete venue %d: %w", id, err)
		}
		return nil
	})
}

// Count returns the number of stored venues.
func (r *VenueRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "venues")
}
