package model

// Artist is a performer that plays shows at venues. This struct
// corresponds to a row in the `artists` table.
type Artist struct {
	ID                 int64  `db:"id"`                  // artists.id
	Name               string `db:"name"`                // artists.name, unique
	City               string `db:"city"`                // artists.city
	State              string `db:"state"`               // artists.state
	Phone              string `db:"phone"`               // artists.phone
	Genres             Genres `db:"genres"`              // artists.genres (JSON list)
	Website            string `db:"website"`             // artists.website
	SeekingVenue       bool   `db:"seeking_venue"`       // artists.seeking_venue
	SeekingDescription string `db:"seeking_description"` // artists.seeking_description
	ImageLink          string `db:"image_link"`          // artists.image_link
	FacebookLink       string `db:"facebook_link"`       // artists.facebook_link
}
