package model

// Venue is a location that can host shows. This struct corresponds to a
// row in the `venues` table.
//
// Fields:
//
//	ID                 – primary key identifier.
//	Name               – unique display name.
//	City, State        – location used to group venues on the listing page.
//	Address, Phone     – contact details.
//	Genres             – genres the venue books, stored as a JSON list.
//	SeekingTalent      – whether the venue is looking for artists.
//	SeekingDescription – free text shown when SeekingTalent is set.
type Venue struct {
	ID                 int64  `db:"id"`
	Name               string `db:"name"`
	City               string `db:"city"`
	State              string `db:"state"`
	Address            string `db:"address"`
	Phone              string `db:"phone"`
	Genres             Genres `db:"genres"`
	Website            string `db:"website"`
	SeekingTalent      bool   `db:"seeking_talent"`
	SeekingDescription string `db:"seeking_description"`
	ImageLink          string `db:"image_link"`
	FacebookLink       string `db:"facebook_link"`
}
