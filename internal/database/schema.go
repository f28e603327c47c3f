package database

// schemas holds the bootstrap DDL per driver. Statements run one at a time
// because the MySQL driver rejects multi-statement strings by default.
var schemas = map[string][]string{
	MySQL: {
		`CREATE TABLE IF NOT EXISTS venues (
			id                  BIGINT        NOT NULL AUTO_INCREMENT PRIMARY KEY,
			name                VARCHAR(255)  NOT NULL,
			city                VARCHAR(120)  NOT NULL DEFAULT '',
			state               VARCHAR(120)  NOT NULL DEFAULT '',
			address             VARCHAR(120)  NOT NULL DEFAULT '',
			phone               VARCHAR(120)  NOT NULL DEFAULT '',
			genres              VARCHAR(1000) NOT NULL DEFAULT '[]',
			website             VARCHAR(120)  NOT NULL DEFAULT '',
			seeking_talent      BOOLEAN       NOT NULL DEFAULT FALSE,
			seeking_description VARCHAR(1000) NOT NULL DEFAULT '',
			image_link          VARCHAR(500)  NOT NULL DEFAULT '',
			facebook_link       VARCHAR(120)  NOT NULL DEFAULT '',
			UNIQUE KEY uq_venues_name (name)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS artists (
			id                  BIGINT        NOT NULL AUTO_INCREMENT PRIMARY KEY,
			name                VARCHAR(255)  NOT NULL,
			city                VARCHAR(120)  NOT NULL DEFAULT '',
			state               VARCHAR(120)  NOT NULL DEFAULT '',
			phone               VARCHAR(120)  NOT NULL DEFAULT '',
			genres              VARCHAR(1000) NOT NULL DEFAULT '[]',
			website             VARCHAR(120)  NOT NULL DEFAULT '',
			seeking_venue       BOOLEAN       NOT NULL DEFAULT FALSE,
			seeking_description VARCHAR(1000) NOT NULL DEFAULT '',
			image_link          VARCHAR(500)  NOT NULL DEFAULT '',
			facebook_link       VARCHAR(120)  NOT NULL DEFAULT '',
			UNIQUE KEY uq_artists_name (name)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS shows (
			venue_id   BIGINT      NOT NULL,
			artist_id  BIGINT      NOT NULL,
			start_time VARCHAR(40) NOT NULL,
			PRIMARY KEY (venue_id, artist_id, start_time),
			CONSTRAINT fk_shows_venue  FOREIGN KEY (venue_id)  REFERENCES venues(id)  ON DELETE CASCADE,
			CONSTRAINT fk_shows_artist FOREIGN KEY (artist_id) REFERENCES artists(id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	Postgres: {
		`CREATE TABLE IF NOT EXISTS venues (
			id                  BIGSERIAL     PRIMARY KEY,
			name                VARCHAR(255)  NOT NULL UNIQUE,
			city                VARCHAR(120)  NOT NULL DEFAULT '',
			state               VARCHAR(120)  NOT NULL DEFAULT '',
			address             VARCHAR(120)  NOT NULL DEFAULT '',
			phone               VARCHAR(120)  NOT NULL DEFAULT '',
			genres              TEXT          NOT NULL DEFAULT '[]',
			website             VARCHAR(120)  NOT NULL DEFAULT '',
			seeking_talent      BOOLEAN       NOT NULL DEFAULT FALSE,
			seeking_description TEXT          NOT NULL DEFAULT '',
			image_link          VARCHAR(500)  NOT NULL DEFAULT '',
			facebook_link       VARCHAR(120)  NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS artists (
			id                  BIGSERIAL     PRIMARY KEY,
			name                VARCHAR(255)  NOT NULL UNIQUE,
			city                VARCHAR(120)  NOT NULL DEFAULT '',
			state               VARCHAR(120)  NOT NULL DEFAULT '',
			phone               VARCHAR(120)  NOT NULL DEFAULT '',
			genres              TEXT          NOT NULL DEFAULT '[]',
			website             VARCHAR(120)  NOT NULL DEFAULT '',
			seeking_venue       BOOLEAN       NOT NULL DEFAULT FALSE,
			seeking_description TEXT          NOT NULL DEFAULT '',
			image_link          VARCHAR(500)  NOT NULL DEFAULT '',
			facebook_link       VARCHAR(120)  NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS shows (
			venue_id   BIGINT      NOT NULL REFERENCES venues(id)  ON DELETE CASCADE,
			artist_id  BIGINT      NOT NULL REFERENCES artists(id) ON DELETE CASCADE,
			start_time VARCHAR(40) NOT NULL,
			PRIMARY KEY (venue_id, artist_id, start_time)
		)`,
	},
	SQLite: {
		`CREATE TABLE IF NOT EXISTS venues (
			id                  INTEGER PRIMARY KEY AUTOINCREMENT,
			name                TEXT    NOT NULL UNIQUE,
			city                TEXT    NOT NULL DEFAULT '',
			state               TEXT    NOT NULL DEFAULT '',
			address             TEXT    NOT NULL DEFAULT '',
			phone               TEXT    NOT NULL DEFAULT '',
			genres              TEXT    NOT NULL DEFAULT '[]',
			website             TEXT    NOT NULL DEFAULT '',
			seeking_talent      BOOLEAN NOT NULL DEFAULT 0,
			seeking_description TEXT    NOT NULL DEFAULT '',
			image_link          TEXT    NOT NULL DEFAULT '',
			facebook_link       TEXT    NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS artists (
			id                  INTEGER PRIMARY KEY AUTOINCREMENT,
			name                TEXT    NOT NULL UNIQUE,
			city                TEXT    NOT NULL DEFAULT '',
			state               TEXT    NOT NULL DEFAULT '',
			phone               TEXT    NOT NULL DEFAULT '',
			genres              TEXT    NOT NULL DEFAULT '[]',
			website             TEXT    NOT NULL DEFAULT '',
			seeking_venue       BOOLEAN NOT NULL DEFAULT 0,
			seeking_description TEXT    NOT NULL DEFAULT '',
			image_link          TEXT    NOT NULL DEFAULT '',
			facebook_link       TEXT    NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS shows (
			venue_id   INTEGER NOT NULL REFERENCES venues(id)  ON DELETE CASCADE,
			artist_id  INTEGER NOT NULL REFERENCES artists(id) ON DELETE CASCADE,
			start_time TEXT    NOT NULL,
			PRIMARY KEY (venue_id, artist_id, start_time)
		)`,
	},
}
