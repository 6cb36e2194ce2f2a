package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS reminders (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	message    TEXT NOT NULL,
	datetime   DATETIME NOT NULL,
	is_voice   INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS house_tasks (
	id             TEXT PRIMARY KEY,
	title          TEXT NOT NULL,
	area           TEXT NOT NULL,
	frequency      TEXT NOT NULL DEFAULT 'weekly',
	last_completed DATETIME,
	created_at     DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS life_goals (
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	category     TEXT NOT NULL DEFAULT 'personal',
	date_created DATETIME NOT NULL,
	completed    INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS settings (
	id                  INTEGER PRIMARY KEY CHECK (id = 1),
	voice_notifications INTEGER NOT NULL DEFAULT 1,
	vibration           INTEGER NOT NULL DEFAULT 1,
	volume              REAL NOT NULL DEFAULT 0.7,
	birth_date          DATETIME,
	life_expectancy     REAL NOT NULL DEFAULT 80
);

CREATE INDEX IF NOT EXISTS idx_reminders_datetime ON reminders(datetime);
CREATE INDEX IF NOT EXISTS idx_life_goals_category ON life_goals(category);
CREATE INDEX IF NOT EXISTS idx_life_goals_completed ON life_goals(completed);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
