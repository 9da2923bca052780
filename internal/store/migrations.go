package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// One row per calendar date; later ingests replace earlier
		// ones via the primary key.
		`CREATE TABLE IF NOT EXISTS days (
			date TEXT PRIMARY KEY,
			steps INTEGER NOT NULL,
			energy_focus INTEGER NOT NULL,
			did_exercise INTEGER NOT NULL,
			exercise_type TEXT,
			exercise_minutes INTEGER,
			heart_rate_zone TEXT,
			avg_hr_bpm REAL,
			minutes_light REAL,
			minutes_moderate REAL,
			minutes_intense REAL,
			minutes_peak REAL,
			notes TEXT,
			step_points INTEGER NOT NULL,
			exercise_points INTEGER NOT NULL,
			activity_level INTEGER NOT NULL,
			lifestyle_status TEXT NOT NULL,
			recommendation TEXT NOT NULL,
			ingested_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_days_status ON days(lifestyle_status)`,
		`CREATE INDEX IF NOT EXISTS idx_days_level ON days(activity_level)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}
