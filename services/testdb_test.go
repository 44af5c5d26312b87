package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the app schema. The
// tables are created by hand rather than through AutoMigrate: the
// players table carries a text[] column that only exists on Postgres,
// and the migration path would drag it in through the linkage
// association.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see an empty :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	for _, ddl := range testSchema {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

var testSchema = []string{
	`CREATE TABLE profiles (
		id text PRIMARY KEY,
		email text NOT NULL UNIQUE,
		password text NOT NULL,
		full_name text,
		role text DEFAULT 'Staff',
		is_parent numeric DEFAULT 0,
		language text DEFAULT 'es',
		theme text DEFAULT 'light',
		club_id text,
		created_at datetime,
		updated_at datetime,
		last_login datetime
	)`,
	`CREATE TABLE clubs (
		id text PRIMARY KEY,
		name text NOT NULL,
		logo_url text,
		created_at datetime
	)`,
	`CREATE TABLE players (
		id text PRIMARY KEY,
		first_name text NOT NULL,
		last_name text NOT NULL,
		nickname text,
		full_name text,
		category text,
		positions text,
		status text DEFAULT 'Activo',
		birth_date datetime,
		image_url text,
		blood_type text,
		allergies text,
		conditions text,
		emergency_contact text,
		certificate_url text,
		created_at datetime,
		updated_at datetime,
		CONSTRAINT idx_players_identity UNIQUE (first_name, last_name, nickname)
	)`,
	`CREATE TABLE teams (
		id text PRIMARY KEY,
		name text NOT NULL,
		player_count integer DEFAULT 15,
		substitutes_count integer DEFAULT 0,
		lineup text DEFAULT '{}',
		captain_id text,
		club_id text,
		created_at datetime,
		updated_at datetime
	)`,
	`CREATE TABLE skills (
		id text PRIMARY KEY,
		player_id text NOT NULL,
		passing_receiving integer DEFAULT 1,
		ruck integer DEFAULT 1,
		tackle integer DEFAULT 1,
		contact integer DEFAULT 1,
		speed integer DEFAULT 1,
		endurance integer DEFAULT 1,
		strength integer DEFAULT 1,
		tactical_positioning integer DEFAULT 1,
		decision_making integer DEFAULT 1,
		line_out integer DEFAULT 1,
		scrum integer DEFAULT 1,
		attack integer DEFAULT 1,
		defense integer DEFAULT 1,
		mentality integer DEFAULT 1,
		kicking integer DEFAULT 1,
		duel integer DEFAULT 1,
		date_logged datetime,
		created_at datetime
	)`,
	`CREATE TABLE player_parents (
		id integer PRIMARY KEY AUTOINCREMENT,
		parent_profile_id text NOT NULL,
		player_id text NOT NULL,
		created_at datetime,
		CONSTRAINT idx_parent_player UNIQUE (parent_profile_id, player_id)
	)`,
	`CREATE TABLE events (
		id text PRIMARY KEY,
		type text DEFAULT 'training',
		title text NOT NULL,
		event_date datetime,
		event_time text,
		location text,
		coach_id text,
		rival text,
		rival_club_id text,
		is_home numeric DEFAULT 1,
		our_score integer,
		their_score integer,
		result text DEFAULT 'pending',
		team_id text,
		created_at datetime,
		updated_at datetime
	)`,
	`CREATE TABLE event_attendance (
		id integer PRIMARY KEY AUTOINCREMENT,
		event_id text NOT NULL,
		player_id text NOT NULL,
		status text DEFAULT 'present',
		created_at datetime,
		updated_at datetime,
		CONSTRAINT idx_attendance_event_player UNIQUE (event_id, player_id)
	)`,
	`CREATE TABLE event_plan_slots (
		id integer PRIMARY KEY AUTOINCREMENT,
		event_id text NOT NULL,
		drill_id text NOT NULL,
		sort_order integer DEFAULT 0,
		duration_minutes integer
	)`,
	`CREATE TABLE event_notes (
		id integer PRIMARY KEY AUTOINCREMENT,
		event_id text NOT NULL,
		author_profile_id text NOT NULL,
		body text NOT NULL,
		created_at datetime
	)`,
	`CREATE TABLE drills (
		id text PRIMARY KEY,
		title text NOT NULL,
		description text,
		duration_minutes integer DEFAULT 10,
		category text,
		created_at datetime,
		updated_at datetime
	)`,
	`CREATE TABLE billboard_posts (
		id text PRIMARY KEY,
		author_profile_id text NOT NULL,
		title text NOT NULL,
		body text,
		pinned numeric DEFAULT 0,
		created_at datetime
	)`,
}
