// database/migrate.go - Database Migration Runner
package database

import (
	"fmt"
	"log"

	"github.com/Maexgon/RoasterManager/models"
	"gorm.io/gorm"
)

// RunMigrations runs all database migrations.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(
		&models.Club{},
		&models.Profile{},
		&models.Player{},
		&models.SkillAssessment{},
		&models.Team{},
		&models.ParentLink{},
		&models.Event{},
		&models.EventAttendance{},
		&models.EventPlanSlot{},
		&models.EventNote{},
		&models.Drill{},
		&models.BillboardPost{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	createIndexes(db)

	log.Println("All migrations completed")
	return nil
}

// createIndexes covers the lookups AutoMigrate's tag-driven indexes miss.
func createIndexes(db *gorm.DB) {
	// Roster filters
	db.Exec("CREATE INDEX IF NOT EXISTS idx_players_category_status ON players(category, status)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_players_full_name_lower ON players(LOWER(full_name))")

	// Latest-assessment lookups
	db.Exec("CREATE INDEX IF NOT EXISTS idx_skills_date_logged ON skills(date_logged DESC)")

	// Calendar queries
	db.Exec("CREATE INDEX IF NOT EXISTS idx_events_type_date ON events(type, event_date DESC)")

	// Parent portal linkage lookups by either side
	db.Exec("CREATE INDEX IF NOT EXISTS idx_player_parents_player ON player_parents(player_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_player_parents_parent ON player_parents(parent_profile_id)")
}
