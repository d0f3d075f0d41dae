package db

import (
	"testing"

	"matchday/internal/forum/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestSeedTeams_Idempotent(t *testing.T) {
	db := newTestDB(t)

	SeedTeams(db)

	var first int64
	db.Model(&models.Team{}).Count(&first)
	if first == 0 {
		t.Fatal("SeedTeams() inserted no teams")
	}

	// Second run must not add rows
	SeedTeams(db)

	var second int64
	db.Model(&models.Team{}).Count(&second)
	if second != first {
		t.Errorf("team count after reseed = %d, want %d", second, first)
	}
}

func TestSeedTeams_UniqueNames(t *testing.T) {
	db := newTestDB(t)
	SeedTeams(db)

	var teams []models.Team
	db.Find(&teams)

	seen := make(map[string]bool)
	for _, team := range teams {
		if seen[team.Name] {
			t.Errorf("duplicate team name %q", team.Name)
		}
		seen[team.Name] = true
	}
}
