package repository_test

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/profileapi/database"
	"github.com/profileapi/database/repository"
)

func newSQLiteConnection(t *testing.T) (*database.Connection, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}

	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	conn := database.NewConnectionFromGorm(db)

	if err := conn.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return conn, db
}

func ptr[T any](v T) *T {
	return &v
}

func seedProfile(t *testing.T, repo repository.Profiles, name, email string, kind database.UserType) *database.User {
	t.Helper()

	user, err := repo.Create(database.ProfileAttrs{
		Name:     name,
		Email:    email,
		UserType: kind,
	})

	if err != nil {
		t.Fatalf("seed profile %s: %v", email, err)
	}

	return user
}
