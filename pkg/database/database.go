package database

import (
	"mural/internal/model"
	"mural/pkg/config"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// NewSQLiteDB opens the database file and makes sure all tables exist.
// Schema creation is idempotent; there is no migration versioning.
func NewSQLiteDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.PostModel{},
		&model.MediaModel{},
		&model.ReactionModel{},
		&model.CommentModel{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
