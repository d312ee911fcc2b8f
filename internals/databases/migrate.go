package database

import (
	"log"

	authModel "bcaroutine_backend/internals/features/auth/model"
	contentModel "bcaroutine_backend/internals/features/content/model"
	fileModel "bcaroutine_backend/internals/features/files/model"
	"bcaroutine_backend/internals/kvstore"
)

// Migrate keeps the hosted-mode tables in sync.
func Migrate() {
	err := DB.AutoMigrate(
		&kvstore.RoutineSnapshotModel{},
		&authModel.UserModel{},
		&authModel.TokenBlacklistModel{},
		&contentModel.ContentModel{},
		&fileModel.FileModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	log.Println("✅ Migrations applied.")
}
