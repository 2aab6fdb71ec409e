package database

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/hitekgroup/hitek-site-backend/models"
)

// Migrate applies all pending schema migrations. Child tables declare
// ON DELETE CASCADE so deleting a project removes its technologies, features,
// results and images; that cascade is part of the schema, not left to the
// operator.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "202601010001_initial_schema",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&models.Category{},
					&models.Project{},
					&models.ProjectTechnology{},
					&models.ProjectFeature{},
					&models.ProjectResult{},
					&models.ProjectImage{},
					&models.BlogAuthor{},
					&models.BlogPost{},
					&models.PresetQuestion{},
					&models.ChatResponse{},
					&models.ChatHistory{},
					&models.Chatbot{},
					&models.Profile{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					"profiles", "chatbots", "chat_history", "chat_responses",
					"preset_questions", "blog_posts", "blog_authors",
					"project_images", "project_results", "project_features",
					"project_technologies", "projects", "categories",
				)
			},
		},
		{
			ID: "202601010002_seed_categories",
			Migrate: func(tx *gorm.DB) error {
				var count int64
				if err := tx.Model(&models.Category{}).Count(&count).Error; err != nil {
					return err
				}
				if count > 0 {
					return nil
				}
				return tx.Create(models.FallbackCategories()).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return nil
			},
		},
	})

	if err := m.Migrate(); err != nil {
		return err
	}

	log.Info().Msg("Database migrations applied")
	return nil
}

// SeedAdmin ensures an admin profile exists for the given credentials. It is a
// no-op when the email is already registered or when either value is empty.
func SeedAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.Profile{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := models.Profile{
		Email: email,
		Name:  "Administrator",
		Role:  "admin",
	}
	if err := admin.SetPassword(password); err != nil {
		return err
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("Seeded admin profile")
	return nil
}
