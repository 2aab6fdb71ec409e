package database

import (
	"gorm.io/gorm"
)

type Database struct {
	projectRepo        *ProjectRepo
	categoryRepo       *CategoryRepo
	blogPostRepo       *BlogPostRepo
	blogAuthorRepo     *BlogAuthorRepo
	presetQuestionRepo *PresetQuestionRepo
	chatResponseRepo   *ChatResponseRepo
	chatHistoryRepo    *ChatHistoryRepo
	chatbotRepo        *ChatbotRepo
	profileRepo        *ProfileRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:        NewProjectRepo(db),
		categoryRepo:       NewCategoryRepo(db),
		blogPostRepo:       NewBlogPostRepo(db),
		blogAuthorRepo:     NewBlogAuthorRepo(db),
		presetQuestionRepo: NewPresetQuestionRepo(db),
		chatResponseRepo:   NewChatResponseRepo(db),
		chatHistoryRepo:    NewChatHistoryRepo(db),
		chatbotRepo:        NewChatbotRepo(db),
		profileRepo:        NewProfileRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) BlogAuthorRepo() *BlogAuthorRepo {
	return d.blogAuthorRepo
}

func (d Database) PresetQuestionRepo() *PresetQuestionRepo {
	return d.presetQuestionRepo
}

func (d Database) ChatResponseRepo() *ChatResponseRepo {
	return d.chatResponseRepo
}

func (d Database) ChatHistoryRepo() *ChatHistoryRepo {
	return d.chatHistoryRepo
}

func (d Database) ChatbotRepo() *ChatbotRepo {
	return d.chatbotRepo
}

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}
