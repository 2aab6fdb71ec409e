package api

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hitekgroup/hitek-site-backend/database"
	"github.com/hitekgroup/hitek-site-backend/storage"
)

// validate is the shared struct validator used by all handlers.
var validate = validator.New()

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, store storage.ObjectStore, jwtSecret []byte, sessionTTL time.Duration, cfg map[string]string) *routeHandlers {
	return &routeHandlers{
		authHandler:     newAuthHandler(database.ProfileRepo(), jwtSecret, sessionTTL),
		projectHandler:  newProjectHandler(database.ProjectRepo(), database.CategoryRepo(), cfg),
		categoryHandler: newCategoryHandler(database.CategoryRepo()),
		blogPostHandler: newBlogPostHandler(database.BlogPostRepo(), database.BlogAuthorRepo(), cfg),
		chatbotHandler:  newChatbotHandler(database.PresetQuestionRepo(), database.ChatResponseRepo(), database.ChatHistoryRepo(), database.ChatbotRepo()),
		chatHandler:     newChatHandler(database.PresetQuestionRepo(), database.ChatResponseRepo(), database.ChatHistoryRepo()),
		uploadHandler:   newUploadHandler(store),
	}
}
