package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public site endpoints and the authenticated admin area.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public endpoints: everything the marketing site and the chat widget read
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/auth/login", handlers.authHandler.login())

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Get("/categories", handlers.categoryHandler.getAllCategories())

		r.Get("/blog-posts/published", handlers.blogPostHandler.getPublishedBlogPosts())
		r.Get("/blog-post/{blogPostID}", handlers.blogPostHandler.getBlogPost())
		r.Post("/blog-post/{blogPostID}/view", handlers.blogPostHandler.incrementViews())

		r.Get("/chat/questions", handlers.chatHandler.getActiveQuestions())
		r.Post("/chat/message", handlers.chatHandler.postMessage())
	})

	// Admin endpoints
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Get("/auth/session", handlers.authHandler.session())
		r.Post("/auth/logout", handlers.authHandler.logout())

		// Project Handler endpoints
		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

		// Blog Post Handler endpoints
		r.Get("/blog-posts", handlers.blogPostHandler.getAllBlogPosts())
		r.Post("/blog-post", handlers.blogPostHandler.createBlogPost())
		r.Put("/blog-post/{blogPostID}", handlers.blogPostHandler.updateBlogPost())
		r.Delete("/blog-post/{blogPostID}", handlers.blogPostHandler.deleteBlogPost())
		r.Get("/blog-authors", handlers.blogPostHandler.getAllAuthors())

		// Chatbot configuration endpoints
		r.Get("/preset-questions", handlers.chatbotHandler.getAllPresetQuestions())
		r.Post("/preset-question", handlers.chatbotHandler.createPresetQuestion())
		r.Put("/preset-question/{questionID}", handlers.chatbotHandler.updatePresetQuestion())
		r.Delete("/preset-question/{questionID}", handlers.chatbotHandler.deletePresetQuestion())

		r.Get("/chat-responses", handlers.chatbotHandler.getAllChatResponses())
		r.Post("/chat-response", handlers.chatbotHandler.createChatResponse())
		r.Put("/chat-response/{responseID}", handlers.chatbotHandler.updateChatResponse())
		r.Delete("/chat-response/{responseID}", handlers.chatbotHandler.deleteChatResponse())

		r.Get("/chat-history", handlers.chatbotHandler.getChatHistory())
		r.Get("/chatbots", handlers.chatbotHandler.getAllChatbots())
		r.Get("/chatbot-analytics", handlers.chatbotHandler.getAnalytics())

		// Object storage endpoints
		r.Post("/upload", handlers.uploadHandler.uploadImage())
	})
}
