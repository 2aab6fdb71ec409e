package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hitekgroup/hitek-site-backend/database"
	"github.com/hitekgroup/hitek-site-backend/errs"
	"github.com/hitekgroup/hitek-site-backend/models"
	"github.com/hitekgroup/hitek-site-backend/services"
)

type blogPostHandler struct {
	responder      Responder
	logger         zerolog.Logger
	blogPostRepo   *database.BlogPostRepo
	blogAuthorRepo *database.BlogAuthorRepo
	baseURL        string
}

func newBlogPostHandler(blogPostRepo *database.BlogPostRepo, blogAuthorRepo *database.BlogAuthorRepo, cfg map[string]string) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		blogPostRepo:   blogPostRepo,
		blogAuthorRepo: blogAuthorRepo,
		baseURL:        services.GetPublicBaseURL(cfg),
	}
}

// BlogPostView is a blog post with its public share link attached.
type BlogPostView struct {
	*models.BlogPost
	ShareURL string `json:"share_url"`
}

// BlogPostCollection represents multiple blog posts
type BlogPostCollection struct {
	BlogPosts []BlogPostView `json:"blog_posts"`
	Total     int            `json:"total,omitempty"`
}

func (h blogPostHandler) view(post *models.BlogPost) BlogPostView {
	return BlogPostView{
		BlogPost: post,
		ShareURL: services.BuildBlogPostURL(h.baseURL, post.Slug),
	}
}

func (h blogPostHandler) collection(posts []*models.BlogPost) BlogPostCollection {
	views := make([]BlogPostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, h.view(post))
	}
	return BlogPostCollection{BlogPosts: views, Total: len(views)}
}

// getAllBlogPosts retrieves every blog post, drafts included
// @Summary Get all blog posts
// @Description Retrieves all blog posts regardless of publication state, newest first
// @Tags BlogPosts
// @Accept json
// @Produce json
// @Success 200 {object} BlogPostCollection "List of blog posts"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blog posts"
// @Router /blog-posts [get]
func (h blogPostHandler) getAllBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.blogPostRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog posts", "blog posts", err))
			return
		}

		h.responder.WriteJSON(w, h.collection(posts))
	}
}

// getPublishedBlogPosts retrieves published posts for the public site
// @Summary Get published blog posts
// @Description Retrieves published blog posts ordered by publication date, newest first
// @Tags BlogPosts
// @Accept json
// @Produce json
// @Success 200 {object} BlogPostCollection "List of published blog posts"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blog posts"
// @Router /blog-posts/published [get]
func (h blogPostHandler) getPublishedBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.blogPostRepo.FindPublished()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find published blog posts", "blog posts", err))
			return
		}

		h.responder.WriteJSON(w, h.collection(posts))
	}
}

// getBlogPost retrieves a single blog post by ID or slug
// @Summary Get blog post
// @Description Retrieves a blog post by UUID, falling back to slug lookup so public article URLs resolve
// @Tags BlogPosts
// @Accept json
// @Produce json
// @Param blogPostID path string true "Blog post ID or slug"
// @Success 200 {object} BlogPostView "Blog post"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blog post"
// @Router /blog-post/{blogPostID} [get]
func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "blogPostID")
		if key == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing blogPostID"))
			return
		}

		var post *models.BlogPost
		var err error

		if id, parseErr := uuid.Parse(key); parseErr == nil {
			post, err = h.blogPostRepo.FindByID(id)
		} else {
			post, err = h.blogPostRepo.FindBySlug(key)
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		h.responder.WriteJSON(w, h.view(post))
	}
}

// incrementViews bumps the view counter of a blog post
// @Summary Record a blog post view
// @Description Atomically increments the post's view counter
// @Tags BlogPosts
// @Accept json
// @Produce json
// @Param blogPostID path string true "Blog post ID"
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blogPostID"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating views"
// @Router /blog-post/{blogPostID}/view [post]
func (h blogPostHandler) incrementViews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID, err := parseBlogPostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.blogPostRepo.IncrementViews(blogPostID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("increment blog post views", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "view recorded",
		})
	}
}

// createBlogPost creates a new blog post
// @Summary Create blog post
// @Description Creates a blog post; the slug is derived from the title and the publication timestamp is managed from status
// @Tags BlogPosts
// @Accept json
// @Produce json
// @Param blogPost body models.BlogPost true "Blog post data"
// @Success 201 {object} BlogPostView "Created blog post"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blog post data"
// @Failure 409 {object} ErrorResponse "Conflict - Slug already in use"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating blog post"
// @Router /blog-post [post]
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var post models.BlogPost
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if post.ID != uuid.Nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("id", "identifiers are assigned by the backend"))
			return
		}
		if post.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if post.Content == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
			return
		}
		if post.Status != "" && !models.ValidStatus(post.Status) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("status", "must be draft, published or archived"))
			return
		}

		if err := h.blogPostRepo.Add(&post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create blog post", "blog post", err))
			return
		}

		createdPost, err := h.blogPostRepo.FindByID(post.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created blog post", "blog post", err))
			return
		}
		if createdPost == nil {
			h.responder.WriteError(w, errs.NewInternalError("created blog post not found"))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, h.view(createdPost))
	}
}

// updateBlogPost updates an existing blog post
// @Summary Update blog post
// @Description Updates a blog post. The slug, creation time and view counter are never changed by edits
// @Tags BlogPosts
// @Accept json
// @Produce json
// @Param blogPostID path string true "Blog post ID"
// @Param blogPost body models.BlogPost true "Updated blog post data"
// @Success 200 {object} BlogPostView "Updated blog post"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blog post data"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating blog post"
// @Router /blog-post/{blogPostID} [put]
func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID, err := parseBlogPostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var post models.BlogPost
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if post.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if post.Content == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
			return
		}
		if post.Status != "" && !models.ValidStatus(post.Status) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("status", "must be draft, published or archived"))
			return
		}

		post.ID = blogPostID
		if err := h.blogPostRepo.Update(&post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update blog post", "blog post", err))
			return
		}

		updatedPost, err := h.blogPostRepo.FindByID(blogPostID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated blog post", "blog post", err))
			return
		}
		if updatedPost == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		h.responder.WriteJSON(w, h.view(updatedPost))
	}
}

// deleteBlogPost deletes a blog post by ID
// @Summary Delete blog post
// @Description Deletes a blog post
// @Tags BlogPosts
// @Accept json
// @Produce json
// @Param blogPostID path string true "Blog post ID"
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blogPostID"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting blog post"
// @Router /blog-post/{blogPostID} [delete]
func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID, err := parseBlogPostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existingPost, findErr := h.blogPostRepo.FindByID(blogPostID)
		if findErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog post", findErr))
			return
		}
		if existingPost == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		if err := h.blogPostRepo.Delete(blogPostID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete blog post", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog post deleted successfully",
		})
	}
}

// getAllAuthors retrieves every blog author
// @Summary Get all blog authors
// @Description Retrieves the authors available for article attribution
// @Tags BlogPosts
// @Accept json
// @Produce json
// @Success 200 {object} map[string][]models.BlogAuthor "List of authors"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching authors"
// @Router /blog-authors [get]
func (h blogPostHandler) getAllAuthors() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authors, err := h.blogAuthorRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog authors", "blog authors", err))
			return
		}

		h.responder.WriteJSON(w, map[string][]models.BlogAuthor{"authors": authors})
	}
}

func parseBlogPostID(r *http.Request) (uuid.UUID, error) {
	blogPostIDStr := chi.URLParam(r, "blogPostID")
	if blogPostIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing blogPostID")
	}

	blogPostID, err := uuid.Parse(blogPostIDStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid blogPostID")
	}
	return blogPostID, nil
}
