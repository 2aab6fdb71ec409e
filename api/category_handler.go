package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hitekgroup/hitek-site-backend/database"
	"github.com/hitekgroup/hitek-site-backend/models"
)

type categoryHandler struct {
	responder    Responder
	logger       zerolog.Logger
	categoryRepo *database.CategoryRepo
}

func newCategoryHandler(categoryRepo *database.CategoryRepo) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		categoryRepo: categoryRepo,
	}
}

// CategoryCollection represents multiple project categories
type CategoryCollection struct {
	Categories []models.Category `json:"categories"`
}

// getAllCategories retrieves all project categories
// @Summary Get all categories
// @Description Retrieves project categories; serves the built-in set when none are configured
// @Tags Categories
// @Accept json
// @Produce json
// @Success 200 {object} CategoryCollection "List of categories"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching categories"
// @Router /categories [get]
func (h categoryHandler) getAllCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find categories", "categories", err))
			return
		}

		h.responder.WriteJSON(w, CategoryCollection{Categories: categories})
	}
}
