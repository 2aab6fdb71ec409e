package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hitekgroup/hitek-site-backend/database"
	"github.com/hitekgroup/hitek-site-backend/models"
)

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func newProjectTestHandler(t *testing.T) (projectHandler, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Project{},
		&models.ProjectTechnology{},
		&models.ProjectFeature{},
		&models.ProjectResult{},
		&models.ProjectImage{},
	))

	handler := newProjectHandler(
		database.NewProjectRepo(db),
		database.NewCategoryRepo(db),
		map[string]string{"PUBLIC_BASE_URL": "https://hitekgroup.vn"},
	)
	return handler, db
}

func postProject(t *testing.T, handler projectHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/project", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.createProject()(rec, req)
	return rec
}

func TestCreateProjectCategoryValidation(t *testing.T) {
	t.Run("Unknown category is rejected", func(t *testing.T) {
		handler, _ := newProjectTestHandler(t)

		rec := postProject(t, handler, `{"title":"Rocket Site","category":"spacecraft"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "category")
	})

	t.Run("Fallback category is accepted while none are stored", func(t *testing.T) {
		handler, _ := newProjectTestHandler(t)

		rec := postProject(t, handler, `{"title":"Corporate Site","category":"web"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"share_url":"https://hitekgroup.vn/projects/`)
	})

	t.Run("Stored categories replace the fallback set", func(t *testing.T) {
		handler, db := newProjectTestHandler(t)
		require.NoError(t, db.Create(&models.Category{ID: "fintech", Name: "Fintech", Icon: "💳"}).Error)

		rec := postProject(t, handler, `{"title":"Trading App","category":"fintech"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)

		// "web" is a fallback slug; with real rows stored it no longer validates
		rec = postProject(t, handler, `{"title":"Corporate Site","category":"web"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Client-supplied id is still rejected", func(t *testing.T) {
		handler, _ := newProjectTestHandler(t)

		rec := postProject(t, handler, `{"id":7,"title":"Corporate Site","category":"web"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "id")
	})
}

func TestUpdateProjectCategoryValidation(t *testing.T) {
	handler, _ := newProjectTestHandler(t)

	created := postProject(t, handler, `{"title":"Corporate Site","category":"web"}`)
	require.Equal(t, http.StatusCreated, created.Code)

	req := httptest.NewRequest(http.MethodPut, "/project/1", strings.NewReader(`{"title":"Corporate Site","category":"spacecraft"}`))
	req.Header.Set("Content-Type", "application/json")
	req = withURLParam(req, "projectID", "1")
	rec := httptest.NewRecorder()
	handler.updateProject()(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "category")
}
