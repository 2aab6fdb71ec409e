package database

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hitekgroup/hitek-site-backend/models"
)

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "projects_pkey"}
}

func TestInsertWithSequenceRecovery(t *testing.T) {
	t.Run("Clean insert runs once and skips realignment", func(t *testing.T) {
		inserts, realigns := 0, 0

		err := insertWithSequenceRecovery(
			func() error { inserts++; return nil },
			func() error { realigns++; return nil },
		)

		assert.NoError(t, err)
		assert.Equal(t, 1, inserts)
		assert.Equal(t, 0, realigns)
	})

	t.Run("Unique violation realigns and retries once", func(t *testing.T) {
		inserts, realigns := 0, 0

		err := insertWithSequenceRecovery(
			func() error {
				inserts++
				if inserts == 1 {
					return uniqueViolation()
				}
				return nil
			},
			func() error { realigns++; return nil },
		)

		assert.NoError(t, err)
		assert.Equal(t, 2, inserts)
		assert.Equal(t, 1, realigns)
	})

	t.Run("Never more than two insert attempts", func(t *testing.T) {
		inserts := 0

		err := insertWithSequenceRecovery(
			func() error { inserts++; return uniqueViolation() },
			func() error { return nil },
		)

		assert.Error(t, err)
		assert.Equal(t, 2, inserts)
	})

	t.Run("Non-collision errors propagate without realignment", func(t *testing.T) {
		inserts, realigns := 0, 0
		boom := errors.New("connection refused")

		err := insertWithSequenceRecovery(
			func() error { inserts++; return boom },
			func() error { realigns++; return nil },
		)

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, inserts)
		assert.Equal(t, 0, realigns)
	})

	t.Run("Realignment failure surfaces the original insert error", func(t *testing.T) {
		inserts := 0
		original := uniqueViolation()

		err := insertWithSequenceRecovery(
			func() error { inserts++; return original },
			func() error { return errors.New("setval: permission denied") },
		)

		assert.Equal(t, original, err)
		assert.Equal(t, 1, inserts)
	})
}

func seedProject(t *testing.T, repo *ProjectRepo) *models.Project {
	t.Helper()

	form := models.ProjectForm{
		Title:        "E-Commerce Platform",
		Category:     "web",
		Client:       "Acme Corp",
		Technologies: []string{"Go", "PostgreSQL"},
		Features:     []string{"Checkout", "Search"},
		Results:      []models.ResultPair{{Key: "Load time", Value: "40% faster"}},
		Images: []models.ImageView{
			{ImageURL: "one.png", SortOrder: 0},
			{ImageURL: "two.png", SortOrder: 1},
		},
	}

	project := form.Renormalize(0)
	require.NoError(t, repo.Add(&project))
	require.NotZero(t, project.ID)
	return &project
}

func TestReplace(t *testing.T) {
	t.Run("Submitted children replace the stored set", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewProjectRepo(db)
		project := seedProject(t, repo)

		form := models.ProjectForm{
			Title:        "E-Commerce Platform v2",
			Category:     "web",
			Technologies: []string{"Rust"},
			Features:     []string{"Checkout"},
		}
		replacement := form.Renormalize(project.ID)
		require.NoError(t, repo.Replace(&replacement))

		stored, err := repo.FindByID(project.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)

		assert.Equal(t, "E-Commerce Platform v2", stored.Title)
		require.Len(t, stored.Technologies, 1)
		assert.Equal(t, "Rust", stored.Technologies[0].Technology)
		require.Len(t, stored.Features, 1)
		assert.Empty(t, stored.Results)
		assert.Empty(t, stored.Images)
	})

	t.Run("Empty child lists clear every stored child row", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewProjectRepo(db)
		project := seedProject(t, repo)

		form := models.ProjectForm{Title: "Stripped", Category: "web"}
		replacement := form.Renormalize(project.ID)
		require.NoError(t, repo.Replace(&replacement))

		stored, err := repo.FindByID(project.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Empty(t, stored.Technologies)
		assert.Empty(t, stored.Features)
		assert.Empty(t, stored.Results)
		assert.Empty(t, stored.Images)

		for _, child := range []interface{}{
			&models.ProjectTechnology{},
			&models.ProjectFeature{},
			&models.ProjectResult{},
			&models.ProjectImage{},
		} {
			var count int64
			require.NoError(t, db.Model(child).Where("project_id = ?", project.ID).Count(&count).Error)
			assert.Zero(t, count)
		}
	})

	t.Run("Other projects keep their children", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewProjectRepo(db)
		first := seedProject(t, repo)
		second := seedProject(t, repo)

		form := models.ProjectForm{Title: "Stripped", Category: "web"}
		replacement := form.Renormalize(first.ID)
		require.NoError(t, repo.Replace(&replacement))

		untouched, err := repo.FindByID(second.ID)
		require.NoError(t, err)
		require.NotNil(t, untouched)
		assert.Len(t, untouched.Technologies, 2)
		assert.Len(t, untouched.Images, 2)
	})
}
