package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenormalize(t *testing.T) {
	t.Run("Flattens all child collections", func(t *testing.T) {
		project := Project{
			ID:       7,
			Title:    "E-Commerce Platform",
			Category: "web",
			Client:   "Acme Corp",
			Technologies: []ProjectTechnology{
				{ProjectID: 7, Technology: "Go"},
				{ProjectID: 7, Technology: "PostgreSQL"},
			},
			Features: []ProjectFeature{
				{ProjectID: 7, Feature: "Checkout"},
			},
			Results: []ProjectResult{
				{ProjectID: 7, Key: "Load time", Value: "40% faster"},
			},
			Images: []ProjectImage{
				{ProjectID: 7, ImageURL: "https://cdn.example.com/a.png", SortOrder: 0},
			},
		}

		view := project.Denormalize()

		assert.Equal(t, 7, view.ID)
		assert.Equal(t, []string{"Go", "PostgreSQL"}, view.Technologies)
		assert.Equal(t, []string{"Checkout"}, view.Features)
		assert.Equal(t, []ResultPair{{Key: "Load time", Value: "40% faster"}}, view.Results)
		require.Len(t, view.Images, 1)
		assert.Equal(t, "https://cdn.example.com/a.png", view.Images[0].ImageURL)
	})

	t.Run("Orders images by sort order", func(t *testing.T) {
		project := Project{
			Images: []ProjectImage{
				{ImageURL: "third.png", SortOrder: 2},
				{ImageURL: "first.png", SortOrder: 0},
				{ImageURL: "second.png", SortOrder: 1},
			},
		}

		view := project.Denormalize()

		require.Len(t, view.Images, 3)
		assert.Equal(t, "first.png", view.Images[0].ImageURL)
		assert.Equal(t, "second.png", view.Images[1].ImageURL)
		assert.Equal(t, "third.png", view.Images[2].ImageURL)
	})

	t.Run("Empty children flatten to empty slices, not nil", func(t *testing.T) {
		view := Project{ID: 1, Title: "Bare"}.Denormalize()

		assert.NotNil(t, view.Technologies)
		assert.NotNil(t, view.Features)
		assert.NotNil(t, view.Results)
		assert.NotNil(t, view.Images)
		assert.Empty(t, view.Technologies)
	})
}

func TestRenormalize(t *testing.T) {
	t.Run("Tags every child row with the project ID", func(t *testing.T) {
		form := ProjectForm{
			Title:        "Mobile Banking App",
			Category:     "mobile",
			Technologies: []string{"Flutter", "Go"},
			Features:     []string{"Biometric login"},
			Results:      []ResultPair{{Key: "Users", Value: "100k"}},
			Images:       []ImageView{{ImageURL: "hero.png"}},
		}

		project := form.Renormalize(42)

		assert.Equal(t, 42, project.ID)
		for _, tech := range project.Technologies {
			assert.Equal(t, 42, tech.ProjectID)
		}
		for _, img := range project.Images {
			assert.Equal(t, 42, img.ProjectID)
		}
	})

	t.Run("Drops blank technologies and features", func(t *testing.T) {
		form := ProjectForm{
			Title:        "Cleanup",
			Category:     "web",
			Technologies: []string{"Go", "", "  ", "React"},
			Features:     []string{"", "Search"},
		}

		project := form.Renormalize(1)

		require.Len(t, project.Technologies, 2)
		assert.Equal(t, "Go", project.Technologies[0].Technology)
		assert.Equal(t, "React", project.Technologies[1].Technology)
		require.Len(t, project.Features, 1)
		assert.Equal(t, "Search", project.Features[0].Feature)
	})

	t.Run("Skips result pairs that are entirely blank", func(t *testing.T) {
		form := ProjectForm{
			Title:    "Results",
			Category: "web",
			Results: []ResultPair{
				{Key: "", Value: ""},
				{Key: "Revenue", Value: "+12%"},
				{Key: "Downtime", Value: ""},
			},
		}

		project := form.Renormalize(1)

		require.Len(t, project.Results, 2)
		assert.Equal(t, "Revenue", project.Results[0].Key)
		assert.Equal(t, "Downtime", project.Results[1].Key)
	})

	t.Run("Renumbers image sort order as a dense zero-based sequence", func(t *testing.T) {
		form := ProjectForm{
			Title:    "Gallery",
			Category: "web",
			Images: []ImageView{
				{ImageURL: "c.png", SortOrder: 10},
				{ImageURL: "a.png", SortOrder: 1},
				{ImageURL: "b.png", SortOrder: 5},
			},
		}

		project := form.Renormalize(3)

		require.Len(t, project.Images, 3)
		assert.Equal(t, "a.png", project.Images[0].ImageURL)
		assert.Equal(t, "b.png", project.Images[1].ImageURL)
		assert.Equal(t, "c.png", project.Images[2].ImageURL)
		for i, img := range project.Images {
			assert.Equal(t, i, img.SortOrder)
		}
	})

	t.Run("Round trip preserves content", func(t *testing.T) {
		form := ProjectForm{
			Title:        "Round Trip",
			Category:     "ai",
			Client:       "Hitek",
			Description:  "A project",
			Duration:     "3 months",
			Team:         "4 engineers",
			Technologies: []string{"Python", "Go"},
			Features:     []string{"Inference API"},
			Results:      []ResultPair{{Key: "Latency", Value: "20ms"}},
			Images: []ImageView{
				{ImageURL: "one.png", Caption: "One", SortOrder: 0},
				{ImageURL: "two.png", Caption: "Two", SortOrder: 1},
			},
		}

		view := form.Renormalize(9).Denormalize()

		assert.Equal(t, form.Title, view.Title)
		assert.Equal(t, form.Category, view.Category)
		assert.Equal(t, form.Client, view.Client)
		assert.Equal(t, form.Technologies, view.Technologies)
		assert.Equal(t, form.Features, view.Features)
		assert.Equal(t, form.Results, view.Results)
		assert.Equal(t, form.Images, view.Images)
	})
}
