package models

import (
	"sort"
	"strings"
	"time"
)

// Project represents a portfolio case study. The child collections carry no
// identity of their own outside the parent: every write replaces them as a set.
type Project struct {
	ID          int       `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Category    string    `json:"category" db:"category" gorm:"type:text;not null;index:idx_project_category"`
	Client      string    `json:"client" db:"client" gorm:"type:text;not null;default:''"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null;default:''"`
	Duration    string    `json:"duration" db:"duration" gorm:"type:text;not null;default:''"`
	Team        string    `json:"team" db:"team" gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	Technologies []ProjectTechnology `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Features     []ProjectFeature    `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Results      []ProjectResult     `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Images       []ProjectImage      `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

// ResultPair is a single labelled outcome of a project ("Load time" -> "40% faster").
type ResultPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ImageView is the flattened form of a project image row.
type ImageView struct {
	ImageURL  string `json:"image_url" validate:"required"`
	Caption   string `json:"caption"`
	SortOrder int    `json:"sort_order"`
}

// ProjectView is the denormalized representation of a project: the parent row
// plus its four child tables flattened into plain collections. This is the shape
// the API serves and accepts.
type ProjectView struct {
	ID           int          `json:"id"`
	Title        string       `json:"title"`
	Category     string       `json:"category"`
	Client       string       `json:"client"`
	Description  string       `json:"description"`
	Duration     string       `json:"duration"`
	Team         string       `json:"team"`
	CreatedAt    time.Time    `json:"created_at"`
	Technologies []string     `json:"technologies"`
	Features     []string     `json:"features"`
	Results      []ResultPair `json:"results"`
	Images       []ImageView  `json:"images"`
}

// ProjectForm is the submitted flat view model for create/update. The ID is
// always backend-assigned; a client-supplied one is rejected at the handler.
type ProjectForm struct {
	Title        string       `json:"title" validate:"required"`
	Category     string       `json:"category" validate:"required"`
	Client       string       `json:"client"`
	Description  string       `json:"description"`
	Duration     string       `json:"duration"`
	Team         string       `json:"team"`
	Technologies []string     `json:"technologies"`
	Features     []string     `json:"features"`
	Results      []ResultPair `json:"results"`
	Images       []ImageView  `json:"images"`
}

// Denormalize flattens a project and its child rows into a ProjectView.
// Images come back ordered by sort_order; the other collections keep row order.
func (p Project) Denormalize() ProjectView {
	view := ProjectView{
		ID:           p.ID,
		Title:        p.Title,
		Category:     p.Category,
		Client:       p.Client,
		Description:  p.Description,
		Duration:     p.Duration,
		Team:         p.Team,
		CreatedAt:    p.CreatedAt,
		Technologies: make([]string, 0, len(p.Technologies)),
		Features:     make([]string, 0, len(p.Features)),
		Results:      make([]ResultPair, 0, len(p.Results)),
		Images:       make([]ImageView, 0, len(p.Images)),
	}

	for _, t := range p.Technologies {
		view.Technologies = append(view.Technologies, t.Technology)
	}
	for _, f := range p.Features {
		view.Features = append(view.Features, f.Feature)
	}
	for _, r := range p.Results {
		view.Results = append(view.Results, ResultPair{Key: r.Key, Value: r.Value})
	}

	images := make([]ProjectImage, len(p.Images))
	copy(images, p.Images)
	sort.SliceStable(images, func(i, j int) bool { return images[i].SortOrder < images[j].SortOrder })
	for _, img := range images {
		view.Images = append(view.Images, ImageView{
			ImageURL:  img.ImageURL,
			Caption:   img.Caption,
			SortOrder: img.SortOrder,
		})
	}

	return view
}

// Renormalize re-expresses the flat form as a parent row plus child rows,
// tagged with the given project ID (zero for a not-yet-inserted parent).
// Blank technology/feature entries are dropped, and image sort order is
// recomputed as a dense zero-based sequence in submitted order.
func (f ProjectForm) Renormalize(projectID int) Project {
	project := Project{
		ID:          projectID,
		Title:       f.Title,
		Category:    f.Category,
		Client:      f.Client,
		Description: f.Description,
		Duration:    f.Duration,
		Team:        f.Team,
	}

	for _, tech := range f.Technologies {
		tech = strings.TrimSpace(tech)
		if tech == "" {
			continue
		}
		project.Technologies = append(project.Technologies, ProjectTechnology{ProjectID: projectID, Technology: tech})
	}

	for _, feature := range f.Features {
		feature = strings.TrimSpace(feature)
		if feature == "" {
			continue
		}
		project.Features = append(project.Features, ProjectFeature{ProjectID: projectID, Feature: feature})
	}

	for _, result := range f.Results {
		if strings.TrimSpace(result.Key) == "" && strings.TrimSpace(result.Value) == "" {
			continue
		}
		project.Results = append(project.Results, ProjectResult{ProjectID: projectID, Key: result.Key, Value: result.Value})
	}

	images := make([]ImageView, len(f.Images))
	copy(images, f.Images)
	sort.SliceStable(images, func(i, j int) bool { return images[i].SortOrder < images[j].SortOrder })
	for i, img := range images {
		project.Images = append(project.Images, ProjectImage{
			ProjectID: projectID,
			ImageURL:  img.ImageURL,
			Caption:   img.Caption,
			SortOrder: i,
		})
	}

	return project
}
