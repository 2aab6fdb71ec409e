package models

// ProjectFeature is a single feature description owned by a project row.
type ProjectFeature struct {
	ID        int    `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	ProjectID int    `json:"project_id" db:"project_id" gorm:"not null;index:idx_project_feature_project_id"`
	Feature   string `json:"feature" db:"feature" gorm:"type:text;not null"`
}
