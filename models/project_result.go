package models

// ProjectResult is a labelled outcome pair owned by a project row.
type ProjectResult struct {
	ID        int    `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	ProjectID int    `json:"project_id" db:"project_id" gorm:"not null;index:idx_project_result_project_id"`
	Key       string `json:"key" db:"key" gorm:"type:text;not null"`
	Value     string `json:"value" db:"value" gorm:"type:text;not null"`
}
