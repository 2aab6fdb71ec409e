package models

// ProjectTechnology is a technology tag owned by a project row.
type ProjectTechnology struct {
	ID         int    `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	ProjectID  int    `json:"project_id" db:"project_id" gorm:"not null;index:idx_project_technology_project_id"`
	Technology string `json:"technology" db:"technology" gorm:"type:text;not null"`
}
