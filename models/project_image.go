package models

// ProjectImage is an image attached to a project. SortOrder is kept as a dense
// zero-based sequence; every renormalization renumbers the whole set.
type ProjectImage struct {
	ID        int    `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	ProjectID int    `json:"project_id" db:"project_id" gorm:"not null;index:idx_project_image_project_id"`
	ImageURL  string `json:"image_url" db:"image_url" gorm:"type:text;not null"`
	Caption   string `json:"caption" db:"caption" gorm:"type:text;not null;default:''"`
	SortOrder int    `json:"sort_order" db:"sort_order" gorm:"not null;default:0"`
}
