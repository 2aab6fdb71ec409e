package database

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/hitekgroup/hitek-site-backend/errs"
	"github.com/hitekgroup/hitek-site-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// realignProjectSequence points the projects id generator past the current
// maximum identifier. Needed after a manual data import leaves the generator
// behind the table contents.
const realignProjectSequence = `SELECT setval(pg_get_serial_sequence('projects', 'id'), COALESCE((SELECT MAX(id) FROM projects), 0) + 1, false)`

// FindAll returns all projects with their four child collections, newest
// first. Children load in the same read: a child-table failure fails the whole
// call instead of silently serving a project with empty collections.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.
		Preload("Technologies").
		Preload("Features").
		Preload("Results").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID with child collections populated.
// Returns (nil, nil) when no row exists.
func (r *ProjectRepo) FindByID(id int) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("Technologies").
		Preload("Features").
		Preload("Results").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a renormalized project and its child rows in a single
// transaction, so a partially written project (parent without children) is not
// an observable state. The backend assigns the identifier; after the insert
// project.ID carries it.
func (r *ProjectRepo) Add(project *models.Project) error {
	insert := func() error {
		return r.db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(project).Error
		})
	}
	realign := func() error {
		return r.db.Exec(realignProjectSequence).Error
	}
	return insertWithSequenceRecovery(insert, realign)
}

// insertWithSequenceRecovery runs insert, and on a primary-key unique
// violation (the id generator has fallen behind the table after a manual
// import) realigns the sequence and retries exactly once. Any other error
// class propagates immediately, and if realignment itself is unavailable the
// original insert failure is surfaced. Never more than two insert attempts.
func insertWithSequenceRecovery(insert func() error, realign func() error) error {
	err := insert()
	if err == nil || !errs.IsUniqueViolation(err) {
		return err
	}

	if realignErr := realign(); realignErr != nil {
		log.Error().Err(realignErr).Msg("Project id sequence realignment unavailable, surfacing original insert failure")
		return err
	}

	log.Warn().Err(err).Msg("Project id collision, sequence realigned, retrying insert once")
	return insert()
}

// Replace updates the parent row in place, then replaces every child
// collection with the submitted set: delete all existing child rows, re-insert
// the renormalized ones. The whole round trip runs in one transaction.
func (r *ProjectRepo) Replace(project *models.Project) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Project{}).Where("id = ?", project.ID).Updates(map[string]interface{}{
			"title":       project.Title,
			"category":    project.Category,
			"client":      project.Client,
			"description": project.Description,
			"duration":    project.Duration,
			"team":        project.Team,
		}).Error
		if err != nil {
			return err
		}

		for _, child := range []interface{}{
			&models.ProjectTechnology{},
			&models.ProjectFeature{},
			&models.ProjectResult{},
			&models.ProjectImage{},
		} {
			if err := tx.Where("project_id = ?", project.ID).Delete(child).Error; err != nil {
				return err
			}
		}

		if len(project.Technologies) > 0 {
			if err := tx.Create(&project.Technologies).Error; err != nil {
				return err
			}
		}
		if len(project.Features) > 0 {
			if err := tx.Create(&project.Features).Error; err != nil {
				return err
			}
		}
		if len(project.Results) > 0 {
			if err := tx.Create(&project.Results).Error; err != nil {
				return err
			}
		}
		if len(project.Images) > 0 {
			if err := tx.Create(&project.Images).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes a project from the database by id. Child rows go with it via
// the ON DELETE CASCADE declared in the schema.
func (r *ProjectRepo) Delete(id int) error {
	return r.db.Delete(&models.Project{}, id).Error
}
