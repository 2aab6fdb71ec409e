package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hitekgroup/hitek-site-backend/database"
	"github.com/hitekgroup/hitek-site-backend/errs"
	"github.com/hitekgroup/hitek-site-backend/models"
	"github.com/hitekgroup/hitek-site-backend/services"
)

type projectHandler struct {
	responder    Responder
	logger       zerolog.Logger
	projectRepo  *database.ProjectRepo
	categoryRepo *database.CategoryRepo
	baseURL      string
}

func newProjectHandler(projectRepo *database.ProjectRepo, categoryRepo *database.CategoryRepo, cfg map[string]string) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
		baseURL:      services.GetPublicBaseURL(cfg),
	}
}

// ProjectDetail is a denormalized project with its public share link attached.
type ProjectDetail struct {
	models.ProjectView
	ShareURL string `json:"share_url,omitempty"`
}

// ProjectCollection represents multiple denormalized projects
type ProjectCollection struct {
	Projects []ProjectDetail `json:"projects"`
	Total    int             `json:"total,omitempty"`
}

func (h projectHandler) detail(project *models.Project) ProjectDetail {
	return ProjectDetail{
		ProjectView: project.Denormalize(),
		ShareURL:    services.BuildProjectURL(h.baseURL, project.ID),
	}
}

// checkCategory verifies the submitted category slug against the configured
// set (the built-in fallback set when no categories are stored yet).
func (h projectHandler) checkCategory(id string) error {
	categories, err := h.categoryRepo.FindAll()
	if err != nil {
		return wrapDatabaseError("find categories", "categories", err)
	}
	for _, category := range categories {
		if category.ID == id {
			return nil
		}
	}
	return errs.NewInvalidFieldError("category", "unknown category "+id)
}

// createProjectRequest embeds the flat form plus the id field clients must not set.
type createProjectRequest struct {
	ID int `json:"id"`
	models.ProjectForm
}

// getAllProjects retrieves all projects with their child collections
// @Summary Get all projects
// @Description Retrieves all projects with technologies, features, results and images flattened into view models
// @Tags Projects
// @Accept json
// @Produce json
// @Success 200 {object} ProjectCollection "List of denormalized projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		views := make([]ProjectDetail, 0, len(projects))
		for _, project := range projects {
			views = append(views, h.detail(project))
		}

		response := ProjectCollection{
			Projects: views,
			Total:    len(views),
		}

		h.responder.WriteJSON(w, response)
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Description Retrieves a single project with its child collections flattened into a view model
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} ProjectDetail "Denormalized project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching project"
// @Router /project/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, h.detail(project))
	}
}

// createProject creates a new project
// @Summary Create project
// @Description Renormalizes the submitted flat view model into parent and child rows, written atomically
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body models.ProjectForm true "Project form data"
// @Success 201 {object} ProjectDetail "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating project"
// @Router /project [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		// Primary keys are backend-assigned, full stop.
		if req.ID != 0 {
			h.responder.WriteError(w, errs.NewInvalidFieldError("id", "identifiers are assigned by the backend"))
			return
		}

		if err := validate.Struct(req.ProjectForm); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		if err := h.checkCategory(req.Category); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := req.ProjectForm.Renormalize(0)
		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		// Reload to serve the stored state, children included
		createdProject, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created project", "project", err))
			return
		}
		if createdProject == nil {
			h.responder.WriteError(w, errs.NewInternalError("created project not found"))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, h.detail(createdProject))
	}
}

// updateProject updates an existing project
// @Summary Update project
// @Description Full-replace update: the parent row is updated in place and every child collection is replaced with the submitted set
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path int true "Project ID"
// @Param project body models.ProjectForm true "Updated project form data"
// @Success 200 {object} ProjectDetail "Updated project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating project"
// @Router /project/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existingProject, findErr := h.projectRepo.FindByID(projectID)
		if findErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", findErr))
			return
		}
		if existingProject == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var form models.ProjectForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if err := validate.Struct(form); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		if err := h.checkCategory(form.Category); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := form.Renormalize(projectID)
		if err := h.projectRepo.Replace(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		updatedProject, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated project", "project", err))
			return
		}
		if updatedProject == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, h.detail(updatedProject))
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Description Deletes a project; child rows are removed by the schema's cascade
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting project"
// @Router /project/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existingProject, findErr := h.projectRepo.FindByID(projectID)
		if findErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", findErr))
			return
		}
		if existingProject == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

func parseProjectID(r *http.Request) (int, error) {
	projectIDStr := chi.URLParam(r, "projectID")
	if projectIDStr == "" {
		return 0, errs.NewBadRequestError("missing projectID")
	}

	projectID, err := strconv.Atoi(projectIDStr)
	if err != nil || projectID <= 0 {
		return 0, errs.NewBadRequestError("invalid projectID")
	}
	return projectID, nil
}
