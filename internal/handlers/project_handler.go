package handlers

import (
	"context"
	"net/http"

	"gms-backend/internal/cache"
	"gms-backend/internal/models"
	"gms-backend/internal/repositories"
	"gms-backend/pkg/utils"
)

type ProjectHandler struct {
	Repo *repositories.ProjectRepository
}

func NewProjectHandler(repo *repositories.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{Repo: repo}
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProjectRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	project := &models.Project{
		Name:         req.Name,
		CityID:       req.CityID,
		LocalityID:   req.LocalityID,
		CostConfigID: req.CostConfigID,
		Address:      req.Address,
	}
	if err := h.Repo.Create(r.Context(), project); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "projects")
	utils.JSON(w, http.StatusCreated, "Project created", project)
}

func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	project, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Project not found")
		return
	}
	utils.JSON(w, http.StatusOK, "Project fetched", project)
}

func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	writeCachedList(w, r, cache.ListKey("projects"), "Projects fetched", func(ctx context.Context) (interface{}, error) {
		return h.Repo.List(ctx)
	})
}

func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var req models.UpdateProjectRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	project := &models.Project{
		ID:           id,
		Name:         req.Name,
		CityID:       req.CityID,
		LocalityID:   req.LocalityID,
		CostConfigID: req.CostConfigID,
		Address:      req.Address,
	}
	if err := h.Repo.Update(r.Context(), project); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "projects")
	utils.JSON(w, http.StatusOK, "Project updated", project)
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "projects")
	utils.JSON(w, http.StatusOK, "Project deleted", nil)
}
