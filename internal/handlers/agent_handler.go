package handlers

import (
	"context"
	"net/http"
	"strconv"

	"gms-backend/internal/cache"
	"gms-backend/internal/models"
	"gms-backend/internal/repositories"
	"gms-backend/pkg/utils"
)

type AgentHandler struct {
	Repo *repositories.AgentRepository
}

func NewAgentHandler(repo *repositories.AgentRepository) *AgentHandler {
	return &AgentHandler{Repo: repo}
}

func (h *AgentHandler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAgentRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	agent := &models.Agent{
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		IsActive:  true,
	}
	if err := h.Repo.Create(r.Context(), agent); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "agents")
	utils.JSON(w, http.StatusCreated, "Agent created", agent)
}

func (h *AgentHandler) GetAgent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	agent, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Agent not found")
		return
	}
	utils.JSON(w, http.StatusOK, "Agent fetched", agent)
}

func (h *AgentHandler) ListAgents(w http.ResponseWriter, r *http.Request) {
	projectIDStr := r.URL.Query().Get("project_id")
	if projectIDStr == "" {
		writeCachedList(w, r, cache.ListKey("agents"), "Agents fetched", func(ctx context.Context) (interface{}, error) {
			return h.Repo.List(ctx)
		})
		return
	}

	projectID, err := strconv.Atoi(projectIDStr)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid project_id")
		return
	}
	writeCachedList(w, r, cache.ScopedListKey("agents", projectID), "Agents fetched", func(ctx context.Context) (interface{}, error) {
		return h.Repo.ListByProject(ctx, projectID)
	})
}

func (h *AgentHandler) UpdateAgent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var req models.UpdateAgentRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	agent, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Agent not found")
		return
	}

	agent.ProjectID = req.ProjectID
	agent.Name = req.Name
	agent.Phone = req.Phone
	agent.Email = req.Email
	if req.IsActive != nil {
		agent.IsActive = *req.IsActive
	}
	if err := h.Repo.Update(r.Context(), agent); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "agents")
	utils.JSON(w, http.StatusOK, "Agent updated", agent)
}

func (h *AgentHandler) DeleteAgent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "agents")
	utils.JSON(w, http.StatusOK, "Agent deleted", nil)
}
