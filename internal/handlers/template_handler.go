package handlers

import (
	"context"
	"net/http"

	"gms-backend/internal/cache"
	"gms-backend/internal/models"
	"gms-backend/internal/services"
	"gms-backend/pkg/utils"
)

type TemplateHandler struct {
	Service *services.TemplateService
}

func NewTemplateHandler(s *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{Service: s}
}

// ---- SMS templates ----

func (h *TemplateHandler) CreateSmsTemplate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSmsTemplateRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	tpl := &models.SmsTemplate{
		Name:      req.Name,
		Category:  req.Category,
		Body:      req.Body,
		Variables: req.Variables,
	}
	if err := h.Service.SmsRepo.Create(r.Context(), tpl); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "sms_templates")
	utils.JSON(w, http.StatusCreated, "SMS template created", tpl)
}

func (h *TemplateHandler) GetSmsTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	tpl, err := h.Service.SmsRepo.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Template not found")
		return
	}
	utils.JSON(w, http.StatusOK, "Template fetched", tpl)
}

func (h *TemplateHandler) ListSmsTemplates(w http.ResponseWriter, r *http.Request) {
	writeCachedList(w, r, cache.ListKey("sms_templates"), "Templates fetched", func(ctx context.Context) (interface{}, error) {
		return h.Service.SmsRepo.List(ctx)
	})
}

func (h *TemplateHandler) UpdateSmsTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var req models.CreateSmsTemplateRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	tpl := &models.SmsTemplate{
		ID:        id,
		Name:      req.Name,
		Category:  req.Category,
		Body:      req.Body,
		Variables: req.Variables,
	}
	if err := h.Service.SmsRepo.Update(r.Context(), tpl); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "sms_templates")
	utils.JSON(w, http.StatusOK, "SMS template updated", tpl)
}

func (h *TemplateHandler) DeleteSmsTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.Service.SmsRepo.Delete(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "sms_templates")
	utils.JSON(w, http.StatusOK, "SMS template deleted", nil)
}

// RenderSmsTemplate previews a template with caller-supplied values.
func (h *TemplateHandler) RenderSmsTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var req models.RenderTemplateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rendered, err := h.Service.RenderSms(r.Context(), id, req.Values)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Template not found")
		return
	}
	utils.JSON(w, http.StatusOK, "Template rendered", rendered)
}

// ---- Email templates ----

func (h *TemplateHandler) CreateEmailTemplate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEmailTemplateRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	tpl := &models.EmailTemplate{
		Name:      req.Name,
		Category:  req.Category,
		Subject:   req.Subject,
		Body:      req.Body,
		Variables: req.Variables,
	}
	if err := h.Service.EmailRepo.Create(r.Context(), tpl); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "email_templates")
	utils.JSON(w, http.StatusCreated, "Email template created", tpl)
}

func (h *TemplateHandler) GetEmailTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	tpl, err := h.Service.EmailRepo.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Template not found")
		return
	}
	utils.JSON(w, http.StatusOK, "Template fetched", tpl)
}

func (h *TemplateHandler) ListEmailTemplates(w http.ResponseWriter, r *http.Request) {
	writeCachedList(w, r, cache.ListKey("email_templates"), "Templates fetched", func(ctx context.Context) (interface{}, error) {
		return h.Service.EmailRepo.List(ctx)
	})
}

func (h *TemplateHandler) UpdateEmailTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var req models.CreateEmailTemplateRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	tpl := &models.EmailTemplate{
		ID:        id,
		Name:      req.Name,
		Category:  req.Category,
		Subject:   req.Subject,
		Body:      req.Body,
		Variables: req.Variables,
	}
	if err := h.Service.EmailRepo.Update(r.Context(), tpl); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "email_templates")
	utils.JSON(w, http.StatusOK, "Email template updated", tpl)
}

func (h *TemplateHandler) DeleteEmailTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.Service.EmailRepo.Delete(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "email_templates")
	utils.JSON(w, http.StatusOK, "Email template deleted", nil)
}

func (h *TemplateHandler) RenderEmailTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var req models.RenderTemplateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rendered, err := h.Service.RenderEmail(r.Context(), id, req.Values)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Template not found")
		return
	}
	utils.JSON(w, http.StatusOK, "Template rendered", rendered)
}
