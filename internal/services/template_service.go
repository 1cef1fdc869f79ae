package services

import (
	"context"
	"strings"

	"gms-backend/internal/models"
	"gms-backend/internal/repositories"
)

type TemplateService struct {
	SmsRepo   *repositories.SmsTemplateRepository
	EmailRepo *repositories.EmailTemplateRepository
}

func NewTemplateService(smsRepo *repositories.SmsTemplateRepository, emailRepo *repositories.EmailTemplateRepository) *TemplateService {
	return &TemplateService{SmsRepo: smsRepo, EmailRepo: emailRepo}
}

// RenderTemplate substitutes {{name}} placeholders. Caller-supplied values
// override the template's defaults; unknown placeholders are left as-is so a
// preview makes missing variables visible.
func RenderTemplate(body string, defaults, values map[string]string) string {
	merged := make(map[string]string, len(defaults)+len(values))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range values {
		merged[k] = v
	}

	out := body
	for k, v := range merged {
		out = strings.ReplaceAll(out, "{{"+k+"}}", v)
	}
	return out
}

func (s *TemplateService) RenderSms(ctx context.Context, id int, values map[string]string) (*models.RenderedTemplate, error) {
	tpl, err := s.SmsRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.RenderedTemplate{
		Body: RenderTemplate(tpl.Body, tpl.Variables, values),
	}, nil
}

func (s *TemplateService) RenderEmail(ctx context.Context, id int, values map[string]string) (*models.RenderedTemplate, error) {
	tpl, err := s.EmailRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.RenderedTemplate{
		Subject: RenderTemplate(tpl.Subject, tpl.Variables, values),
		Body:    RenderTemplate(tpl.Body, tpl.Variables, values),
	}, nil
}
