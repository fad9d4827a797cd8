package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sohanurdev/portfolio-backend/internal/domain"
	"github.com/sohanurdev/portfolio-backend/internal/repository"
	"github.com/sohanurdev/portfolio-backend/internal/validation"
)

type CreateContentParams struct {
	Section   string `json:"section"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	ImageURL  string `json:"image_url"`
	Published bool   `json:"published"`
}

func (p CreateContentParams) validate() validation.FieldErrors {
	fields := validation.FieldErrors{}
	if p.Section == "" {
		fields.Add("section", "The section field is required.")
	}
	if p.Title == "" {
		fields.Add("title", "The title field is required.")
	}
	if p.ImageURL != "" && !validation.ValidURL(p.ImageURL) {
		fields.Add("image_url", "The image url format is invalid.")
	}
	return fields
}

type SiteContentService struct {
	contents repository.SiteContentRepository
	log      *slog.Logger
}

func NewSiteContentService(contents repository.SiteContentRepository, log *slog.Logger) *SiteContentService {
	if log == nil {
		log = slog.Default()
	}
	return &SiteContentService{contents: contents, log: log}
}

func (s *SiteContentService) CreateContent(ctx context.Context, params CreateContentParams) (*domain.SiteContent, error) {
	fields := params.validate()
	if !fields.Empty() {
		return nil, validationFailed(fields)
	}

	content := domain.NewSiteContent(params.Section, params.Title, params.Body, params.ImageURL, params.Published)
	if err := s.contents.Create(ctx, content); err != nil {
		return nil, err
	}

	s.log.Info("site content created", "content_id", content.ID.String(), "section", content.Section)
	return content, nil
}

func (s *SiteContentService) ListContent(ctx context.Context) ([]*domain.SiteContent, error) {
	return s.contents.List(ctx)
}

func (s *SiteContentService) ListPublishedContent(ctx context.Context) ([]*domain.SiteContent, error) {
	return s.contents.ListPublished(ctx)
}

func (s *SiteContentService) GetContent(ctx context.Context, id uuid.UUID) (*domain.SiteContent, error) {
	return s.contents.GetByID(ctx, id)
}

func (s *SiteContentService) DeleteContent(ctx context.Context, id uuid.UUID) error {
	return s.contents.Delete(ctx, id)
}
