package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sohanurdev/portfolio-backend/internal/domain"
	"github.com/sohanurdev/portfolio-backend/internal/repository"
	"github.com/sohanurdev/portfolio-backend/internal/validation"
)

const minSearchQueryLength = 2

type CreateVideoParams struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func (p CreateVideoParams) validate() validation.FieldErrors {
	fields := validation.FieldErrors{}
	if p.Title == "" {
		fields.Add("title", "The title field is required.")
	}
	if p.URL == "" {
		fields.Add("url", "The url field is required.")
	} else if !validation.ValidURL(p.URL) {
		fields.Add("url", "The url format is invalid.")
	}
	if p.Type == "" {
		fields.Add("type", "The type field is required.")
	} else if !domain.ValidVideoType(p.Type) {
		fields.Add("type", "The selected type is invalid.")
	}
	return fields
}

type UpdateVideoParams struct {
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
}

func (p UpdateVideoParams) validate() validation.FieldErrors {
	fields := validation.FieldErrors{}
	if p.Title != nil && *p.Title == "" {
		fields.Add("title", "The title field is required.")
	}
	if p.URL != nil && !validation.ValidURL(*p.URL) {
		fields.Add("url", "The url format is invalid.")
	}
	if p.Type != nil && !domain.ValidVideoType(*p.Type) {
		fields.Add("type", "The selected type is invalid.")
	}
	return fields
}

type VideoService struct {
	videos repository.VideoRepository
	log    *slog.Logger
}

func NewVideoService(videos repository.VideoRepository, log *slog.Logger) *VideoService {
	if log == nil {
		log = slog.Default()
	}
	return &VideoService{videos: videos, log: log}
}

func (s *VideoService) CreateVideo(ctx context.Context, params CreateVideoParams) (*domain.Video, error) {
	fields := params.validate()
	if !fields.Empty() {
		return nil, validationFailed(fields)
	}

	video := domain.NewVideo(params.Title, params.URL, params.Type, params.Description)
	if err := s.videos.Create(ctx, video); err != nil {
		return nil, err
	}

	s.log.Info("video created", "video_id", video.ID.String(), "type", video.Type)
	return video, nil
}

func (s *VideoService) ListVideos(ctx context.Context) ([]*domain.Video, error) {
	return s.videos.List(ctx)
}

func (s *VideoService) GetVideo(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	return s.videos.GetByID(ctx, id)
}

func (s *VideoService) UpdateVideo(ctx context.Context, id uuid.UUID, params UpdateVideoParams) (*domain.Video, error) {
	fields := params.validate()
	if !fields.Empty() {
		return nil, validationFailed(fields)
	}

	video, err := s.videos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		video.Title = *params.Title
	}
	if params.URL != nil {
		video.URL = *params.URL
	}
	if params.Type != nil {
		video.Type = *params.Type
	}
	if params.Description != nil {
		video.Description = *params.Description
	}
	video.UpdatedAt = time.Now().UTC()

	if err := s.videos.Update(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *VideoService) DeleteVideo(ctx context.Context, id uuid.UUID) error {
	return s.videos.Delete(ctx, id)
}

func (s *VideoService) ListVideosByType(ctx context.Context, videoType string) ([]*domain.Video, error) {
	if !domain.ValidVideoType(videoType) {
		fields := validation.FieldErrors{}
		fields.Add("type", "Invalid video type. Allowed types: youtube, vimeo, other")
		return nil, validationFailed(fields)
	}
	return s.videos.ListByType(ctx, videoType)
}

func (s *VideoService) SearchVideos(ctx context.Context, query string) ([]*domain.Video, error) {
	if len(query) < minSearchQueryLength {
		fields := validation.FieldErrors{}
		if query == "" {
			fields.Add("query", "The query field is required.")
		} else {
			fields.Add("query", "The query must be at least 2 characters.")
		}
		return nil, validationFailed(fields)
	}
	return s.videos.Search(ctx, query)
}
