package converter

import (
	"time"

	"github.com/google/uuid"
	"github.com/sohanurdev/portfolio-backend/internal/domain"
)

// VideoResponse carries the stored row plus the derived playback fields.
// platform_id and thumbnail_url are omitted when the type has none.
type VideoResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	Type         string    `json:"type"`
	Description  string    `json:"description,omitempty"`
	PlatformID   string    `json:"platform_id,omitempty"`
	EmbedURL     string    `json:"embed_url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func VideoToApi(v *domain.Video) *VideoResponse {
	if v == nil {
		return nil
	}
	return &VideoResponse{
		ID:           v.ID,
		Title:        v.Title,
		URL:          v.URL,
		Type:         v.Type,
		Description:  v.Description,
		PlatformID:   domain.PlatformID(v.URL, v.Type),
		EmbedURL:     domain.EmbedURL(v.URL, v.Type),
		ThumbnailURL: domain.ThumbnailURL(v.URL, v.Type),
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func VideosToApi(videos []*domain.Video) []*VideoResponse {
	result := make([]*VideoResponse, 0, len(videos))
	for _, v := range videos {
		result = append(result, VideoToApi(v))
	}
	return result
}
