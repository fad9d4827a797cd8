package domain

import (
	"time"

	"github.com/google/uuid"
)

// SiteContent is an editable block of the public site (hero copy, about
// section and similar). Only published blocks are served to visitors.
type SiteContent struct {
	ID        uuid.UUID `json:"id"`
	Section   string    `json:"section"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSiteContent(section, title, body, imageURL string, published bool) *SiteContent {
	now := time.Now().UTC()
	return &SiteContent{
		ID:        uuid.New(),
		Section:   section,
		Title:     title,
		Body:      body,
		ImageURL:  imageURL,
		Published: published,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
