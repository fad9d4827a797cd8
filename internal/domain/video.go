package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

const (
	VideoTypeYoutube = "youtube"
	VideoTypeVimeo   = "vimeo"
	VideoTypeOther   = "other"
)

// Video is a gallery entry referencing a hosted video by URL. Only the
// reference is stored; embed and thumbnail URLs are derived on read.
type Video struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewVideo(title, url, videoType, description string) *Video {
	now := time.Now().UTC()
	return &Video{
		ID:          uuid.New(),
		Title:       title,
		URL:         url,
		Type:        videoType,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func ValidVideoType(t string) bool {
	return t == VideoTypeYoutube || t == VideoTypeVimeo || t == VideoTypeOther
}

var (
	youtubeWatchRe = regexp.MustCompile(`youtube\.com/watch\?v=([a-zA-Z0-9_-]+)`)
	youtubeShortRe = regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]+)`)
	youtubeEmbedRe = regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]+)`)
	vimeoRe        = regexp.MustCompile(`vimeo\.com/(\d+)`)
)

// PlatformID extracts the hosting-site video identifier from a stored URL.
// Returns an empty string when the URL matches none of the known shapes or
// the type has no notion of an id.
func PlatformID(url, videoType string) string {
	switch videoType {
	case VideoTypeYoutube:
		for _, re := range []*regexp.Regexp{youtubeWatchRe, youtubeShortRe, youtubeEmbedRe} {
			if m := re.FindStringSubmatch(url); m != nil {
				return m[1]
			}
		}
	case VideoTypeVimeo:
		if m := vimeoRe.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}

// EmbedURL returns the player URL for the stored reference. Falls back to
// the raw URL when no platform id can be extracted.
func EmbedURL(url, videoType string) string {
	id := PlatformID(url, videoType)
	if id == "" {
		return url
	}
	switch videoType {
	case VideoTypeYoutube:
		return "https://www.youtube.com/embed/" + id
	case VideoTypeVimeo:
		return "https://player.vimeo.com/video/" + id
	}
	return url
}

// ThumbnailURL returns a preview image URL. YouTube only; empty otherwise.
func ThumbnailURL(url, videoType string) string {
	if videoType != VideoTypeYoutube {
		return ""
	}
	id := PlatformID(url, videoType)
	if id == "" {
		return ""
	}
	return "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
}
