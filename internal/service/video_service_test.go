package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sohanurdev/portfolio-backend/internal/domain"
	"github.com/sohanurdev/portfolio-backend/internal/repository"
	"github.com/sohanurdev/portfolio-backend/internal/service"
)

func newVideoService(t *testing.T) *service.VideoService {
	t.Helper()
	return service.NewVideoService(repository.NewInMemoryVideoRepository(), nil)
}

func validVideoParams() service.CreateVideoParams {
	return service.CreateVideoParams{
		Title:       "Studio tour",
		URL:         "https://www.youtube.com/watch?v=abc123",
		Type:        domain.VideoTypeYoutube,
		Description: "Behind the scenes",
	}
}

func TestCreateVideoRoundTrip(t *testing.T) {
	svc := newVideoService(t)
	ctx := context.Background()

	video, err := svc.CreateVideo(ctx, validVideoParams())
	require.NoError(t, err)

	got, err := svc.GetVideo(ctx, video.ID)
	require.NoError(t, err)
	assert.Equal(t, "Studio tour", got.Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", got.URL)
	assert.Equal(t, domain.VideoTypeYoutube, got.Type)
	assert.Equal(t, "Behind the scenes", got.Description)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestCreateVideoValidation(t *testing.T) {
	svc := newVideoService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*service.CreateVideoParams)
		field  string
	}{
		{"missing title", func(p *service.CreateVideoParams) { p.Title = "" }, "title"},
		{"missing url", func(p *service.CreateVideoParams) { p.URL = "" }, "url"},
		{"malformed url", func(p *service.CreateVideoParams) { p.URL = "not a url" }, "url"},
		{"missing type", func(p *service.CreateVideoParams) { p.Type = "" }, "type"},
		{"unknown type", func(p *service.CreateVideoParams) { p.Type = "dailymotion" }, "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validVideoParams()
			tt.mutate(&params)
			_, err := svc.CreateVideo(ctx, params)
			requireValidationError(t, err, tt.field)
		})
	}
}

func TestUpdateVideoPartial(t *testing.T) {
	svc := newVideoService(t)
	ctx := context.Background()

	video, err := svc.CreateVideo(ctx, validVideoParams())
	require.NoError(t, err)

	title := "Studio tour (extended)"
	updated, err := svc.UpdateVideo(ctx, video.ID, service.UpdateVideoParams{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Studio tour (extended)", updated.Title)
	assert.Equal(t, video.URL, updated.URL)

	badType := "dailymotion"
	_, err = svc.UpdateVideo(ctx, video.ID, service.UpdateVideoParams{Type: &badType})
	requireValidationError(t, err, "type")
}

func TestUpdateVideoNotFound(t *testing.T) {
	svc := newVideoService(t)

	title := "ghost"
	_, err := svc.UpdateVideo(context.Background(), uuid.New(), service.UpdateVideoParams{Title: &title})
	assert.True(t, errors.Is(err, repository.ErrVideoNotFound))
}

func TestListVideosNewestFirst(t *testing.T) {
	svc := newVideoService(t)
	ctx := context.Background()

	older := validVideoParams()
	older.Title = "Older"
	_, err := svc.CreateVideo(ctx, older)
	require.NoError(t, err)

	newer := validVideoParams()
	newer.Title = "Newer"
	_, err = svc.CreateVideo(ctx, newer)
	require.NoError(t, err)

	videos, err := svc.ListVideos(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "Newer", videos[0].Title)
	assert.Equal(t, "Older", videos[1].Title)
}

func TestListVideosByType(t *testing.T) {
	svc := newVideoService(t)
	ctx := context.Background()

	_, err := svc.CreateVideo(ctx, validVideoParams())
	require.NoError(t, err)

	vimeo := validVideoParams()
	vimeo.URL = "https://vimeo.com/76979871"
	vimeo.Type = domain.VideoTypeVimeo
	_, err = svc.CreateVideo(ctx, vimeo)
	require.NoError(t, err)

	videos, err := svc.ListVideosByType(ctx, domain.VideoTypeVimeo)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, domain.VideoTypeVimeo, videos[0].Type)

	_, err = svc.ListVideosByType(ctx, "dailymotion")
	requireValidationError(t, err, "type")
}

func TestSearchVideos(t *testing.T) {
	svc := newVideoService(t)
	ctx := context.Background()

	first := validVideoParams()
	first.Title = "Abstract motion reel"
	_, err := svc.CreateVideo(ctx, first)
	require.NoError(t, err)

	second := validVideoParams()
	second.Title = "Client showcase"
	second.Description = "An ABstract look at recent work"
	_, err = svc.CreateVideo(ctx, second)
	require.NoError(t, err)

	third := validVideoParams()
	third.Title = "Cooking stream"
	third.Description = ""
	_, err = svc.CreateVideo(ctx, third)
	require.NoError(t, err)

	// case-insensitive match over title or description, newest first
	videos, err := svc.SearchVideos(ctx, "ab")
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "Client showcase", videos[0].Title)
	assert.Equal(t, "Abstract motion reel", videos[1].Title)
}

func TestSearchVideosQueryBoundary(t *testing.T) {
	svc := newVideoService(t)
	ctx := context.Background()

	// two characters is the minimum accepted length
	_, err := svc.SearchVideos(ctx, "ab")
	require.NoError(t, err)

	_, err = svc.SearchVideos(ctx, "a")
	requireValidationError(t, err, "query")

	_, err = svc.SearchVideos(ctx, "")
	requireValidationError(t, err, "query")
}

func TestDeleteVideo(t *testing.T) {
	svc := newVideoService(t)
	ctx := context.Background()

	video, err := svc.CreateVideo(ctx, validVideoParams())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteVideo(ctx, video.ID))
	err = svc.DeleteVideo(ctx, video.ID)
	assert.True(t, errors.Is(err, repository.ErrVideoNotFound))
}
