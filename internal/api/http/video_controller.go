package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sohanurdev/portfolio-backend/internal/api/http/converter"
	"github.com/sohanurdev/portfolio-backend/internal/repository"
	"github.com/sohanurdev/portfolio-backend/internal/service"
)

type VideoController struct {
	videos service.VideoInteractor
}

func NewVideoController(videos service.VideoInteractor) *VideoController {
	return &VideoController{videos: videos}
}

func (c *VideoController) ListVideos(ctx *gin.Context) {
	videos, err := c.videos.ListVideos(ctx.Request.Context())
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusOK, converter.VideosToApi(videos), "Videos retrieved successfully.")
}

func (c *VideoController) CreateVideo(ctx *gin.Context) {
	var params service.CreateVideoParams
	if err := ctx.ShouldBindJSON(&params); err != nil {
		respondFailure(ctx, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	video, err := c.videos.CreateVideo(ctx.Request.Context(), params)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusCreated, converter.VideoToApi(video), "Video created successfully.")
}

func (c *VideoController) GetVideo(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondFailure(ctx, http.StatusNotFound, "Video not found", nil)
		return
	}

	video, err := c.videos.GetVideo(ctx.Request.Context(), id)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusOK, converter.VideoToApi(video), "Video retrieved successfully.")
}

func (c *VideoController) UpdateVideo(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondFailure(ctx, http.StatusNotFound, "Video not found", nil)
		return
	}

	var params service.UpdateVideoParams
	if err := ctx.ShouldBindJSON(&params); err != nil {
		respondFailure(ctx, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	video, err := c.videos.UpdateVideo(ctx.Request.Context(), id, params)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusOK, converter.VideoToApi(video), "Video updated successfully.")
}

func (c *VideoController) DeleteVideo(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondFailure(ctx, http.StatusNotFound, "Video not found", nil)
		return
	}

	if err := c.videos.DeleteVideo(ctx.Request.Context(), id); err != nil {
		c.respondError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusOK, nil, "Video deleted successfully.")
}

func (c *VideoController) ListVideosByType(ctx *gin.Context) {
	videoType := ctx.Param("type")

	videos, err := c.videos.ListVideosByType(ctx.Request.Context(), videoType)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusOK, converter.VideosToApi(videos), videoType+" videos retrieved successfully.")
}

func (c *VideoController) SearchVideos(ctx *gin.Context) {
	videos, err := c.videos.SearchVideos(ctx.Request.Context(), ctx.Query("query"))
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusOK, converter.VideosToApi(videos), "Search results retrieved successfully.")
}

func (c *VideoController) respondError(ctx *gin.Context, err error) {
	switch code := statusFor(err, repository.ErrVideoNotFound); code {
	case http.StatusUnprocessableEntity:
		respondFailure(ctx, code, "Validation error", validationFields(err))
	case http.StatusNotFound:
		respondFailure(ctx, code, "Video not found", nil)
	default:
		respondFailure(ctx, code, err.Error(), nil)
	}
}
