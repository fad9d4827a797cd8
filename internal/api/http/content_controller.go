package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sohanurdev/portfolio-backend/internal/repository"
	"github.com/sohanurdev/portfolio-backend/internal/service"
)

type ContentController struct {
	contents service.SiteContentInteractor
}

func NewContentController(contents service.SiteContentInteractor) *ContentController {
	return &ContentController{contents: contents}
}

func (c *ContentController) CreateContent(ctx *gin.Context) {
	var params service.CreateContentParams
	if err := ctx.ShouldBindJSON(&params); err != nil {
		respondFailure(ctx, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	content, err := c.contents.CreateContent(ctx.Request.Context(), params)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusCreated, content, "Content created successfully.")
}

func (c *ContentController) ListContent(ctx *gin.Context) {
	contents, err := c.contents.ListContent(ctx.Request.Context())
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusOK, contents, "")
}

// ListPublicContent serves only published blocks to the marketing site.
func (c *ContentController) ListPublicContent(ctx *gin.Context) {
	contents, err := c.contents.ListPublishedContent(ctx.Request.Context())
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusOK, contents, "")
}

func (c *ContentController) GetContent(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondFailure(ctx, http.StatusNotFound, "Content not found", nil)
		return
	}

	content, err := c.contents.GetContent(ctx.Request.Context(), id)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusOK, content, "")
}

func (c *ContentController) DeleteContent(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondFailure(ctx, http.StatusNotFound, "Content not found", nil)
		return
	}

	if err := c.contents.DeleteContent(ctx.Request.Context(), id); err != nil {
		c.respondError(ctx, err)
		return
	}
	respondSuccess(ctx, http.StatusOK, nil, "Content deleted successfully.")
}

func (c *ContentController) respondError(ctx *gin.Context, err error) {
	switch code := statusFor(err, repository.ErrContentNotFound); code {
	case http.StatusUnprocessableEntity:
		respondFailure(ctx, code, "Validation error", validationFields(err))
	case http.StatusNotFound:
		respondFailure(ctx, code, "Content not found", nil)
	default:
		respondFailure(ctx, code, err.Error(), nil)
	}
}
