package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sohanurdev/portfolio-backend/internal/repository"
	"github.com/sohanurdev/portfolio-backend/internal/service"
)

type ContactController struct {
	contacts service.ContactInteractor
}

func NewContactController(contacts service.ContactInteractor) *ContactController {
	return &ContactController{contacts: contacts}
}

func (c *ContactController) CreateMessage(ctx *gin.Context) {
	var params service.CreateContactParams
	if err := ctx.ShouldBindJSON(&params); err != nil {
		respondStatusError(ctx, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	msg, err := c.contacts.CreateMessage(ctx.Request.Context(), params)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	respondStatus(ctx, http.StatusCreated, "Contact message submitted successfully!", msg)
}

func (c *ContactController) ListMessages(ctx *gin.Context) {
	msgs, err := c.contacts.ListMessages(ctx.Request.Context())
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	respondStatus(ctx, http.StatusOK, "", msgs)
}

func (c *ContactController) GetMessage(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondStatusError(ctx, http.StatusNotFound, "Contact message not found", nil)
		return
	}

	msg, err := c.contacts.GetMessage(ctx.Request.Context(), id)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	respondStatus(ctx, http.StatusOK, "", msg)
}

func (c *ContactController) DeleteMessage(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondStatusError(ctx, http.StatusNotFound, "Contact message not found", nil)
		return
	}

	if err := c.contacts.DeleteMessage(ctx.Request.Context(), id); err != nil {
		c.respondError(ctx, err)
		return
	}
	respondStatus(ctx, http.StatusOK, "Contact message deleted successfully", nil)
}

func (c *ContactController) respondError(ctx *gin.Context, err error) {
	switch code := statusFor(err, repository.ErrContactNotFound); code {
	case http.StatusUnprocessableEntity:
		respondStatusError(ctx, code, "Validation error", validationFields(err))
	case http.StatusNotFound:
		respondStatusError(ctx, code, "Contact message not found", nil)
	default:
		respondStatusError(ctx, code, err.Error(), nil)
	}
}
