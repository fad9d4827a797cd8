package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sohanurdev/portfolio-backend/internal/api/http/converter"
	"github.com/sohanurdev/portfolio-backend/internal/repository"
	"github.com/sohanurdev/portfolio-backend/internal/service"
)

type AccountController struct {
	accounts service.AccountInteractor
}

func NewAccountController(accounts service.AccountInteractor) *AccountController {
	return &AccountController{accounts: accounts}
}

func (c *AccountController) ListAccounts(ctx *gin.Context) {
	accounts, err := c.accounts.ListAccounts(ctx.Request.Context())
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	respondStatus(ctx, http.StatusOK, "", converter.AccountsToApi(accounts))
}

func (c *AccountController) CreateAccount(ctx *gin.Context) {
	var params service.CreateAccountParams
	if err := ctx.ShouldBindJSON(&params); err != nil {
		respondStatusError(ctx, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	account, err := c.accounts.CreateAccount(ctx.Request.Context(), params)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	respondStatus(ctx, http.StatusCreated, "User registered successfully! Now click on Login.", converter.AccountToApi(account))
}

func (c *AccountController) GetAccount(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondStatusError(ctx, http.StatusNotFound, "User not found", nil)
		return
	}

	account, err := c.accounts.GetAccount(ctx.Request.Context(), id)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	respondStatus(ctx, http.StatusOK, "", converter.AccountToApi(account))
}

func (c *AccountController) UpdateAccount(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondStatusError(ctx, http.StatusNotFound, "User not found", nil)
		return
	}

	var params service.UpdateAccountParams
	if err := ctx.ShouldBindJSON(&params); err != nil {
		respondStatusError(ctx, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	account, err := c.accounts.UpdateAccount(ctx.Request.Context(), id, params)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	respondStatus(ctx, http.StatusOK, "User updated successfully", converter.AccountToApi(account))
}

func (c *AccountController) DeleteAccount(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondStatusError(ctx, http.StatusNotFound, "User not found", nil)
		return
	}

	if err := c.accounts.DeleteAccount(ctx.Request.Context(), id); err != nil {
		c.respondError(ctx, err)
		return
	}
	respondStatus(ctx, http.StatusOK, "User deleted successfully", nil)
}

func (c *AccountController) respondError(ctx *gin.Context, err error) {
	switch code := statusFor(err, repository.ErrAccountNotFound); code {
	case http.StatusUnprocessableEntity:
		respondStatusError(ctx, code, "Validation error", validationFields(err))
	case http.StatusNotFound:
		respondStatusError(ctx, code, "User not found", nil)
	default:
		respondStatusError(ctx, code, err.Error(), nil)
	}
}
