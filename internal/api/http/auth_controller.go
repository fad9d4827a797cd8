package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sohanurdev/portfolio-backend/internal/api/http/converter"
	"github.com/sohanurdev/portfolio-backend/internal/auth"
	"github.com/sohanurdev/portfolio-backend/internal/repository"
	"github.com/sohanurdev/portfolio-backend/internal/service"
)

type AuthController struct {
	accounts service.AccountInteractor
	secret   string
	tokenTTL time.Duration
}

func NewAuthController(accounts service.AccountInteractor, secret string, tokenTTL time.Duration) *AuthController {
	return &AuthController{accounts: accounts, secret: secret, tokenTTL: tokenTTL}
}

func (c *AuthController) Signup(ctx *gin.Context) {
	var params service.CreateAccountParams
	if err := ctx.ShouldBindJSON(&params); err != nil {
		respondStatusError(ctx, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	account, err := c.accounts.CreateAccount(ctx.Request.Context(), params)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			respondStatusError(ctx, http.StatusUnprocessableEntity, "Validation error", ve.Fields)
			return
		}
		respondStatusError(ctx, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	token, err := auth.MakeToken(account.ID, account.Role, c.secret, c.tokenTTL)
	if err != nil {
		respondStatusError(ctx, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	respondStatus(ctx, http.StatusCreated, "User registered successfully!", gin.H{
		"token": token,
		"user":  converter.AccountToApi(account),
	})
}

func (c *AuthController) Login(ctx *gin.Context) {
	type request struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondStatusError(ctx, http.StatusUnprocessableEntity, "Validation error", gin.H{
			"email":    []string{"The email and password fields are required."},
			"password": []string{"The email and password fields are required."},
		})
		return
	}

	account, err := c.accounts.Authenticate(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondStatusError(ctx, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}
		respondStatusError(ctx, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	token, err := auth.MakeToken(account.ID, account.Role, c.secret, c.tokenTTL)
	if err != nil {
		respondStatusError(ctx, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	respondStatus(ctx, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  converter.AccountToApi(account),
	})
}

// Me returns the account resolved by the bearer middleware.
func (c *AuthController) Me(ctx *gin.Context) {
	raw, ok := ctx.Get(accountIDKey)
	if !ok {
		respondStatusError(ctx, http.StatusUnauthorized, "Unauthenticated", nil)
		return
	}

	account, err := c.accounts.GetAccount(ctx.Request.Context(), raw.(uuid.UUID))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			respondStatusError(ctx, http.StatusUnauthorized, "Unauthenticated", nil)
			return
		}
		respondStatusError(ctx, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	respondStatus(ctx, http.StatusOK, "", converter.AccountToApi(account))
}
