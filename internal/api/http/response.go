package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sohanurdev/portfolio-backend/internal/service"
)

// Two envelope shapes coexist because the site's client was written against
// both: accounts, contacts, appointments and auth use the "status" form,
// videos and site content use the "success" form.

func respondStatus(ctx *gin.Context, code int, message string, data any) {
	body := gin.H{"status": "success"}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	ctx.JSON(code, body)
}

func respondStatusError(ctx *gin.Context, code int, message string, fields any) {
	body := gin.H{"status": "error"}
	if message != "" {
		body["message"] = message
	}
	if fields != nil {
		body["errors"] = fields
	}
	ctx.JSON(code, body)
}

func respondSuccess(ctx *gin.Context, code int, data any, message string) {
	body := gin.H{"success": true}
	if data != nil {
		body["data"] = data
	}
	if message != "" {
		body["message"] = message
	}
	ctx.JSON(code, body)
}

func respondFailure(ctx *gin.Context, code int, message string, fields any) {
	body := gin.H{"success": false, "message": message}
	if fields != nil {
		body["errors"] = fields
	}
	ctx.JSON(code, body)
}

// statusFor resolves the HTTP code for a service error: 422 for validation
// failures, 404 for the given not-found sentinel, 500 otherwise.
func statusFor(err, notFound error) int {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity
	case errors.Is(err, notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func validationFields(err error) any {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
