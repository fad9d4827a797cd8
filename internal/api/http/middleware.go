package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sohanurdev/portfolio-backend/internal/auth"
)

const accountIDKey = "account_id"

// RequireAuth verifies a bearer token and stores the account id in the
// request context. Rejects with 401 otherwise.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			respondStatusError(ctx, http.StatusUnauthorized, "Unauthenticated", nil)
			ctx.Abort()
			return
		}

		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			respondStatusError(ctx, http.StatusUnauthorized, "Unauthenticated", nil)
			ctx.Abort()
			return
		}

		id, err := uuid.Parse(claims.AccountID)
		if err != nil {
			respondStatusError(ctx, http.StatusUnauthorized, "Unauthenticated", nil)
			ctx.Abort()
			return
		}

		ctx.Set(accountIDKey, id)
		ctx.Next()
	}
}
