package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/hunt-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/hunt-api/internal/pkg/jwthelper"
)

// UserIDKey is the gin context key holding the authenticated user ID.
const UserIDKey = "userID"

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT requires a valid "Authorization: Bearer <token>" header and
// stores the user ID of its subject under UserIDKey.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errors.New("missing bearer token")))
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		ctx.Set(UserIDKey, userID)
		ctx.Next()
	}
}
