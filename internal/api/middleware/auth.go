package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/projeto-evento/evento-api/internal/api/handler/v1/response"
	"github.com/projeto-evento/evento-api/internal/pkg/jwthelper"
)

const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)

var (
	errMissingToken   = errors.New("missing bearer token")
	errMalformedToken = errors.New("authorization header must be 'Bearer <token>'")
	errInvalidToken   = errors.New("invalid or expired token")
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT rejects requests without a valid bearer token.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		if !a.authenticate(ctx, header) {
			return
		}

		ctx.Next()
	}
}

// OptionalJWT lets anonymous requests through but rejects a token that does not verify.
func (a *Authenticator) OptionalJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.Next()
			return
		}

		if !a.authenticate(ctx, header) {
			return
		}

		ctx.Next()
	}
}

func (a *Authenticator) authenticate(ctx *gin.Context, header string) bool {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		response.RenderErr(ctx, response.ErrUnauthorized(errMalformedToken))
		return false
	}

	claims, err := jwthelper.ParseToken(a.signingKey, strings.TrimSpace(token))
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(errInvalidToken))
		return false
	}

	ctx.Set(ContextKeyUserID, claims.Subject)
	ctx.Set(ContextKeyRole, claims.Role)

	return true
}

// UserID returns the authenticated user id, or "" for anonymous requests.
func UserID(ctx *gin.Context) string {
	return ctx.GetString(ContextKeyUserID)
}
