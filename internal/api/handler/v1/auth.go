package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projeto-evento/evento-api/internal/api/handler/v1/request"
	"github.com/projeto-evento/evento-api/internal/api/handler/v1/response"
	"github.com/projeto-evento/evento-api/internal/config"
	"github.com/projeto-evento/evento-api/internal/domain"
	"github.com/projeto-evento/evento-api/internal/pkg/jwthelper"
	"github.com/projeto-evento/evento-api/internal/service"
)

type AuthService interface {
	Login(ctx context.Context, id, password string) (domain.User, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleLogin godoc
// @Summary      Login an admin user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      429      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.ID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			resp := response.ErrNotFound("usuario", "id", req.ID)
			resp.HTTPStatusCode = http.StatusBadRequest
			response.RenderErr(ctx, resp)
		case errors.Is(err, service.ErrWrongPassword):
			response.RenderErr(ctx, response.ErrWrongCredentials(err))
		case errors.Is(err, service.ErrTimeout):
			response.RenderErr(ctx, response.ErrTimeout(err))
		default:
			err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.ID, user.Role, h.conf.JWTExpiry)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		User:  user,
	})
}
