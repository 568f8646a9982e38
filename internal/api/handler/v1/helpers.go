package v1

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/projeto-evento/evento-api/internal/api/handler/v1/response"
	"github.com/projeto-evento/evento-api/internal/api/middleware"
	"github.com/projeto-evento/evento-api/internal/service"
)

var errInvalidGiftID = errors.New("brinde id must be a positive integer")

// renderServiceErr maps service sentinels to their HTTP form. caller names the handler
// in the log breadcrumb of unexpected errors.
func renderServiceErr(ctx *gin.Context, caller string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrParticipantNotFound):
		renderNotFound(ctx, "participante", service.ErrParticipantNotFound)
	case errors.Is(err, service.ErrGiftNotFound):
		renderNotFound(ctx, "brinde", service.ErrGiftNotFound)
	case errors.Is(err, service.ErrParticipantExists):
		response.RenderErr(ctx, response.ErrConflict(service.ErrParticipantExists))
	case errors.Is(err, service.ErrInsufficientBalance):
		response.RenderErr(ctx, response.ErrInsufficientFunds(service.ErrInsufficientBalance))
	case errors.Is(err, service.ErrInsufficientStock):
		response.RenderErr(ctx, response.ErrInsufficientStock(service.ErrInsufficientStock))
	case errors.Is(err, service.ErrInvalidAdmin):
		response.RenderErr(ctx, response.ErrUnauthorized(service.ErrInvalidAdmin))
	case errors.Is(err, service.ErrTimeout):
		response.RenderErr(ctx, response.ErrTimeout(fmt.Errorf("%s -> %w", caller, err)))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", caller, err)))
	}
}

// renderNotFound names the path id when there is one; body driven routes get the sentinel message.
func renderNotFound(ctx *gin.Context, resource string, err error) {
	if id := ctx.Param("id"); id != "" {
		response.RenderErr(ctx, response.ErrNotFound(resource, "id", id))
		return
	}

	response.RenderErr(ctx, response.ErrResourceNotFound(err))
}

func parseGiftID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidGiftID))
		return 0, false
	}

	return uint(id), true
}

// adminFromToken fills an empty admin id with the subject of the bearer token, if any.
func adminFromToken(ctx *gin.Context, adminID string) string {
	if adminID != "" {
		return adminID
	}

	return middleware.UserID(ctx)
}
