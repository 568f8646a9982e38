package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projeto-evento/evento-api/internal/api/handler/v1/request"
	"github.com/projeto-evento/evento-api/internal/api/handler/v1/response"
	"github.com/projeto-evento/evento-api/internal/domain"
)

type ParticipantService interface {
	Register(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	List(ctx context.Context) ([]domain.Participant, error)
	Get(ctx context.Context, id string) (domain.Participant, error)
	History(ctx context.Context, id string) ([]domain.PointsHistory, error)
}

type ParticipantHandler struct {
	svc ParticipantService
}

func NewParticipantHandler(svc ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		svc: svc,
	}
}

// HandleListParticipants godoc
// @Summary      List participants
// @Tags         participantes
// @Produce      json
// @Success      200  {array}   domain.Participant
// @Failure      500  {object}  response.Err
// @Router       /participantes [get]
func (h *ParticipantHandler) HandleListParticipants(ctx *gin.Context) {
	participants, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListParticipants -> h.svc.List", err)
		return
	}

	ctx.JSON(http.StatusOK, participants)
}

// HandleCreateParticipant godoc
// @Summary      Register a participant
// @Description  Creates a participant with a zero points balance.
// @Tags         participantes
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateParticipantRequest  true  "participant"
// @Success      201      {object}  domain.Participant
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /participantes [post]
func (h *ParticipantHandler) HandleCreateParticipant(ctx *gin.Context) {
	var req request.CreateParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participant, err := h.svc.Register(ctx.Request.Context(), domain.Participant{
		ID:       req.ID,
		Name:     req.Name,
		Document: req.Document,
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateParticipant -> h.svc.Register", err)
		return
	}

	ctx.JSON(http.StatusCreated, participant)
}

// HandleGetParticipant godoc
// @Summary      Get a participant
// @Tags         participantes
// @Produce      json
// @Param        id   path      string  true  "participant id"
// @Success      200  {object}  domain.Participant
// @Failure      404  {object}  response.Err
// @Router       /participantes/{id} [get]
func (h *ParticipantHandler) HandleGetParticipant(ctx *gin.Context) {
	participant, err := h.svc.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetParticipant -> h.svc.Get", err)
		return
	}

	ctx.JSON(http.StatusOK, participant)
}

// HandleGetParticipantHistory godoc
// @Summary      Points history of a participant
// @Tags         participantes
// @Produce      json
// @Param        id   path      string  true  "participant id"
// @Success      200  {array}   domain.PointsHistory
// @Failure      404  {object}  response.Err
// @Router       /participantes/{id}/historico [get]
func (h *ParticipantHandler) HandleGetParticipantHistory(ctx *gin.Context) {
	records, err := h.svc.History(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetParticipantHistory -> h.svc.History", err)
		return
	}

	ctx.JSON(http.StatusOK, records)
}
