package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projeto-evento/evento-api/internal/api/handler/v1/request"
	"github.com/projeto-evento/evento-api/internal/api/handler/v1/response"
	"github.com/projeto-evento/evento-api/internal/domain"
)

type LedgerService interface {
	AdjustPoints(ctx context.Context, adjustment domain.PointAdjustment) (domain.Participant, error)
	RedeemPoints(ctx context.Context, redemption domain.PointRedemption) (domain.Participant, error)
	RedeemGift(ctx context.Context, redemption domain.GiftRedemption) (domain.Receipt, error)
}

type LedgerHandler struct {
	svc LedgerService
}

func NewLedgerHandler(svc LedgerService) *LedgerHandler {
	return &LedgerHandler{
		svc: svc,
	}
}

// HandleAdjustPoints godoc
// @Summary      Credit or debit points
// @Description  Applies a signed points delta to a participant and records it in the history.
// @Tags         pontuacao
// @Accept       json
// @Produce      json
// @Param        request  body      request.AdjustPointsRequest  true  "adjustment"
// @Success      200      {object}  response.PointsResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /pontuacao [post]
// @Security BearerAuth
func (h *LedgerHandler) HandleAdjustPoints(ctx *gin.Context) {
	var req request.AdjustPointsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participant, err := h.svc.AdjustPoints(ctx.Request.Context(), domain.PointAdjustment{
		ParticipantID: req.ParticipantID,
		Delta:         req.Points,
		Reason:        req.Reason,
		AdminID:       adminFromToken(ctx, req.AdminID),
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleAdjustPoints -> h.svc.AdjustPoints", err)
		return
	}

	verb := "adicionados"
	if req.Points < 0 {
		verb = "removidos"
	}

	ctx.JSON(http.StatusOK, response.PointsResponse{
		Message:     fmt.Sprintf("Pontos %s com sucesso", verb),
		Participant: participant,
	})
}

// HandleRedeemPoints godoc
// @Summary      Redeem points
// @Description  Debits points from a participant. An admin is always required.
// @Tags         pontuacao
// @Accept       json
// @Produce      json
// @Param        request  body      request.RedeemPointsRequest  true  "redemption"
// @Success      200      {object}  response.PointsResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /resgatar [post]
// @Security BearerAuth
func (h *LedgerHandler) HandleRedeemPoints(ctx *gin.Context) {
	var req request.RedeemPointsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	req.AdminID = adminFromToken(ctx, req.AdminID)
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participant, err := h.svc.RedeemPoints(ctx.Request.Context(), domain.PointRedemption{
		ParticipantID: req.ParticipantID,
		Points:        req.Points,
		Reason:        req.Reason,
		AdminID:       req.AdminID,
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleRedeemPoints -> h.svc.RedeemPoints", err)
		return
	}

	ctx.JSON(http.StatusOK, response.PointsResponse{
		Message:     "Resgate realizado com sucesso",
		Participant: participant,
	})
}

// HandleRedeemGift godoc
// @Summary      Redeem a gift
// @Description  Takes gift units out of stock for a participant and returns a receipt.
// @Tags         brindes
// @Accept       json
// @Produce      json
// @Param        request  body      request.RedeemGiftRequest  true  "redemption"
// @Success      200      {object}  response.RedeemGiftResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /brindes/resgatar [post]
// @Security BearerAuth
func (h *LedgerHandler) HandleRedeemGift(ctx *gin.Context) {
	var req request.RedeemGiftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	receipt, err := h.svc.RedeemGift(ctx.Request.Context(), domain.GiftRedemption{
		ParticipantID: req.ParticipantID,
		GiftID:        req.GiftID,
		Quantity:      req.Quantity,
		AdminID:       adminFromToken(ctx, req.AdminID),
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleRedeemGift -> h.svc.RedeemGift", err)
		return
	}

	ctx.JSON(http.StatusOK, response.RedeemGiftResponse{
		Message: "Brinde resgatado com sucesso",
		Receipt: receipt,
	})
}
