package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projeto-evento/evento-api/internal/api/handler/v1/request"
	"github.com/projeto-evento/evento-api/internal/api/handler/v1/response"
	"github.com/projeto-evento/evento-api/internal/domain"
)

type GiftService interface {
	Create(ctx context.Context, gift domain.Gift) (domain.Gift, error)
	List(ctx context.Context) ([]domain.Gift, error)
	Get(ctx context.Context, id uint) (domain.Gift, error)
	History(ctx context.Context, id uint) ([]domain.GiftHistory, error)
}

type GiftHandler struct {
	svc GiftService
}

func NewGiftHandler(svc GiftService) *GiftHandler {
	return &GiftHandler{
		svc: svc,
	}
}

// HandleListGifts godoc
// @Summary      List gifts
// @Tags         brindes
// @Produce      json
// @Success      200  {array}   domain.Gift
// @Failure      500  {object}  response.Err
// @Router       /brindes [get]
func (h *GiftHandler) HandleListGifts(ctx *gin.Context) {
	gifts, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListGifts -> h.svc.List", err)
		return
	}

	ctx.JSON(http.StatusOK, gifts)
}

// HandleCreateGift godoc
// @Summary      Create a gift
// @Tags         brindes
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateGiftRequest  true  "gift"
// @Success      201      {object}  domain.Gift
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /brindes [post]
func (h *GiftHandler) HandleCreateGift(ctx *gin.Context) {
	var req request.CreateGiftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	gift, err := h.svc.Create(ctx.Request.Context(), domain.Gift{
		Name:     req.Name,
		Quantity: *req.Quantity,
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateGift -> h.svc.Create", err)
		return
	}

	ctx.JSON(http.StatusCreated, gift)
}

// HandleGetGift godoc
// @Summary      Get a gift
// @Tags         brindes
// @Produce      json
// @Param        id   path      int  true  "gift id"
// @Success      200  {object}  domain.Gift
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /brindes/{id} [get]
func (h *GiftHandler) HandleGetGift(ctx *gin.Context) {
	id, ok := parseGiftID(ctx)
	if !ok {
		return
	}

	gift, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetGift -> h.svc.Get", err)
		return
	}

	ctx.JSON(http.StatusOK, gift)
}

// HandleGetGiftHistory godoc
// @Summary      Redemption history of a gift
// @Tags         brindes
// @Produce      json
// @Param        id   path      int  true  "gift id"
// @Success      200  {array}   domain.GiftHistory
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /brindes/{id}/historico [get]
func (h *GiftHandler) HandleGetGiftHistory(ctx *gin.Context) {
	id, ok := parseGiftID(ctx)
	if !ok {
		return
	}

	records, err := h.svc.History(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetGiftHistory -> h.svc.History", err)
		return
	}

	ctx.JSON(http.StatusOK, records)
}
