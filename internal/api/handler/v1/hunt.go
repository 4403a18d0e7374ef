package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/hunt-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/hunt-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/hunt-api/internal/domain"
)

type HuntService interface {
	CreateHunt(ctx context.Context, ownerID uint, hunt domain.Hunt) (domain.Hunt, error)
	GetHunt(ctx context.Context, huntID uint) (domain.Hunt, error)
	Summary(ctx context.Context, huntID uint) (domain.HuntSummary, error)
	UpdateHunt(ctx context.Context, ownerID, huntID uint, changes domain.HuntChanges) (domain.Hunt, error)
	CancelHunt(ctx context.Context, ownerID, huntID uint) error
}

type HuntHandler struct {
	svc HuntService
}

func NewHuntHandler(svc HuntService) *HuntHandler {
	return &HuntHandler{
		svc: svc,
	}
}

// HandleCreateHunt godoc
// @Summary      Create a hunt
// @Description  Creates a hunt owned by the authenticated user. A paid hunt needs a verified payment account.
// @Tags         hunts
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateHuntRequest  true  "Hunt details"
// @Success      201    {object}  domain.Hunt
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      422    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /hunts [post]
// @Security BearerAuth
func (h *HuntHandler) HandleCreateHunt(ctx *gin.Context) {
	userID, respErr := currentUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.CreateHuntRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	hunt, err := h.svc.CreateHunt(ctx.Request.Context(), userID, input.ToDomain())
	if err != nil {
		response.RenderErr(ctx, errFromService("HandleCreateHunt -> h.svc.CreateHunt", err))
		return
	}

	ctx.JSON(http.StatusCreated, hunt)
}

// HandleGetHunt godoc
// @Summary      Get a hunt
// @Tags         hunts
// @Produce      json
// @Param        huntID  path      int  true  "Hunt ID"
// @Success      200     {object}  domain.Hunt
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /hunts/{huntID} [get]
// @Security BearerAuth
func (h *HuntHandler) HandleGetHunt(ctx *gin.Context) {
	huntID, respErr := uintParam(ctx, "huntID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	hunt, err := h.svc.GetHunt(ctx.Request.Context(), huntID)
	if err != nil {
		response.RenderErr(ctx, errFromService("HandleGetHunt -> h.svc.GetHunt", err))
		return
	}

	ctx.JSON(http.StatusOK, hunt)
}

// HandleGetSummary godoc
// @Summary      Get the participation summary of a hunt
// @Description  Counts per status, available spots and whether the minimum is met.
// @Tags         hunts
// @Produce      json
// @Param        huntID  path      int  true  "Hunt ID"
// @Success      200     {object}  domain.HuntSummary
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /hunts/{huntID}/summary [get]
// @Security BearerAuth
func (h *HuntHandler) HandleGetSummary(ctx *gin.Context) {
	huntID, respErr := uintParam(ctx, "huntID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	summary, err := h.svc.Summary(ctx.Request.Context(), huntID)
	if err != nil {
		response.RenderErr(ctx, errFromService("HandleGetSummary -> h.svc.Summary", err))
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// HandleUpdateHunt godoc
// @Summary      Update a hunt
// @Description  Visibility, payment and waitlist settings are locked while requests are pending or waitlisted.
// @Description  Raising the capacity promotes waitlisted users in order.
// @Tags         hunts
// @Accept       json
// @Produce      json
// @Param        huntID  path      int                        true  "Hunt ID"
// @Param        input   body      request.UpdateHuntRequest  true  "Changed fields"
// @Success      200     {object}  domain.Hunt
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /hunts/{huntID} [patch]
// @Security BearerAuth
func (h *HuntHandler) HandleUpdateHunt(ctx *gin.Context) {
	userID, respErr := currentUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	huntID, respErr := uintParam(ctx, "huntID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.UpdateHuntRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	hunt, err := h.svc.UpdateHunt(ctx.Request.Context(), userID, huntID, input.ToDomain())
	if err != nil {
		response.RenderErr(ctx, errFromService("HandleUpdateHunt -> h.svc.UpdateHunt", err))
		return
	}

	ctx.JSON(http.StatusOK, hunt)
}

// HandleCancelHunt godoc
// @Summary      Cancel a hunt
// @Description  Cancels every live participation, then removes the hunt.
// @Tags         hunts
// @Param        huntID  path  int  true  "Hunt ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /hunts/{huntID} [delete]
// @Security BearerAuth
func (h *HuntHandler) HandleCancelHunt(ctx *gin.Context) {
	userID, respErr := currentUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	huntID, respErr := uintParam(ctx, "huntID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.CancelHunt(ctx.Request.Context(), userID, huntID); err != nil {
		response.RenderErr(ctx, errFromService("HandleCancelHunt -> h.svc.CancelHunt", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
