package v1

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/hunt-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/hunt-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/hunt-api/internal/domain"
	"github.com/vietanh2810/hunt-api/internal/service"
)

type ParticipationService interface {
	Join(ctx context.Context, huntID, userID uint) (domain.Participant, error)
	Leave(ctx context.Context, huntID, userID uint) (domain.Participant, error)
	MarkPaid(ctx context.Context, huntID, userID uint) (domain.Participant, error)
	Approve(ctx context.Context, huntID, ownerID, userID uint, opts service.ApproveOptions) (domain.Participant, error)
	Reject(ctx context.Context, huntID, ownerID, userID uint) (domain.Participant, error)
	ConfirmPayment(ctx context.Context, huntID, ownerID, userID uint, opts service.ApproveOptions) (domain.Participant, error)
	GetParticipant(ctx context.Context, huntID, userID uint) (domain.Participant, error)
	ListParticipants(ctx context.Context, huntID, viewerID uint) ([]domain.Participant, error)
	CanAccessContent(ctx context.Context, huntID, userID uint) (bool, error)
}

type ParticipationHandler struct {
	svc ParticipationService
}

func NewParticipationHandler(svc ParticipationService) *ParticipationHandler {
	return &ParticipationHandler{
		svc: svc,
	}
}

// selfAction reads the caller and the hunt for the routes where users act on
// their own participation.
func selfAction(ctx *gin.Context) (userID, huntID uint, ok bool) {
	userID, respErr := currentUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return 0, 0, false
	}

	huntID, respErr = uintParam(ctx, "huntID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return 0, 0, false
	}

	return userID, huntID, true
}

// ownerAction reads the caller, the hunt and the participant the owner acts on.
func ownerAction(ctx *gin.Context) (ownerID, huntID, userID uint, ok bool) {
	ownerID, huntID, ok = selfAction(ctx)
	if !ok {
		return 0, 0, 0, false
	}

	userID, respErr := uintParam(ctx, "userID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return 0, 0, 0, false
	}

	return ownerID, huntID, userID, true
}

// bindApprove accepts an empty body.
func bindApprove(ctx *gin.Context) (service.ApproveOptions, bool) {
	var input request.ApproveRequest
	if err := ctx.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return service.ApproveOptions{}, false
	}

	return service.ApproveOptions{AcceptOverCapacity: input.AcceptOverCapacity}, true
}

// HandleJoin godoc
// @Summary      Join a hunt
// @Description  Confirms the user on a free public hunt with room left. Private and paid hunts answer with a pending request,
// @Description  full hunts with a waitlist position.
// @Tags         participation
// @Produce      json
// @Param        huntID  path      int  true  "Hunt ID"
// @Success      201     {object}  domain.Participant
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      422     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /hunts/{huntID}/join [post]
// @Security BearerAuth
func (h *ParticipationHandler) HandleJoin(ctx *gin.Context) {
	userID, huntID, ok := selfAction(ctx)
	if !ok {
		return
	}

	p, err := h.svc.Join(ctx.Request.Context(), huntID, userID)
	if err != nil {
		response.RenderErr(ctx, errFromService("HandleJoin -> h.svc.Join", err))
		return
	}

	ctx.JSON(http.StatusCreated, p)
}

// HandleLeave godoc
// @Summary      Leave a hunt
// @Description  Cancels the caller's participation. A freed seat goes to the head of the waitlist.
// @Tags         participation
// @Produce      json
// @Param        huntID  path      int  true  "Hunt ID"
// @Success      200     {object}  domain.Participant
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /hunts/{huntID}/leave [post]
// @Security BearerAuth
func (h *ParticipationHandler) HandleLeave(ctx *gin.Context) {
	userID, huntID, ok := selfAction(ctx)
	if !ok {
		return
	}

	p, err := h.svc.Leave(ctx.Request.Context(), huntID, userID)
	if err != nil {
		response.RenderErr(ctx, errFromService("HandleLeave -> h.svc.Leave", err))
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// HandleMarkPaid godoc
// @Summary      Record a payment
// @Description  Marks the caller's pending request on a paid hunt as paid. The owner still confirms it.
// @Tags         participation
// @Produce      json
// @Param        huntID  path      int  true  "Hunt ID"
// @Success      200     {object}  domain.Participant
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      422     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /hunts/{huntID}/mark-paid [post]
// @Security BearerAuth
func (h *ParticipationHandler) HandleMarkPaid(ctx *gin.Context) {
	userID, huntID, ok := selfAction(ctx)
	if !ok {
		return
	}

	p, err := h.svc.MarkPaid(ctx.Request.Context(), huntID, userID)
	if err != nil {
		response.RenderErr(ctx, errFromService("HandleMarkPaid -> h.svc.MarkPaid", err))
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// HandleGetMyParticipation godoc
// @Summary      Get the caller's participation
// @Tags         participation
// @Produce      json
// @Param        huntID  path      int  true  "Hunt ID"
// @Success      200     {object}  domain.Participant
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /hunts/{huntID}/participants/me [get]
// @Security BearerAuth
func (h *ParticipationHandler) HandleGetMyParticipation(ctx *gin.Context) {
	userID, huntID, ok := selfAction(ctx)
	if !ok {
		return
	}

	p, err := h.svc.GetParticipant(ctx.Request.Context(), huntID, userID)
	if err != nil {
		response.RenderErr(ctx, errFromService("HandleGetMyParticipation -> h.svc.GetParticipant", err))
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// HandleListParticipants godoc
// @Summary      List participants
// @Description  The hunt owner sees every participation, everyone else only the confirmed ones.
// @Tags         participation
// @Produce      json
// @Param        huntID  path      int  true  "Hunt ID"
// @Success      200     {object}  response.Participants
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /hunts/{huntID}/participants [get]
// @Security BearerAuth
func (h *ParticipationHandler) HandleListParticipants(ctx *gin.Context) {
	userID, huntID, ok := selfAction(ctx)
	if !ok {
		return
	}

	participants, err := h.svc.ListParticipants(ctx.Request.Context(), huntID, userID)
	if err != nil {
		response.RenderErr(ctx, errFromService("HandleListParticipants -> h.svc.ListParticipants", err))
		return
	}
	if participants == nil {
		participants = []domain.Participant{}
	}

	ctx.JSON(http.StatusOK, response.Participants{
		HuntID:       huntID,
		Participants: participants,
	})
}

// HandleAccess godoc
// @Summary      Check content access
// @Description  Albums, chat and statistics are open to the owner and confirmed participants.
// @Tags         participation
// @Produce      json
// @Param        huntID  path      int  true  "Hunt ID"
// @Success      200     {object}  response.Access
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /hunts/{huntID}/access [get]
// @Security BearerAuth
func (h *ParticipationHandler) HandleAccess(ctx *gin.Context) {
	userID, huntID, ok := selfAction(ctx)
	if !ok {
		return
	}

	allowed, err := h.svc.CanAccessContent(ctx.Request.Context(), huntID, userID)
	if err != nil {
		response.RenderErr(ctx, errFromService("HandleAccess -> h.svc.CanAccessContent", err))
		return
	}

	ctx.JSON(http.StatusOK, response.Access{
		HuntID:  huntID,
		Allowed: allowed,
	})
}

// HandleApprove godoc
// @Summary      Approve a join request
// @Description  Confirms a pending request. On a full hunt the owner has to accept going over capacity.
// @Tags         participation
// @Accept       json
// @Produce      json
// @Param        huntID  path      int                     true   "Hunt ID"
// @Param        userID  path      int                     true   "User ID"
// @Param        input   body      request.ApproveRequest  false  "Over-capacity answer"
// @Success      200     {object}  domain.Participant
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /hunts/{huntID}/participants/{userID}/approve [post]
// @Security BearerAuth
func (h *ParticipationHandler) HandleApprove(ctx *gin.Context) {
	ownerID, huntID, userID, ok := ownerAction(ctx)
	if !ok {
		return
	}

	opts, ok := bindApprove(ctx)
	if !ok {
		return
	}

	p, err := h.svc.Approve(ctx.Request.Context(), huntID, ownerID, userID, opts)
	if err != nil {
		response.RenderErr(ctx, errFromService("HandleApprove -> h.svc.Approve", err))
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// HandleReject godoc
// @Summary      Reject a join request
// @Description  A user rejected three times cannot ask to join the hunt again.
// @Tags         participation
// @Produce      json
// @Param        huntID  path      int  true  "Hunt ID"
// @Param        userID  path      int  true  "User ID"
// @Success      200     {object}  domain.Participant
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /hunts/{huntID}/participants/{userID}/reject [post]
// @Security BearerAuth
func (h *ParticipationHandler) HandleReject(ctx *gin.Context) {
	ownerID, huntID, userID, ok := ownerAction(ctx)
	if !ok {
		return
	}

	p, err := h.svc.Reject(ctx.Request.Context(), huntID, ownerID, userID)
	if err != nil {
		response.RenderErr(ctx, errFromService("HandleReject -> h.svc.Reject", err))
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// HandleConfirmPayment godoc
// @Summary      Confirm a payment
// @Description  Confirms a pending participant whose payment was recorded.
// @Tags         participation
// @Accept       json
// @Produce      json
// @Param        huntID  path      int                     true   "Hunt ID"
// @Param        userID  path      int                     true   "User ID"
// @Param        input   body      request.ApproveRequest  false  "Over-capacity answer"
// @Success      200     {object}  domain.Participant
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      422     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /hunts/{huntID}/participants/{userID}/confirm-payment [post]
// @Security BearerAuth
func (h *ParticipationHandler) HandleConfirmPayment(ctx *gin.Context) {
	ownerID, huntID, userID, ok := ownerAction(ctx)
	if !ok {
		return
	}

	opts, ok := bindApprove(ctx)
	if !ok {
		return
	}

	p, err := h.svc.ConfirmPayment(ctx.Request.Context(), huntID, ownerID, userID, opts)
	if err != nil {
		response.RenderErr(ctx, errFromService("HandleConfirmPayment -> h.svc.ConfirmPayment", err))
		return
	}

	ctx.JSON(http.StatusOK, p)
}
