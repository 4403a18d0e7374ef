package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/hunt-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/hunt-api/internal/api/middleware"
	"github.com/vietanh2810/hunt-api/internal/domain"
	"github.com/vietanh2810/hunt-api/internal/service"
)

func currentUserID(ctx *gin.Context) (uint, *response.Err) {
	id, ok := ctx.Get(middleware.UserIDKey)
	if !ok {
		return 0, response.ErrUnauthorized(errors.New("not authenticated"))
	}

	userID, ok := id.(uint)
	if !ok || userID == 0 {
		return 0, response.ErrUnauthorized(errors.New("not authenticated"))
	}

	return userID, nil
}

func uintParam(ctx *gin.Context, name string) (uint, *response.Err) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid %s: %q", name, raw))
	}

	return uint(id), nil
}

// statusByErr maps the service errors a client can act on to a status and a
// stable code. Anything else is a server error.
var statusByErr = []struct {
	err    error
	status int
	code   string
}{
	{service.ErrHuntNotFound, http.StatusNotFound, "hunt_not_found"},
	{service.ErrNotAParticipant, http.StatusNotFound, "not_a_participant"},
	{service.ErrUserNotFound, http.StatusNotFound, "user_not_found"},

	{service.ErrNotHuntOwner, http.StatusForbidden, "not_hunt_owner"},
	{service.ErrEmailNotVerified, http.StatusForbidden, "email_not_verified"},
	{service.ErrPaymentAccountRequired, http.StatusForbidden, "payment_account_required"},
	{service.ErrRejectionLimitReached, http.StatusForbidden, "rejection_limit_reached"},

	{service.ErrHuntFull, http.StatusConflict, "hunt_full"},
	{service.ErrAlreadyParticipant, http.StatusConflict, "already_participant"},
	{service.ErrAlreadyProcessing, http.StatusConflict, "payment_processing"},
	{service.ErrAlreadyPaid, http.StatusConflict, "already_paid"},
	{service.ErrSettingsBlocked, http.StatusConflict, "settings_blocked"},
	{service.ErrCapacityTooLow, http.StatusConflict, "capacity_too_low"},
	{service.ErrOverCapacity, http.StatusConflict, "over_capacity"},
	{service.ErrInvalidTransition, http.StatusConflict, "invalid_transition"},
	{domain.ErrWriteConflict, http.StatusConflict, "try_again"},

	{service.ErrHuntEnded, http.StatusUnprocessableEntity, "hunt_ended"},
	{service.ErrTooCloseToEnd, http.StatusUnprocessableEntity, "too_close_to_end"},
	{service.ErrNotPaidHunt, http.StatusUnprocessableEntity, "not_paid_hunt"},
	{service.ErrInvalidHunt, http.StatusUnprocessableEntity, "invalid_hunt"},
}

func errFromService(op string, err error) *response.Err {
	for _, m := range statusByErr {
		if !errors.Is(err, m.err) {
			continue
		}

		switch m.status {
		case http.StatusNotFound:
			return response.ErrMissing(err, m.code)
		case http.StatusForbidden:
			return response.ErrForbidden(err, m.code)
		case http.StatusConflict:
			return response.ErrConflict(err, m.code)
		default:
			return response.ErrInvalidInput(err, m.code)
		}
	}

	return response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err))
}
