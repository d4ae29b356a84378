package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/pkg/resp"
	"github.com/Bhupesh2sharma/PRoject-Rapidine/services"
)

// handleServiceError translates the services error taxonomy into HTTP.
// Conflicts stay 400 to match the original wire contract.
func handleServiceError(c *gin.Context, err error) {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		resp.BadRequest(c, ve.Msg)
		return
	}

	var occupied *services.TableOccupiedError
	if errors.As(err, &occupied) {
		resp.Conflict(c, occupied.Error(), gin.H{"sessionDetails": occupied.Session})
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrNoCheckInToday):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrDuplicateUsername),
		errors.Is(err, services.ErrAlreadyCheckedIn),
		errors.Is(err, services.ErrAlreadyCheckedOut),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrNoActiveSession),
		errors.Is(err, services.ErrTotalMismatch):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
