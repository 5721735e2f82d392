package httperror

import (
	"errors"
	"net/http"

	"github.com/raisket/advisor/internal/httputil"
	"github.com/raisket/advisor/internal/models"
	"github.com/raisket/advisor/internal/planner"
)

type Error struct {
	Message string `json:"error" example:"monthly income must be positive"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

// Status returns the HTTP status code for an error.
//
// Violations of a planning precondition are 422 since the request itself
// parses fine but the numbers do not allow a plan.
func Status(err error) int {
	switch {
	case errors.Is(err, planner.ErrPaymentTooLow),
		errors.Is(err, planner.ErrInsufficientIncome):
		return http.StatusUnprocessableEntity

	case errors.Is(err, planner.ErrInvalidInput),
		errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, httputil.ErrInvalidUUID):
		return http.StatusBadRequest

	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
