package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sowmyalt/edu2job/internal/engine"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotTrained indicates a corpus-derived view was requested before any model was trained
type ErrNotTrained struct{}

func (e *ErrNotTrained) Error() string {
	return "model not trained"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validation *ErrValidation
	var notTrained *ErrNotTrained
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notTrained), errors.Is(err, engine.ErrTrainingUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
