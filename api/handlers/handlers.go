package handlers

import (
	"net/http"

	"github.com/gummi-coder/Novora-sub009/api/types"
	"github.com/gummi-coder/Novora-sub009/pkg/apperror"
	"github.com/gummi-coder/Novora-sub009/util"
)

type Handler struct {
	A *types.APIOptions
}

func NewHandler(a *types.APIOptions) *Handler {
	return &Handler{A: a}
}

// statusFromError maps application error codes to HTTP statuses. Errors
// without a code are store or queue failures.
func statusFromError(err error) int {
	code, ok := apperror.CodeOf(err)
	if !ok {
		return http.StatusInternalServerError
	}

	switch code {
	case apperror.WebhookNotFound, apperror.DeliveryNotFound:
		return http.StatusNotFound
	case apperror.WebhookInactive, apperror.DeliveryNotRetryable:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func newServiceErrResponse(err error) util.ServerResponse {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		return util.NewErrorResponse("an internal error occurred", status)
	}
	return util.NewErrorResponse(err.Error(), status)
}
