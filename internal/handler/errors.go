package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jala-youth/jala-web/internal/dashboard"
	"github.com/jala-youth/jala-web/internal/gateway"
	"github.com/jala-youth/jala-web/internal/response"
)

// respondError maps gateway and view-model failures onto the API envelope.
func respondError(c *gin.Context, err error) {
	var gerr *gateway.Error
	switch {
	case errors.As(err, &gerr):
		respondGatewayError(c, gerr, "")
	case errors.Is(err, dashboard.ErrNotAuthenticated):
		response.Fail(c, http.StatusUnauthorized, response.ErrSessionExpired)
	case errors.Is(err, dashboard.ErrUnknownTab):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidKind)
	case errors.Is(err, dashboard.ErrNoPendingDelete):
		response.Fail(c, http.StatusConflict, response.ErrConfirmationRequired)
	case errors.Is(err, dashboard.ErrBusy):
		response.Fail(c, http.StatusConflict, response.ErrBusy)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// respondGatewayError writes gerr. A non-empty message replaces the one the
// gateway chose.
func respondGatewayError(c *gin.Context, gerr *gateway.Error, message string) {
	switch gerr.Kind {
	case gateway.KindValidation:
		if len(gerr.Fields) == 0 {
			response.FailWithMessage(c, http.StatusUnprocessableEntity, response.ErrValidation, firstNonEmpty(message, gerr.Message))
			return
		}
		response.FailWithFields(c, http.StatusUnprocessableEntity, response.ErrValidation, gerr.Fields)
	case gateway.KindRequest:
		response.FailWithMessage(c, http.StatusBadGateway, response.ErrUpstreamRejected, firstNonEmpty(message, gerr.Detail, gerr.Message))
	case gateway.KindConnectivity:
		response.FailWithMessage(c, http.StatusServiceUnavailable, response.ErrUpstreamUnavailable, firstNonEmpty(message, gerr.Message))
	case gateway.KindInvalidCredentials:
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
	case gateway.KindSessionExpired:
		response.Fail(c, http.StatusUnauthorized, response.ErrSessionExpired)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// bindFailed reports a request body that could not be decoded or validated.
func bindFailed(c *gin.Context, fields map[string]string) {
	if _, ok := fields["detail"]; ok && len(fields) == 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}
	response.FailWithFields(c, http.StatusUnprocessableEntity, response.ErrValidation, fields)
}
