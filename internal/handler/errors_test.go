package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jala-youth/jala-web/internal/dashboard"
	"github.com/jala-youth/jala-web/internal/gateway"
	"github.com/jala-youth/jala-web/internal/response"
)

func TestRespondErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		status  int
		code    response.ErrCode
		message string
	}{
		{"validation", &gateway.Error{Kind: gateway.KindValidation, Message: gateway.MsgValidation, Fields: map[string]string{"email": "Email is required."}}, http.StatusUnprocessableEntity, response.ErrValidation, "Please correct the highlighted fields."},
		{"upstream message", &gateway.Error{Kind: gateway.KindRequest, Message: "Email already subscribed"}, http.StatusBadGateway, response.ErrUpstreamRejected, "Email already subscribed"},
		{"upstream detail wins", &gateway.Error{Kind: gateway.KindRequest, Message: gateway.MsgRequestFailed, Detail: "db down"}, http.StatusBadGateway, response.ErrUpstreamRejected, "db down"},
		{"connectivity", &gateway.Error{Kind: gateway.KindConnectivity, Message: gateway.MsgUnreachable}, http.StatusServiceUnavailable, response.ErrUpstreamUnavailable, gateway.MsgUnreachable},
		{"credentials", &gateway.Error{Kind: gateway.KindInvalidCredentials}, http.StatusUnauthorized, response.ErrInvalidCredentials, gateway.MsgInvalidCredentials},
		{"expired", &gateway.Error{Kind: gateway.KindSessionExpired}, http.StatusUnauthorized, response.ErrSessionExpired, gateway.MsgSessionExpired},
		{"joined", errors.Join(nil, &gateway.Error{Kind: gateway.KindSessionExpired}), http.StatusUnauthorized, response.ErrSessionExpired, gateway.MsgSessionExpired},
		{"busy", dashboard.ErrBusy, http.StatusConflict, response.ErrBusy, response.GetMessage(response.ErrBusy)},
		{"no pending", fmt.Errorf("wrap: %w", dashboard.ErrNoPendingDelete), http.StatusConflict, response.ErrConfirmationRequired, response.GetMessage(response.ErrConfirmationRequired)},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, response.ErrInternal, response.GetMessage(response.ErrInternal)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			respondError(c, tt.err)

			require.Equal(t, tt.status, rec.Code)
			var body response.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, tt.message, body.Error.Message)
		})
	}
}
