package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hoangtm/restaurant-ordering/cmd/config"
	"github.com/hoangtm/restaurant-ordering/constant"
	"github.com/hoangtm/restaurant-ordering/model"
	"github.com/hoangtm/restaurant-ordering/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserApp validates one fixed token.
type stubUserApp struct {
	token  string
	userID string
}

func (s *stubUserApp) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	return &model.LoginResponse{Token: s.token}, nil
}

func (s *stubUserApp) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	if tokenString != s.token {
		return "", fmt.Errorf("invalid token")
	}
	return s.userID, nil
}

// stubOrderApp records the request it received.
type stubOrderApp struct {
	got *model.OrderRequest
	err error
}

func (s *stubOrderApp) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &model.OrderResponse{OrderCode: "ORD20260831-000001", OrderNumber: 1, Status: "pending"}, nil
}

func testTransport(orderApp *stubOrderApp) http.Handler {
	cfg := &config.Config{}
	cfg.Chatbot.SecretKey = "bot-secret"
	cfg.Internal.APIKey = "internal-key"
	userApp := &stubUserApp{token: "good-token", userID: "U1"}
	return NewTransport(cfg, userApp, orderApp)
}

func TestWebOrderRequiresSession(t *testing.T) {
	handler := testTransport(&stubOrderApp{})

	req := httptest.NewRequest(http.MethodPost, "/v1/order", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWebOrderSessionIdentityOverridesBody(t *testing.T) {
	orderApp := &stubOrderApp{}
	handler := testTransport(orderApp)

	body := `{"userId":"someone-else","items":[{"productId":"P1","quantity":1,"price":50000}],"total":50000}`
	req := httptest.NewRequest(http.MethodPost, "/v1/order", bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, orderApp.got)
	assert.Equal(t, "U1", orderApp.got.UserID)
	assert.Equal(t, constant.ChannelWeb, orderApp.got.Channel)
}

func TestChatbotOrderAuth(t *testing.T) {
	tests := []struct {
		name       string
		setAuth    func(r *http.Request)
		wantStatus int
	}{
		{
			name:       "header key accepted",
			setAuth:    func(r *http.Request) { r.Header.Set("X-Api-Key", "bot-secret") },
			wantStatus: http.StatusOK,
		},
		{
			name:       "query key accepted",
			setAuth:    func(r *http.Request) { r.URL.RawQuery = "key=bot-secret" },
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong key rejected",
			setAuth:    func(r *http.Request) { r.Header.Set("X-Api-Key", "nope") },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing key rejected",
			setAuth:    func(r *http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderApp := &stubOrderApp{}
			handler := testTransport(orderApp)

			body := `{"userId":"U9","items":[{"productId":"P1","quantity":1,"price":50000}],"total":50000}`
			req := httptest.NewRequest(http.MethodPost, "/chatbot/v1/order", bytes.NewBufferString(body))
			tt.setAuth(req)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				require.NotNil(t, orderApp.got)
				assert.Equal(t, "U9", orderApp.got.UserID)
				assert.Equal(t, constant.ChannelChatbot, orderApp.got.Channel)
			}
		})
	}
}

// Chatbot errors must carry the Vietnamese message and suggestion the bot
// relays verbatim.
func TestChatbotErrorBody(t *testing.T) {
	orderApp := &stubOrderApp{
		err: errors.SetCustomErrorWithDetail(constant.ErrAddressUnresolved, "ward missing, district missing, province missing"),
	}
	handler := testTransport(orderApp)

	body := `{"userId":"U9","items":[{"productId":"P1","quantity":1,"price":50000}],"total":50000}`
	req := httptest.NewRequest(http.MethodPost, "/chatbot/v1/order", bytes.NewBufferString(body))
	req.Header.Set("X-Api-Key", "bot-secret")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, constant.ErrorTypeHTTPCode[constant.ErrAddressUnresolved], rec.Code)

	var got errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrAddressUnresolved], got.Code)
	assert.Equal(t, constant.ErrorTypeMessageVI[constant.ErrAddressUnresolved], got.MessageVI)
	assert.Equal(t, constant.ErrorTypeSuggestion[constant.ErrAddressUnresolved], got.Suggestion)
	assert.NotEmpty(t, got.Detail)
}

func TestInternalNotifyAuth(t *testing.T) {
	handler := testTransport(&stubOrderApp{})

	body := `{"order_code":"ORD20260831-000001","channel":"chatbot"}`

	req := httptest.NewRequest(http.MethodPost, "/internal/v1/notify", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/internal/v1/notify", bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer internal-key")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
