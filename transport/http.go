package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	orderapp "github.com/hoangtm/restaurant-ordering/application/order"
	userapp "github.com/hoangtm/restaurant-ordering/application/user"
	"github.com/hoangtm/restaurant-ordering/cmd/config"
	"github.com/hoangtm/restaurant-ordering/constant"
	"github.com/hoangtm/restaurant-ordering/model"
	utilsContext "github.com/hoangtm/restaurant-ordering/utils/context"
	"github.com/hoangtm/restaurant-ordering/utils/errors"
	"github.com/hoangtm/restaurant-ordering/utils/logger"
	validatorx "github.com/hoangtm/restaurant-ordering/utils/validator"
	"go.uber.org/zap"
)

type RestHandler struct {
	UserApp  userapp.UserApp
	OrderApp orderapp.OrderApp
}

func NewTransport(cfg *config.Config, UserApp userapp.UserApp, OrderApp orderapp.OrderApp) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		UserApp:  UserApp,
		OrderApp: OrderApp,
	}

	// Public routes
	router.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Authenticated web channel
	router.HandleFunc("/v1/order", rh.CreateOrder).Methods(http.MethodPost)

	// Chatbot channel: shared secret, not a user session
	chatbot := router.PathPrefix("/chatbot").Subrouter()
	chatbot.Use(ChatbotMiddleware(cfg.Chatbot.SecretKey))
	chatbot.HandleFunc("/v1/order", rh.CreateChatbotOrder).Methods(http.MethodPost)

	// Internal callbacks (consumer side)
	internal := router.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(cfg.Internal.APIKey))
	internal.HandleFunc("/v1/notify", rh.InternalNotify).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(UserApp))

	return router
}

// Login handler
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateOrder serves the authenticated web channel. The session identity
// overrides anything the body claims, and a fully resolved address is
// required.
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	req.UserID = userID
	req.Channel = constant.ChannelWeb

	res, err := s.OrderApp.CreateOrder(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateChatbotOrder serves the shared-secret chatbot channel. The body
// asserts the userId, items may arrive in any tolerated shape, and a partial
// address is acceptable. Errors carry a Vietnamese message and a suggestion
// because the chatbot's caller does not inspect raw error codes.
func (s *RestHandler) CreateChatbotOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeChatbotError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.Channel = constant.ChannelChatbot

	res, err := s.OrderApp.CreateOrder(ctx, &req)
	if err != nil {
		writeChatbotError(w, err)
		return
	}

	writeSuccess(w, res)
}

// InternalNotify acknowledges the order_created consumer callback. The
// kitchen display polls its own store; this endpoint only confirms delivery.
func (s *RestHandler) InternalNotify(w http.ResponseWriter, r *http.Request) {
	var msg struct {
		OrderID   string  `json:"order_id"`
		OrderCode string  `json:"order_code"`
		UserID    string  `json:"user_id"`
		Total     float64 `json:"total"`
		Channel   string  `json:"channel"`
	}
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	logger.Info("kitchen notified",
		zap.String("order_code", msg.OrderCode),
		zap.String("channel", msg.Channel),
	)
	writeSuccess(w, map[string]string{"order_code": msg.OrderCode})
}
