package transport

import (
	"encoding/json"
	"net/http"

	"github.com/hoangtm/restaurant-ordering/constant"
	"github.com/hoangtm/restaurant-ordering/utils/errors"
)

type successBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type errorBody struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
	MessageVI  string `json:"message_vi,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(successBody{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	body, status := buildErrorBody(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeChatbotError mirrors writeError but adds the human-language fields the
// chatbot relays to the end user.
func writeChatbotError(w http.ResponseWriter, err error) {
	body, status := buildErrorBody(err)
	if cerr, ok := err.(errors.CustomError); ok {
		body.MessageVI = constant.ErrorTypeMessageVI[cerr.ErrorType()]
		body.Suggestion = constant.ErrorTypeSuggestion[cerr.ErrorType()]
	} else {
		body.MessageVI = constant.ErrorTypeMessageVI[constant.ErrInternal]
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func buildErrorBody(err error) (errorBody, int) {
	if cerr, ok := err.(errors.CustomError); ok {
		return errorBody{
			Code:    cerr.ErrorCode(),
			Message: constant.ErrorTypeMessage[cerr.ErrorType()],
			Detail:  cerr.Detail(),
		}, cerr.ErrorHTTPCode()
	}
	return errorBody{
		Code:    constant.ErrorTypeCode[constant.ErrInternal],
		Message: constant.ErrorTypeMessage[constant.ErrInternal],
	}, constant.ErrorTypeHTTPCode[constant.ErrInternal]
}
