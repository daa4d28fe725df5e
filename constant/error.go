package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInvalidPassword
	ErrMissingField
	ErrInvalidReference
	ErrItemParse
	ErrAddressUnresolved
	ErrDirectoryUnavailable
	ErrSequenceAllocation
	ErrPersistence
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:              "success",
	ErrInternal:             "error internal",
	ErrNotFound:             "data not found",
	ErrInvalidRequest:       "invalid request",
	ErrUnauthorize:          "unauthorize request",
	ErrInvalidPassword:      "password invalid",
	ErrMissingField:         "required field is missing",
	ErrInvalidReference:     "referenced entity not found",
	ErrItemParse:            "order items malformed or empty",
	ErrAddressUnresolved:    "address could not be resolved",
	ErrDirectoryUnavailable: "address directory unavailable",
	ErrSequenceAllocation:   "order number allocation failed",
	ErrPersistence:          "order could not be saved",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:              http.StatusOK,
	ErrInternal:             http.StatusInternalServerError,
	ErrNotFound:             http.StatusBadRequest,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrUnauthorize:          http.StatusUnauthorized,
	ErrInvalidPassword:      http.StatusBadRequest,
	ErrMissingField:         http.StatusBadRequest,
	ErrInvalidReference:     http.StatusBadRequest,
	ErrItemParse:            http.StatusBadRequest,
	ErrAddressUnresolved:    http.StatusBadRequest,
	ErrDirectoryUnavailable: http.StatusServiceUnavailable,
	ErrSequenceAllocation:   http.StatusInternalServerError,
	ErrPersistence:          http.StatusInternalServerError,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:              "0000",
	ErrInternal:             "0001",
	ErrNotFound:             "0002",
	ErrInvalidRequest:       "0003",
	ErrUnauthorize:          "0004",
	ErrInvalidPassword:      "0005",
	ErrMissingField:         "0010",
	ErrInvalidReference:     "0011",
	ErrItemParse:            "0012",
	ErrAddressUnresolved:    "0013",
	ErrDirectoryUnavailable: "0014",
	ErrSequenceAllocation:   "0015",
	ErrPersistence:          "0016",
}

// Vietnamese messages returned on the chatbot channel, whose caller relays
// them to the end user verbatim.
var ErrorTypeMessageVI = map[ErrorType]string{
	ErrInternal:             "Hệ thống đang gặp sự cố, vui lòng thử lại sau.",
	ErrNotFound:             "Không tìm thấy dữ liệu yêu cầu.",
	ErrInvalidRequest:       "Yêu cầu không hợp lệ.",
	ErrUnauthorize:          "Yêu cầu không được xác thực.",
	ErrMissingField:         "Thiếu thông tin bắt buộc.",
	ErrInvalidReference:     "Món ăn hoặc tài khoản không tồn tại.",
	ErrItemParse:            "Danh sách món không hợp lệ hoặc trống.",
	ErrAddressUnresolved:    "Không xác định được địa chỉ giao hàng.",
	ErrDirectoryUnavailable: "Dịch vụ tra cứu địa chỉ tạm thời gián đoạn.",
	ErrSequenceAllocation:   "Không cấp được mã đơn hàng, vui lòng thử lại.",
	ErrPersistence:          "Không lưu được đơn hàng, vui lòng thử lại.",
}

var ErrorTypeSuggestion = map[ErrorType]string{
	ErrMissingField:      "Vui lòng cung cấp đầy đủ thông tin được yêu cầu.",
	ErrInvalidReference:  "Vui lòng kiểm tra lại mã món hoặc đăng nhập lại.",
	ErrItemParse:         "Vui lòng chọn ít nhất một món hợp lệ rồi đặt lại.",
	ErrAddressUnresolved: "Vui lòng cung cấp lại phường/xã và quận/huyện.",
}
