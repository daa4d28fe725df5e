package errors

import "github.com/hoangtm/restaurant-ordering/constant"

// CustomError couples an ErrorType with an optional free-text detail naming
// the offending field, id, or resolution branch so callers can correct and
// retry.
type CustomError struct {
	errType constant.ErrorType
	detail  string
}

func (c CustomError) Error() string {
	msg := constant.ErrorTypeMessage[c.errType]
	if c.detail != "" {
		return msg + ": " + c.detail
	}
	return msg
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Detail() string {
	return c.detail
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

func SetCustomErrorWithDetail(errorType constant.ErrorType, detail string) CustomError {
	return CustomError{
		errType: errorType,
		detail:  detail,
	}
}
