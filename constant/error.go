package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredential
	ErrRemoteAPI
	ErrTimeout
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:        "success",
	ErrInternal:       "error internal",
	ErrNotFound:       "data not found",
	ErrInvalidRequest: "invalid request",
	ErrUnauthorize:    "unauthorize request",
	ErrCredential:     "missing or invalid etsy credentials",
	ErrRemoteAPI:      "etsy api request failed",
	ErrTimeout:        "etsy api request timed out",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:        http.StatusOK,
	ErrInternal:       http.StatusInternalServerError,
	ErrNotFound:       http.StatusNotFound,
	ErrInvalidRequest: http.StatusBadRequest,
	ErrUnauthorize:    http.StatusUnauthorized,
	ErrCredential:     http.StatusBadRequest,
	ErrRemoteAPI:      http.StatusBadGateway,
	ErrTimeout:        http.StatusGatewayTimeout,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:        "0000",
	ErrInternal:       "0001",
	ErrNotFound:       "0002",
	ErrInvalidRequest: "0003",
	ErrUnauthorize:    "0004",
	ErrCredential:     "0005",
	ErrRemoteAPI:      "0006",
	ErrTimeout:        "0007",
}
