package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adindapuspa/storesync/constant"
	cerr "github.com/adindapuspa/storesync/utils/errors"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, err error) {
	var customErr cerr.CustomError
	if !errors.As(err, &customErr) {
		customErr = cerr.SetCustomError(constant.ErrInternal)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(customErr.ErrorHTTPCode())
	json.NewEncoder(w).Encode(errorResponse{
		Code:    customErr.ErrorCode(),
		Message: customErr.Error(),
	})
}

func writeSuccess(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(payload)
}
