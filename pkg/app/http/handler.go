// Package http provides HTTP utilities including chi-compatible error handling
package http

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	apperrors "github.com/chainsafe/rbt-faucet/pkg/app/errors"
)

// HandlerFunc defines a function that returns an error for clean error handling
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// HandleError wraps an error-returning HandlerFunc into a standard http.HandlerFunc
//
// Usage with chi:
//
//	r.Post("/increment", http.HandleError(handler.increment))
func HandleError(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			DefaultErrorHandler(w, err)
		}
	}
}

type errorResponse struct {
	ErrMsg     string `json:"error"`
	ErrMsgCode int    `json:"code"`
}

// DefaultErrorHandler handles errors returned from HTTP handlers
func DefaultErrorHandler(w http.ResponseWriter, err error) {
	var svcErr *apperrors.ServiceError

	if !errors.As(err, &svcErr) {
		WriteJSON(w, http.StatusInternalServerError, &errorResponse{
			ErrMsg:     "Unexpected Service Error",
			ErrMsgCode: http.StatusInternalServerError,
		})
		return
	}

	if svcErr.RetryAfter > 0 {
		secs := int(math.Ceil(svcErr.RetryAfter.Seconds()))
		w.Header().Set("Retry-After", strconv.Itoa(secs))
	}

	if svcErr.PlainText {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(svcErr.StatusCode())
		_, _ = w.Write([]byte(svcErr.Message))
		return
	}

	WriteJSON(w, svcErr.StatusCode(), &errorResponse{
		ErrMsg:     svcErr.Message,
		ErrMsgCode: svcErr.StatusCode(),
	})
}

// WriteJSON writes data as a JSON response with the given status
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
