package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/chainsafe/rbt-faucet/pkg/app/errors"
)

func serveErr(err error) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	HandleError(func(http.ResponseWriter, *http.Request) error { return err })(
		rec, httptest.NewRequest(http.MethodGet, "/", nil),
	)
	return rec
}

func TestHandleError_NoError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(func(w http.ResponseWriter, _ *http.Request) error {
		w.WriteHeader(http.StatusNoContent)
		return nil
	})(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandleError_ServiceError(t *testing.T) {
	rec := serveErr(apperrors.ResourceNotFoundError(nil, "counters not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"counters not found","code":404}`, rec.Body.String())
}

func TestHandleError_UnknownError(t *testing.T) {
	rec := serveErr(errors.New("db exploded"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Unexpected Service Error","code":500}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "db exploded")
}

func TestHandleError_PlainTextWithRetryAfter(t *testing.T) {
	err := apperrors.AsPlainText(apperrors.TooManyRequestsError(nil,
		"Request denied. Try again in 5 minute(s).", 4*time.Minute+500*time.Millisecond))
	rec := serveErr(err)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "241", rec.Header().Get("Retry-After"))
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Request denied. Try again in 5 minute(s).", rec.Body.String())
}

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := AccessLog(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/increment", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("HTTP request").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "POST", fields["method"])
		assert.Equal(t, "/increment", fields["path"])
		assert.EqualValues(t, http.StatusTeapot, fields["status"])
		assert.EqualValues(t, len("short and stout"), fields["bytes"])
	}
}
