package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/rbt-faucet/pkg/app/errors"
	"github.com/chainsafe/rbt-faucet/pkg/faucet"
	"github.com/chainsafe/rbt-faucet/pkg/faucet/service/mocks"
)

func newTestServer(svc Service, opts ...RouteOption) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop(), opts...)
	return r
}

func doRequest(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func TestIncrementHTTP_Success(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Claim(mock.Anything, testClaimant).
		Return(&faucet.ClaimResult{Success: true, Hash: faucet.TokenHash(1)}, nil).Once()

	rec := doRequest(newTestServer(svc), http.MethodPost, "/increment", `{"username":"`+testClaimant+`"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"hash":"`+faucet.TokenHash(1)+`"}`, rec.Body.String())
}

func TestIncrementHTTP_InvalidJSON(t *testing.T) {
	svc := mocks.NewService(t)

	rec := doRequest(newTestServer(svc), http.MethodPost, "/increment", `{invalid`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Username is required", rec.Body.String())
}

func TestIncrementHTTP_InvalidIdentifierIsPlainText(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Claim(mock.Anything, "").
		Return(nil, apperrors.BadRequestError(faucet.ErrInvalidIdentifier, "Username is required")).Once()

	rec := doRequest(newTestServer(svc), http.MethodPost, "/increment", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username is required", rec.Body.String())
}

func TestIncrementHTTP_Cooldown(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Claim(mock.Anything, testClaimant).
		Return(nil, apperrors.TooManyRequestsError(
			&faucet.CooldownError{Identifier: testClaimant, Remaining: 4*time.Minute + time.Second},
			"Request denied. Try again in 5 minute(s).",
			4*time.Minute+time.Second,
		)).Once()

	rec := doRequest(newTestServer(svc), http.MethodPost, "/increment", `{"username":"`+testClaimant+`"}`)

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "241", rec.Header().Get("Retry-After"))
	assert.Equal(t, "Request denied. Try again in 5 minute(s).", rec.Body.String())
}

func TestIncrementHTTP_TransferFailure(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Claim(mock.Anything, testClaimant).
		Return(nil, apperrors.DependencyError(faucet.ErrTransferTransport, "transfer failed")).Once()

	rec := doRequest(newTestServer(svc), http.MethodPost, "/increment", `{"username":"`+testClaimant+`"}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "transfer failed", rec.Body.String())
}

func TestIncrementHTTP_ClaimMiddlewareApplied(t *testing.T) {
	svc := mocks.NewService(t)
	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
	}

	h := newTestServer(svc, WithClaimMiddleware(deny))
	rec := doRequest(h, http.MethodPost, "/increment", `{"username":"`+testClaimant+`"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Other routes are not throttled.
	svc.EXPECT().Quorums(mock.Anything).Return([]string{}, nil).Once()
	rec = doRequest(h, http.MethodGet, "/api/get-faucet-quorums", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCurrentTokenValueHTTP(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetCounters(mock.Anything, "faucet").Return(&faucet.Counters{
		FaucetID:          "faucet",
		TokenLevel:        2,
		LastTokenNum:      17,
		TotalCount:        100,
		TokensTransferred: 9,
	}, nil).Once()

	rec := doRequest(newTestServer(svc), http.MethodGet, "/api/current-token-value?faucet_id=faucet", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"token_level":2,"faucet_id":"faucet","current_token_number":17,"total_count":100}`,
		rec.Body.String())
}

func TestCurrentTokenValueHTTP_NotFound(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetCounters(mock.Anything, "").
		Return(nil, apperrors.ResourceNotFoundError(faucet.ErrCountersNotFound, "Faucet not found")).Once()

	rec := doRequest(newTestServer(svc), http.MethodGet, "/api/current-token-value", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	var got errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, errorBody{Error: "Faucet not found", Code: http.StatusNotFound}, got)
}

func TestUpdateTokenValueHTTP(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().SetCounters(mock.Anything, "faucet", int64(3), int64(40), int64(500)).Return(nil).Once()

	rec := doRequest(newTestServer(svc), http.MethodPost, "/api/update-token-value",
		`{"token_level":3,"faucet_id":"faucet","current_token_number":40,"total_count":500}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestUpdateTokenValueHTTP_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"missing faucet id", `{"token_level":1,"current_token_number":1,"total_count":1}`},
		{"negative total", `{"token_level":1,"faucet_id":"faucet","current_token_number":1,"total_count":-5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewService(t)
			rec := doRequest(newTestServer(svc), http.MethodPost, "/api/update-token-value", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			var got errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, http.StatusBadRequest, got.Code)
		})
	}
}

func TestUpdateTokenValueHTTP_AdminMiddlewareApplied(t *testing.T) {
	svc := mocks.NewService(t)
	requireAdmin := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}

	h := newTestServer(svc, WithAdminMiddleware(requireAdmin))
	rec := doRequest(h, http.MethodPost, "/api/update-token-value",
		`{"token_level":3,"faucet_id":"faucet","current_token_number":40,"total_count":500}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Reads stay open.
	svc.EXPECT().GetCounters(mock.Anything, "").Return(&faucet.Counters{FaucetID: "faucet"}, nil).Once()
	rec = doRequest(h, http.MethodGet, "/api/current-token-value", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFaucetQuorumsHTTP(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Quorums(mock.Anything).Return([]string{"peer1.bafyaddr1", "peer2.bafyaddr2"}, nil).Once()

	rec := doRequest(newTestServer(svc), http.MethodGet, "/api/get-faucet-quorums", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["peer1.bafyaddr1","peer2.bafyaddr2"]`, rec.Body.String())
}
