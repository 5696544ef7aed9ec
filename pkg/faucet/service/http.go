package service

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/rbt-faucet/pkg/app/errors"
	apphttp "github.com/chainsafe/rbt-faucet/pkg/app/http"
	"github.com/chainsafe/rbt-faucet/pkg/faucet"
)

const maxBodyBytes = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

type routeSettings struct {
	claimMiddlewares []func(http.Handler) http.Handler
	adminMiddlewares []func(http.Handler) http.Handler
}

// RouteOption customises RegisterRoutes
type RouteOption func(*routeSettings)

// WithClaimMiddleware wraps POST /increment, e.g. with a per-IP throttle.
func WithClaimMiddleware(mw ...func(http.Handler) http.Handler) RouteOption {
	return func(s *routeSettings) {
		s.claimMiddlewares = append(s.claimMiddlewares, mw...)
	}
}

// WithAdminMiddleware wraps the counter overwrite endpoint.
func WithAdminMiddleware(mw ...func(http.Handler) http.Handler) RouteOption {
	return func(s *routeSettings) {
		s.adminMiddlewares = append(s.adminMiddlewares, mw...)
	}
}

// RegisterRoutes registers the faucet HTTP endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger, opts ...RouteOption) {
	var s routeSettings
	for _, opt := range opts {
		opt(&s)
	}

	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.With(s.claimMiddlewares...).Post("/increment", apphttp.HandleError(h.increment))
	r.Get("/api/current-token-value", apphttp.HandleError(h.currentTokenValue))
	r.With(s.adminMiddlewares...).Post("/api/update-token-value", apphttp.HandleError(h.updateTokenValue))
	r.Get("/api/get-faucet-quorums", apphttp.HandleError(h.faucetQuorums))
}

// increment handles a claim. Errors are written as plain text for the
// claim form.
func (h *HTTP) increment(w http.ResponseWriter, r *http.Request) error {
	var req faucet.ClaimRequest
	if err := decodeJSON(r, &req); err != nil {
		return apperrors.AsPlainText(apperrors.BadRequestError(err, "Username is required"))
	}

	res, err := h.service.Claim(r.Context(), req.Username)
	if err != nil {
		return apperrors.AsPlainText(err)
	}

	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}

func (h *HTTP) currentTokenValue(w http.ResponseWriter, r *http.Request) error {
	c, err := h.service.GetCounters(r.Context(), r.URL.Query().Get("faucet_id"))
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, faucet.NewTokenValue(c))
	return nil
}

func (h *HTTP) updateTokenValue(w http.ResponseWriter, r *http.Request) error {
	var req faucet.TokenValue
	if err := decodeJSON(r, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return apperrors.BadRequestError(err, "invalid token value: "+err.Error())
	}

	if err := h.service.SetCounters(r.Context(), req.FaucetID, req.TokenLevel, req.CurrentTokenNumber, req.TotalCount); err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
	return nil
}

func (h *HTTP) faucetQuorums(w http.ResponseWriter, r *http.Request) error {
	quorums, err := h.service.Quorums(r.Context())
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, quorums)
	return nil
}

func decodeJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}
