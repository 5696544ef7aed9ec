// Package auth guards the administrative endpoints with HS256 bearer tokens.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/rbt-faucet/pkg/app/errors"
	apphttp "github.com/chainsafe/rbt-faucet/pkg/app/http"
)

// RoleAdmin is the role claim required on admin tokens.
const RoleAdmin = "admin"

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
	ErrNotAdmin     = errors.New("token does not carry the admin role")
)

// AdminClaims are the claims of an admin token.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTValidator validates HS256 admin tokens signed with a shared secret
type JWTValidator struct {
	secret []byte
	issuer string
}

// NewJWTValidator creates a validator for tokens signed with secret.
// A non-empty issuer is enforced on the iss claim.
func NewJWTValidator(secret, issuer string) *JWTValidator {
	return &JWTValidator{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// IsConfigured returns true if a signing secret is set
func (v *JWTValidator) IsConfigured() bool {
	return len(v.secret) > 0
}

// ValidateToken parses tokenString and checks its signature, expiry, issuer
// and admin role.
func (v *JWTValidator) ValidateToken(tokenString string) (*AdminClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := new(AdminClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Role != RoleAdmin {
		return nil, ErrNotAdmin
	}
	return claims, nil
}

// IssueToken signs an admin token for subject valid for ttl.
func (v *JWTValidator) IssueToken(subject string, ttl time.Duration) (string, error) {
	if !v.IsConfigured() {
		return "", errors.New("jwt secret not configured")
	}

	now := time.Now()
	claims := AdminClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// RequireAdmin returns a middleware rejecting requests without a valid admin
// bearer token: 401 for a missing or invalid token, 403 for a valid token
// without the admin role.
func RequireAdmin(v *JWTValidator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(ErrMissingToken, "missing bearer token"))
				return
			}

			claims, err := v.ValidateToken(raw)
			switch {
			case errors.Is(err, ErrNotAdmin):
				logger.Warn("Admin request with non-admin token", zap.String("path", r.URL.Path))
				apphttp.DefaultErrorHandler(w, apperrors.ForbiddenError(err, "admin role required"))
				return
			case err != nil:
				logger.Warn("Admin request with invalid token", zap.String("path", r.URL.Path), zap.Error(err))
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), claims.Subject)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(h[len(prefix):]), true
}
