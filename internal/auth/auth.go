// Package auth authenticates API callers by bearer token.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-analytics/internal/logging"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid bearer token")
)

// Principal is the authenticated caller.
type Principal struct {
	Subject string
}

// Provider resolves a bearer token to a Principal.
type Provider interface {
	Authenticate(ctx context.Context, token string) (*Principal, error)
}

// StaticTokenProvider accepts a single shared token.
type StaticTokenProvider struct {
	token   []byte
	subject string
}

func NewStaticTokenProvider(token, subject string) *StaticTokenProvider {
	return &StaticTokenProvider{token: []byte(token), subject: subject}
}

func (p *StaticTokenProvider) Authenticate(_ context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	if len(p.token) == 0 || subtle.ConstantTimeCompare([]byte(token), p.token) != 1 {
		return nil, ErrInvalidToken
	}
	return &Principal{Subject: p.subject}, nil
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying principal.
func WithPrincipal(ctx context.Context, principal *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// GetPrincipal returns the authenticated caller, or nil.
func GetPrincipal(ctx context.Context) *Principal {
	principal, _ := ctx.Value(principalKey{}).(*Principal)
	return principal
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// Middleware rejects huma operations whose bearer token the provider does
// not accept.
func Middleware(api huma.API, provider Provider, log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token := bearerToken(ctx.Header("Authorization"))
		principal, err := provider.Authenticate(ctx.Context(), token)
		if err != nil {
			if logData := logging.GetLogData(ctx.Context()); logData != nil {
				logData.AddData("authError", err.Error())
			} else {
				log.WithError(err).Info("Auth.Rejected")
			}
			ctx.SetHeader("WWW-Authenticate", "Bearer")
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "unauthorized", err)
			return
		}

		next(huma.WithContext(ctx, WithPrincipal(ctx.Context(), principal)))
	}
}
