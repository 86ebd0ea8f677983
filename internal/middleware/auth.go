package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"paygate/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type contextKey string

const IntegratorKey contextKey = "integrator"

var ErrEmptySecret = errors.New("auth secret is empty")

// Authenticator guards API routes with HS256 bearer tokens signed with the
// shared SECRET_KEY. The token subject names the integrator.
type Authenticator struct {
	key []byte
	now func() time.Time
}

func NewAuthenticator(secret string) (*Authenticator, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Authenticator{key: []byte(secret), now: time.Now}, nil
}

// IssueToken signs a token for subject that expires after ttl.
func (a *Authenticator) IssueToken(subject string, ttl time.Duration) (string, error) {
	now := a.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.key)
}

func (a *Authenticator) parse(tokenStr string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims,
		func(token *jwt.Token) (interface{}, error) {
			return a.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}

func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenStr == "" {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		claims, err := a.parse(tokenStr)
		if err != nil {
			logger.FromCtx(r.Context()).Warn("rejected api token",
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), IntegratorKey, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IntegratorFrom returns the authenticated integrator, if any.
func IntegratorFrom(ctx context.Context) string {
	s, _ := ctx.Value(IntegratorKey).(string)
	return s
}
