package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"travel-planner/internal/model"
	"travel-planner/pkg/response"
)

const (
	HeaderUserID = "X-User-ID"
	// QueryToken carries the bearer token for websocket upgrades, which cannot set headers from a browser.
	QueryToken = "token"
)

var (
	ErrMissingToken   = errors.New("missing bearer token")
	ErrInvalidToken   = errors.New("invalid token")
	ErrMissingSubject = errors.New("token has no subject")
)

// Claims are the JWT claims the API accepts.
type Claims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

type scopeKey struct{}

// Auth resolves the principal and stores it in the request context.
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sc, err := mw.authenticate(c)
		if err != nil {
			mw.l.Warnf(ctx, "middleware.Auth: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(SetScope(ctx, sc))
		c.Next()
	}
}

func (mw Middleware) authenticate(c *gin.Context) (model.Scope, error) {
	token := bearerToken(c)
	if token == "" {
		if mw.headerIdentity {
			if id := strings.TrimSpace(c.GetHeader(HeaderUserID)); id != "" {
				return model.Scope{UserID: id, Username: id}, nil
			}
		}
		return model.Scope{}, ErrMissingToken
	}
	if len(mw.jwtSecret) == 0 {
		return model.Scope{}, ErrInvalidToken
	}
	return ParseToken(token, mw.jwtSecret)
}

// ParseToken validates an HMAC-signed token and returns its principal.
func ParseToken(tokenString string, secret []byte) (model.Scope, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return model.Scope{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return model.Scope{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return model.Scope{}, ErrMissingSubject
	}

	username := claims.Username
	if username == "" {
		username = claims.Subject
	}
	return model.Scope{UserID: claims.Subject, Username: username}, nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return c.Query(QueryToken)
}

// SetScope stores the principal in ctx.
func SetScope(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScope returns the principal stored by Auth.
func GetScope(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeKey{}).(model.Scope)
	return sc, ok && sc.UserID != ""
}
